package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/docs"
	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/handlers"
	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/persistence/repository"
	"github.com/Abdelrahman10101/Cost-Management/internal/clock"
	"github.com/Abdelrahman10101/Cost-Management/internal/config"
	"github.com/Abdelrahman10101/Cost-Management/internal/infrastructure/database"
	"github.com/Abdelrahman10101/Cost-Management/internal/infrastructure/idgen"
	"github.com/Abdelrahman10101/Cost-Management/internal/infrastructure/metrics"
	"github.com/Abdelrahman10101/Cost-Management/internal/infrastructure/notification"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
)

const PathAPI = "/api"

// Options carries the collaborators NewRouter wires together. Clock and
// Metrics are optional.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

// NewRouter seeds the in-memory store and builds the engine with every route.
func NewRouter(opts Options) (*gin.Engine, error) {
	cfg, logger := opts.Config, opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	h, err := buildHandlers(cfg, logger, clk, m)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, logger, m)

	router.GET("/metrics", gin.WrapH(m.Handler()))
	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.BasePath = PathAPI
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addBillingRoutes(api, h)
	return router, nil
}

type billingHandlers struct {
	costEntries *handlers.CostEntryHandler
	clients     *handlers.ClientHandler
	invoices    *handlers.InvoiceHandler
	tax         *handlers.TaxHandler
}

func buildHandlers(cfg *config.Config, logger *zap.Logger, clk clock.Clock, m *metrics.Metrics) (billingHandlers, error) {
	seed := database.Seed(clk.Now())

	costEntryRepo := repository.NewCostEntryMemoryRepository(seed.CostEntries...)
	clientRepo := repository.NewClientMemoryRepository(seed.Clients...)
	invoiceRepo := repository.NewInvoiceMemoryRepository(seed.Invoices...)
	taxRepo := repository.NewTaxRateMemoryRepository(seed.TaxRates)

	costEntryIDs, err := idgen.New(cfg.Billing, seed.CostEntryIDs()...)
	if err != nil {
		return billingHandlers{}, fmt.Errorf("cost entry id generator: %w", err)
	}
	invoiceIDs, err := idgen.New(cfg.Billing, seed.InvoiceIDs()...)
	if err != nil {
		return billingHandlers{}, fmt.Errorf("invoice id generator: %w", err)
	}

	notifier := notification.NewLogGateway(logger, m)

	costEntryUseCase := usecase.NewCostEntryUseCase(costEntryRepo, costEntryIDs, clk, logger.Named("cost_entries"))
	clientUseCase := usecase.NewClientUseCase(clientRepo, nil, logger.Named("clients"))
	taxUseCase := usecase.NewTaxUseCase(taxRepo, logger.Named("tax"))
	invoiceUseCase := usecase.NewInvoiceUseCase(usecase.InvoiceUseCaseParams{
		Invoices: invoiceRepo,
		Clients:  clientRepo,
		TaxRates: taxRepo,
		Notifier: notifier,
		IDs:      invoiceIDs,
		Clock:    clk,
		DueDays:  cfg.Billing.InvoiceDueDays,
		Logger:   logger.Named("invoices"),
	})

	return billingHandlers{
		costEntries: handlers.NewCostEntryHandler(costEntryUseCase),
		clients:     handlers.NewClientHandler(clientUseCase),
		invoices:    handlers.NewInvoiceHandler(invoiceUseCase),
		tax:         handlers.NewTaxHandler(taxUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, m *metrics.Metrics) {
	router.Use(requestLogger(logger))
	router.Use(m.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// Run serves the API until ctx is cancelled, then drains in-flight requests
// for at most the configured shutdown timeout.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	router, err := NewRouter(Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
