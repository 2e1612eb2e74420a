package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/internal/clock"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/billing"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

var (
	ErrCostEntryNotFound  = errors.New("cost entry not found")
	ErrInvalidCostEntryID = errors.New("invalid cost entry id")
	ErrInvalidCostEntry   = errors.New("category, date and description are required")
	ErrInvalidCostAmount  = errors.New("amount must be positive")
	ErrInvalidCostDate    = errors.New("invalid cost entry date")
)

type CreateCostEntryCommand struct {
	Category    string
	Amount      decimal.Decimal
	Date        string
	Description string
}

// ICostEntryUseCase exposes expense bookkeeping operations.

type ICostEntryUseCase interface {
	List(ctx context.Context) ([]entities.CostEntry, error)
	GetByID(ctx context.Context, id int64) (entities.CostEntry, error)
	Create(ctx context.Context, cmd CreateCostEntryCommand) (entities.CostEntry, error)
}

type CostEntryUseCase struct {
	repo   interfaces.ICostEntryRepository
	ids    interfaces.IIDGenerator
	clock  clock.Clock
	logger *zap.Logger
}

var _ ICostEntryUseCase = (*CostEntryUseCase)(nil)

func NewCostEntryUseCase(repo interfaces.ICostEntryRepository, ids interfaces.IIDGenerator, clk clock.Clock, logger *zap.Logger) *CostEntryUseCase {
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostEntryUseCase{repo: repo, ids: ids, clock: clk, logger: logger}
}

func (u *CostEntryUseCase) List(ctx context.Context) ([]entities.CostEntry, error) {
	return u.repo.List(ctx)
}

func (u *CostEntryUseCase) GetByID(ctx context.Context, id int64) (entities.CostEntry, error) {
	if id <= 0 {
		return entities.CostEntry{}, ErrInvalidCostEntryID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CostEntry{}, err
	}
	if e.ID == 0 {
		return entities.CostEntry{}, ErrCostEntryNotFound
	}
	return e, nil
}

func (u *CostEntryUseCase) Create(ctx context.Context, cmd CreateCostEntryCommand) (entities.CostEntry, error) {
	cmd.Category = strings.TrimSpace(cmd.Category)
	cmd.Date = strings.TrimSpace(cmd.Date)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if cmd.Category == "" || cmd.Date == "" || cmd.Description == "" {
		return entities.CostEntry{}, ErrInvalidCostEntry
	}
	if !cmd.Amount.IsPositive() {
		return entities.CostEntry{}, ErrInvalidCostAmount
	}
	if _, err := time.Parse(billing.DateLayout, cmd.Date); err != nil {
		return entities.CostEntry{}, ErrInvalidCostDate
	}

	e := entities.CostEntry{
		ID:          u.ids.NextID(),
		Category:    cmd.Category,
		Amount:      cmd.Amount,
		Date:        cmd.Date,
		Description: cmd.Description,
		CreatedAt:   u.clock.Now(),
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.logger.Error("cost entry create failed", zap.Int64("cost_entry_id", e.ID), zap.Error(err))
		return entities.CostEntry{}, err
	}
	u.logger.Info("cost entry created",
		zap.Int64("cost_entry_id", created.ID),
		zap.String("category", created.Category),
		zap.Stringer("amount", created.Amount))
	return created, nil
}
