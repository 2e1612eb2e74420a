package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/request"
	"github.com/Abdelrahman10101/Cost-Management/internal/adapter/http/dto/response"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
	"github.com/Abdelrahman10101/Cost-Management/pkg"
)

// TaxHandler serves standalone tax lookups.

type TaxHandler struct {
	usecase usecase.ITaxUseCase
}

func NewTaxHandler(uc usecase.ITaxUseCase) *TaxHandler {
	return &TaxHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate tax on a subtotal
// @Tags         tax
// @Produce      json
// @Param        subtotal  query     string  true   "Subtotal, must be positive"
// @Param        region    query     string  true   "Region code"
// @Param        tax_rate  query     string  false  "Explicit rate overriding the region rate"
// @Success      200       {object}  response.TaxCalculationResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /tax/calculate [get]
func (h *TaxHandler) Calculate(c *gin.Context) {
	var query request.TaxCalculationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	subtotal, taxRate, err := query.Resolve()
	if errors.Is(err, request.ErrInvalidTaxRateArg) {
		writeError(c, mapTaxError(usecase.ErrInvalidTaxRate))
		return
	}
	if err != nil {
		writeError(c, mapTaxError(usecase.ErrInvalidSubtotal))
		return
	}

	res, err := h.usecase.Calculate(c.Request.Context(), subtotal, query.Region, taxRate)
	if err != nil {
		writeError(c, mapTaxError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTaxCalculation(res))
}

// ListRates godoc
// @Summary      List the region rate table
// @Tags         tax
// @Produce      json
// @Success      200  {array}  response.TaxRateResponse
// @Router       /tax/rates [get]
func (h *TaxHandler) ListRates(c *gin.Context) {
	rates, err := h.usecase.ListRates(c.Request.Context())
	if err != nil {
		writeError(c, mapTaxError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegionTaxRates(rates))
}

// GetRate godoc
// @Summary      Resolve the rate for a region
// @Description  Unknown regions resolve to the default rate with is_default set.
// @Tags         tax
// @Produce      json
// @Param        region  path      string  true  "Region code"
// @Success      200     {object}  response.TaxRateResponse
// @Router       /tax/rates/{region} [get]
func (h *TaxHandler) GetRate(c *gin.Context) {
	rate, err := h.usecase.GetRate(c.Request.Context(), c.Param("region"))
	if err != nil {
		writeError(c, mapTaxError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRegionTaxRate(rate))
}

func mapTaxError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubtotal):
		return pkg.NewDomainErrorSimple("INVALID_SUBTOTAL", "Subtotal must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegion):
		return pkg.NewDomainErrorSimple("INVALID_REGION", "Region is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTaxRate):
		return pkg.NewDomainErrorSimple("INVALID_TAX_RATE", "Tax rate must be between 0 and 1", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
