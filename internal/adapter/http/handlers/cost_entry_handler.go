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

// CostEntryHandler handles HTTP requests for expense records.

type CostEntryHandler struct {
	usecase usecase.ICostEntryUseCase
}

func NewCostEntryHandler(uc usecase.ICostEntryUseCase) *CostEntryHandler {
	return &CostEntryHandler{usecase: uc}
}

func (h *CostEntryHandler) ListCostEntries(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCostEntryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostEntries(entries))
}

func (h *CostEntryHandler) GetCostEntry(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	entry, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapCostEntryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCostEntry(entry))
}

// CreateCostEntry answers 201 with the stored entry.
func (h *CostEntryHandler) CreateCostEntry(c *gin.Context) {
	var payload request.CostEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapCostEntryError(usecase.ErrInvalidCostEntry))
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapCostEntryError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCostEntry(entry))
}

func mapCostEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostEntryID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidCostEntry), errors.Is(err, usecase.ErrInvalidCostAmount):
		return pkg.NewDomainErrorSimple("INVALID_COST_ENTRY", "All parameters are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCostDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostEntryNotFound):
		return pkg.NewDomainErrorSimple("COST_ENTRY_NOT_FOUND", "Cost entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
