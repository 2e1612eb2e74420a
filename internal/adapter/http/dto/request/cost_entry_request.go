package request

import (
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
)

// CostEntryRequest is the body of POST /api/costentries. Amount accepts a
// JSON number or a numeric string.
type CostEntryRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

func (r CostEntryRequest) ToCommand() usecase.CreateCostEntryCommand {
	return usecase.CreateCostEntryCommand{
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}
