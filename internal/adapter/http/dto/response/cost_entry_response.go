package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

type CostEntryResponse struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromCostEntry(e entities.CostEntry) CostEntryResponse {
	return CostEntryResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func FromCostEntries(list []entities.CostEntry) []CostEntryResponse {
	out := make([]CostEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromCostEntry(e))
	}
	return out
}
