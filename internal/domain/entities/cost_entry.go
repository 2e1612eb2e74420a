package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEntry is an expense record.
type CostEntry struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
