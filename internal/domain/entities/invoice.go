package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
)

// LineItem is a single billable line of an invoice.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ClientContact holds the channels a reminder can be delivered through.
type ClientContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Invoice is the billing document kept by the in-memory store.
//
// Derived fields (Subtotal, DiscountedAmount, TaxAmount, Total) are always
// recomputed together from Items, Discount and TaxRate; they are never
// patched individually.
type Invoice struct {
	ID               int64           `json:"id"`
	ClientID         string          `json:"client_id"`
	Items            []LineItem      `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	DiscountedAmount decimal.Decimal `json:"discounted_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	Total            decimal.Decimal `json:"total"`
	DueDate          string          `json:"due_date"`
	Status           InvoiceStatus   `json:"status"`
	ClientContact    ClientContact   `json:"client_contact"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with i.
func (i Invoice) Clone() Invoice {
	out := i
	if i.Items != nil {
		out.Items = make([]LineItem, len(i.Items))
		copy(out.Items, i.Items)
	}
	if i.UpdatedAt != nil {
		t := *i.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
