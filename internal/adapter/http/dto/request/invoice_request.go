package request

import (
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase"
)

type LineItemRequest struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return out
}

// InvoiceRequest is the body of POST /api/invoices.
//
// Discounts is the legacy spelling of Discount, accepted from older clients.
// When both are present Discount wins.
type InvoiceRequest struct {
	ClientID  string            `json:"client_id"`
	Items     []LineItemRequest `json:"items"`
	TaxRate   *decimal.Decimal  `json:"tax_rate"`
	Discount  *decimal.Decimal  `json:"discount"`
	Discounts *decimal.Decimal  `json:"discounts"`
}

func (r InvoiceRequest) ResolveDiscount() *decimal.Decimal {
	return resolveDiscount(r.Discount, r.Discounts)
}

func (r InvoiceRequest) ToCommand() usecase.CreateInvoiceCommand {
	cmd := usecase.CreateInvoiceCommand{
		ClientID: r.ClientID,
		Items:    toLineItems(r.Items),
		TaxRate:  r.TaxRate,
		Discount: decimal.Zero,
	}
	if d := r.ResolveDiscount(); d != nil {
		cmd.Discount = *d
	}
	return cmd
}

// InvoiceUpdateRequest is the body of PUT /api/invoices/:id. Absent fields
// and an empty items list keep the stored values.
type InvoiceUpdateRequest struct {
	Items     []LineItemRequest `json:"items"`
	TaxRate   *decimal.Decimal  `json:"tax_rate"`
	Discount  *decimal.Decimal  `json:"discount"`
	Discounts *decimal.Decimal  `json:"discounts"`
}

func (r InvoiceUpdateRequest) ResolveDiscount() *decimal.Decimal {
	return resolveDiscount(r.Discount, r.Discounts)
}

func (r InvoiceUpdateRequest) ToCommand() usecase.UpdateInvoiceCommand {
	return usecase.UpdateInvoiceCommand{
		Items:    toLineItems(r.Items),
		TaxRate:  r.TaxRate,
		Discount: r.ResolveDiscount(),
	}
}

func resolveDiscount(discount, legacy *decimal.Decimal) *decimal.Decimal {
	if discount != nil {
		return discount
	}
	return legacy
}

// ReminderRequest is the optional body of POST /api/invoices/:id/reminders.
type ReminderRequest struct {
	DueDate       *string         `json:"due_date"`
	ClientContact *ContactRequest `json:"client_contact"`
}

func (r ReminderRequest) ToCommand() usecase.ReminderCommand {
	cmd := usecase.ReminderCommand{DueDate: r.DueDate}
	if r.ClientContact != nil {
		contact := r.ClientContact.ToEntity()
		cmd.Contact = &contact
	}
	return cmd
}
