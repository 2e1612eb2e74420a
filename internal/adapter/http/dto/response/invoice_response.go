package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

type LineItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// InvoiceResponse serializes money and rates as decimal strings.
type InvoiceResponse struct {
	ID               int64              `json:"id"`
	ClientID         string             `json:"client_id"`
	Items            []LineItemResponse `json:"items"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	Discount         decimal.Decimal    `json:"discount"`
	TaxRate          decimal.Decimal    `json:"tax_rate"`
	DiscountedAmount decimal.Decimal    `json:"discounted_amount"`
	TaxAmount        decimal.Decimal    `json:"tax_amount"`
	Total            decimal.Decimal    `json:"total"`
	DueDate          string             `json:"due_date"`
	Status           string             `json:"status"`
	ClientContact    ContactResponse    `json:"client_contact"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return InvoiceResponse{
		ID:               inv.ID,
		ClientID:         inv.ClientID,
		Items:            items,
		Subtotal:         inv.Subtotal,
		Discount:         inv.Discount,
		TaxRate:          inv.TaxRate,
		DiscountedAmount: inv.DiscountedAmount,
		TaxAmount:        inv.TaxAmount,
		Total:            inv.Total,
		DueDate:          inv.DueDate,
		Status:           string(inv.Status),
		ClientContact:    fromContact(inv.ClientContact),
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type NotificationResponse struct {
	ID           string    `json:"id"`
	InvoiceID    int64     `json:"invoice_id"`
	Recipient    string    `json:"recipient"`
	Method       string    `json:"method"`
	Message      string    `json:"message"`
	DaysUntilDue int       `json:"days_until_due"`
	SentAt       time.Time `json:"sent_at"`
	Status       string    `json:"status"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID,
		InvoiceID:    n.InvoiceID,
		Recipient:    n.Recipient,
		Method:       string(n.Method),
		Message:      n.Message,
		DaysUntilDue: n.DaysUntilDue,
		SentAt:       n.SentAt,
		Status:       string(n.Status),
	}
}
