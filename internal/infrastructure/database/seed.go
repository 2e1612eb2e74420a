// Package database holds the dataset the in-memory store starts from.
// Nothing is persisted: every process start begins from Seed.
package database

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/billing"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// Dataset is the initial content of every collection.
type Dataset struct {
	CostEntries []entities.CostEntry
	Clients     []entities.Client
	Invoices    []entities.Invoice
	TaxRates    entities.TaxRateTable
}

// Seed builds the startup dataset. now stamps created_at on seeded records.
// Invoice totals are derived here rather than stored literally.
func Seed(now time.Time) Dataset {
	acmeContact := entities.ClientContact{Email: "client1@example.com", Phone: "+1234567890"}

	return Dataset{
		CostEntries: []entities.CostEntry{
			{ID: 1, Category: "Office Supplies", Amount: money("150.00"), Date: "2023-05-15", Description: "Printer paper", CreatedAt: now},
			{ID: 2, Category: "Software", Amount: money("499.99"), Date: "2023-05-18", Description: "Project management tool subscription", CreatedAt: now},
		},
		Clients: []entities.Client{
			{ID: "CL001", Name: "Acme Corp", Region: "US-CA", Contact: acmeContact},
			{ID: "CL002", Name: "Globex Inc", Region: "US-NY"},
		},
		Invoices: []entities.Invoice{
			billing.ApplyTotals(entities.Invoice{
				ID:       1001,
				ClientID: "CL001",
				Items: []entities.LineItem{
					{Name: "Web Design", Quantity: 10, UnitPrice: money("75.00")},
					{Name: "Hosting", Quantity: 1, UnitPrice: money("120.00")},
				},
				TaxRate:       money("0.08"),
				Discount:      money("0.05"),
				DueDate:       "2023-06-15",
				Status:        entities.InvoiceStatusPending,
				ClientContact: acmeContact,
				CreatedAt:     now,
			}),
		},
		TaxRates: entities.NewTaxRateTable(map[string]decimal.Decimal{
			"US-CA": money("0.0825"),
			"US-NY": money("0.08875"),
			"EU-DE": money("0.19"),
		}, money("0.05")),
	}
}

// CostEntryIDs returns the ids used by the seeded cost entries.
func (d Dataset) CostEntryIDs() []int64 {
	ids := make([]int64, 0, len(d.CostEntries))
	for _, e := range d.CostEntries {
		ids = append(ids, e.ID)
	}
	return ids
}

// InvoiceIDs returns the ids used by the seeded invoices.
func (d Dataset) InvoiceIDs() []int64 {
	ids := make([]int64, 0, len(d.Invoices))
	for _, inv := range d.Invoices {
		ids = append(ids, inv.ID)
	}
	return ids
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
