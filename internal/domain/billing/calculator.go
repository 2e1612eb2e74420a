// Package billing holds the invoice arithmetic: subtotal, discount, tax and
// total derivation, tax-rate resolution and reminder classification.
//
// Every function here is pure. Time-dependent functions take the current time
// as a parameter and nothing reads or writes shared state, so callers may use
// them concurrently without coordination.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// Totals are the amounts derived from a subtotal, a discount and a tax rate.
type Totals struct {
	DiscountedAmount decimal.Decimal
	TaxAmount        decimal.Decimal
	Total            decimal.Decimal
}

// InvoiceUpdate carries the fields of a partial invoice update. Nil or empty
// fields keep the invoice's current value.
type InvoiceUpdate struct {
	Items    []entities.LineItem
	TaxRate  *decimal.Decimal
	Discount *decimal.Decimal
}

// ComputeSubtotal sums quantity * unit price over items. It assumes
// well-formed input; rejecting negative values is the caller's job.
func ComputeSubtotal(items []entities.LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// ResolveTaxRate returns explicitRate unchanged when it is set. Otherwise it
// looks region up in table and falls back to the table's default entry.
func ResolveTaxRate(explicitRate *decimal.Decimal, region string, table entities.TaxRateTable) decimal.Decimal {
	if explicitRate != nil {
		return *explicitRate
	}
	if rate, ok := table.Lookup(region); ok {
		return rate
	}
	return table.Default()
}

// ComputeInvoiceTotals applies discount to subtotal and tax to the discounted
// amount. Values outside [0,1] are not clamped.
func ComputeInvoiceTotals(subtotal, discount, taxRate decimal.Decimal) Totals {
	discounted := subtotal.Mul(decimal.NewFromInt(1).Sub(discount))
	tax := discounted.Mul(taxRate)
	return Totals{
		DiscountedAmount: discounted,
		TaxAmount:        tax,
		Total:            discounted.Add(tax),
	}
}

// ApplyTotals recomputes every derived field of inv from its items, discount
// and tax rate.
func ApplyTotals(inv entities.Invoice) entities.Invoice {
	inv.Subtotal = ComputeSubtotal(inv.Items)
	totals := ComputeInvoiceTotals(inv.Subtotal, inv.Discount, inv.TaxRate)
	inv.DiscountedAmount = totals.DiscountedAmount
	inv.TaxAmount = totals.TaxAmount
	inv.Total = totals.Total
	return inv
}

// RecomputeOnUpdate merges upd into existing and recomputes all derived
// fields. Items are replaced only by a non-empty list. The returned invoice
// does not share its item slice with existing.
func RecomputeOnUpdate(existing entities.Invoice, upd InvoiceUpdate) entities.Invoice {
	inv := existing.Clone()
	if len(upd.Items) > 0 {
		inv.Items = make([]entities.LineItem, len(upd.Items))
		copy(inv.Items, upd.Items)
	}
	if upd.TaxRate != nil {
		inv.TaxRate = *upd.TaxRate
	}
	if upd.Discount != nil {
		inv.Discount = *upd.Discount
	}
	return ApplyTotals(inv)
}
