package entities

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTaxRegion is the fallback key every TaxRateTable carries.
const DefaultTaxRegion = "default"

// TaxRateTable maps a region code to a tax rate fraction (0.0825 = 8.25%).
//
// Invariant: the DefaultTaxRegion key is always present. Build tables with
// NewTaxRateTable to keep it.
type TaxRateTable map[string]decimal.Decimal

// NewTaxRateTable copies rates and sets the default entry.
func NewTaxRateTable(rates map[string]decimal.Decimal, defaultRate decimal.Decimal) TaxRateTable {
	t := make(TaxRateTable, len(rates)+1)
	for region, rate := range rates {
		t[region] = rate
	}
	t[DefaultTaxRegion] = defaultRate
	return t
}

// Lookup returns the rate for region and whether the region has its own entry.
func (t TaxRateTable) Lookup(region string) (decimal.Decimal, bool) {
	rate, ok := t[region]
	return rate, ok
}

// Default returns the fallback rate.
func (t TaxRateTable) Default() decimal.Decimal {
	return t[DefaultTaxRegion]
}

// Regions returns the region codes in lexical order.
func (t TaxRateTable) Regions() []string {
	out := make([]string, 0, len(t))
	for region := range t {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the table.
func (t TaxRateTable) Clone() TaxRateTable {
	out := make(TaxRateTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// TaxCalculation is the result of a standalone tax lookup on a subtotal.
type TaxCalculation struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// RegionTaxRate is the rate that applies to a region. IsDefault reports that
// the region has no entry of its own and the default rate was used.
type RegionTaxRate struct {
	Region    string          `json:"region"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	IsDefault bool            `json:"is_default"`
}
