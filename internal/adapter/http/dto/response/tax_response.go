package response

import (
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

type TaxCalculationResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

func FromTaxCalculation(c entities.TaxCalculation) TaxCalculationResponse {
	return TaxCalculationResponse{
		Subtotal:  c.Subtotal,
		TaxRate:   c.TaxRate,
		TaxAmount: c.TaxAmount,
		Total:     c.Total,
	}
}

type TaxRateResponse struct {
	Region    string          `json:"region"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	IsDefault bool            `json:"is_default"`
}

func FromRegionTaxRate(r entities.RegionTaxRate) TaxRateResponse {
	return TaxRateResponse{Region: r.Region, TaxRate: r.TaxRate, IsDefault: r.IsDefault}
}

func FromRegionTaxRates(list []entities.RegionTaxRate) []TaxRateResponse {
	out := make([]TaxRateResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromRegionTaxRate(r))
	}
	return out
}
