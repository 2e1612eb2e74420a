package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTaxQuery    = errors.New("invalid tax query")
	ErrInvalidSubtotalArg = fmt.Errorf("%w: subtotal is not a number", ErrInvalidTaxQuery)
	ErrInvalidTaxRateArg  = fmt.Errorf("%w: tax_rate is not a number", ErrInvalidTaxQuery)
)

// TaxCalculationQuery is bound from the query string of GET /api/tax/calculate.
type TaxCalculationQuery struct {
	Subtotal string `form:"subtotal"`
	Region   string `form:"region"`
	TaxRate  string `form:"tax_rate"`
}

// Resolve parses the numeric parameters. A blank tax_rate means none was given.
func (q TaxCalculationQuery) Resolve() (subtotal decimal.Decimal, taxRate *decimal.Decimal, err error) {
	subtotal, err = decimal.NewFromString(strings.TrimSpace(q.Subtotal))
	if err != nil {
		return decimal.Zero, nil, ErrInvalidSubtotalArg
	}
	if raw := strings.TrimSpace(q.TaxRate); raw != "" {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, nil, ErrInvalidTaxRateArg
		}
		taxRate = &rate
	}
	return subtotal, taxRate, nil
}
