package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/billing"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

var (
	ErrInvalidSubtotal = errors.New("subtotal must be positive")
	ErrInvalidRegion   = errors.New("region is required")
	ErrInvalidTaxRate  = errors.New("tax rate must be between 0 and 1")
)

var one = decimal.NewFromInt(1)

// ITaxUseCase exposes tax lookups over the region rate table.

type ITaxUseCase interface {
	Calculate(ctx context.Context, subtotal decimal.Decimal, region string, taxRate *decimal.Decimal) (entities.TaxCalculation, error)
	GetRate(ctx context.Context, region string) (entities.RegionTaxRate, error)
	ListRates(ctx context.Context) ([]entities.RegionTaxRate, error)
}

type TaxUseCase struct {
	repo   interfaces.ITaxRateRepository
	logger *zap.Logger
}

var _ ITaxUseCase = (*TaxUseCase)(nil)

func NewTaxUseCase(repo interfaces.ITaxRateRepository, logger *zap.Logger) *TaxUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaxUseCase{repo: repo, logger: logger}
}

// Calculate applies the resolved rate to subtotal. No discount is involved.
func (u *TaxUseCase) Calculate(ctx context.Context, subtotal decimal.Decimal, region string, taxRate *decimal.Decimal) (entities.TaxCalculation, error) {
	if !subtotal.IsPositive() {
		return entities.TaxCalculation{}, ErrInvalidSubtotal
	}
	region = strings.TrimSpace(region)
	if region == "" {
		return entities.TaxCalculation{}, ErrInvalidRegion
	}
	if taxRate != nil && !isFraction(*taxRate) {
		return entities.TaxCalculation{}, ErrInvalidTaxRate
	}

	table, err := u.repo.GetTable(ctx)
	if err != nil {
		return entities.TaxCalculation{}, err
	}

	rate := billing.ResolveTaxRate(taxRate, region, table)
	totals := billing.ComputeInvoiceTotals(subtotal, decimal.Zero, rate)
	u.logger.Debug("tax calculated",
		zap.String("region", region),
		zap.Stringer("subtotal", subtotal),
		zap.Stringer("tax_rate", rate),
		zap.Bool("explicit_rate", taxRate != nil))

	return entities.TaxCalculation{
		Subtotal:  subtotal,
		TaxRate:   rate,
		TaxAmount: totals.TaxAmount,
		Total:     totals.Total,
	}, nil
}

func (u *TaxUseCase) GetRate(ctx context.Context, region string) (entities.RegionTaxRate, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return entities.RegionTaxRate{}, ErrInvalidRegion
	}

	table, err := u.repo.GetTable(ctx)
	if err != nil {
		return entities.RegionTaxRate{}, err
	}
	_, own := table.Lookup(region)
	return entities.RegionTaxRate{
		Region:    region,
		TaxRate:   billing.ResolveTaxRate(nil, region, table),
		IsDefault: !own,
	}, nil
}

func (u *TaxUseCase) ListRates(ctx context.Context) ([]entities.RegionTaxRate, error) {
	table, err := u.repo.GetTable(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.RegionTaxRate, 0, len(table))
	for _, region := range table.Regions() {
		out = append(out, entities.RegionTaxRate{
			Region:    region,
			TaxRate:   table[region],
			IsDefault: region == entities.DefaultTaxRegion,
		})
	}
	return out, nil
}

func isFraction(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(one)
}
