package repository

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

// TaxRateMemoryRepository serves a fixed region rate table. The table is
// rebuilt with entities.NewTaxRateTable so the default entry is always present
// (a zero rate when the input has none). It is never mutated after
// construction and every read returns a copy.

type TaxRateMemoryRepository struct {
	table entities.TaxRateTable
}

var _ interfaces.ITaxRateRepository = (*TaxRateMemoryRepository)(nil)

func NewTaxRateMemoryRepository(table entities.TaxRateTable) *TaxRateMemoryRepository {
	return &TaxRateMemoryRepository{
		table: entities.NewTaxRateTable(table, table.Default()),
	}
}

func (r *TaxRateMemoryRepository) GetTable(ctx context.Context) (entities.TaxRateTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.table.Clone(), nil
}
