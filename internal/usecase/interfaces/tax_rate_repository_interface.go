package interfaces

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// ITaxRateRepository exposes the region -> rate table. The returned table is
// a copy and always carries the "default" entry.

type ITaxRateRepository interface {
	GetTable(ctx context.Context) (entities.TaxRateTable, error)
}
