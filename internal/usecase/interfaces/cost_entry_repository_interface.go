package interfaces

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// ICostEntryRepository abstracts storage of cost entries.
//
// GetByID returns a zero CostEntry (ID == 0) and a nil error when nothing matches.

type ICostEntryRepository interface {
	Create(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error)
	GetByID(ctx context.Context, id int64) (entities.CostEntry, error)
	List(ctx context.Context) ([]entities.CostEntry, error)
}
