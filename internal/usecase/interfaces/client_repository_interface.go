package interfaces

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// IClientRepository abstracts storage of clients. GetByID returns a zero
// Client (empty ID) when nothing matches.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
