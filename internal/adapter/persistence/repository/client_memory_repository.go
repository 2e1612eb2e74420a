package repository

import (
	"context"
	"sync"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

// ClientMemoryRepository keeps clients in process memory, keyed by id.

type ClientMemoryRepository struct {
	mu      sync.RWMutex
	clients map[string]entities.Client
}

var _ interfaces.IClientRepository = (*ClientMemoryRepository)(nil)

func NewClientMemoryRepository(seed ...entities.Client) *ClientMemoryRepository {
	r := &ClientMemoryRepository{clients: make(map[string]entities.Client, len(seed))}
	for _, c := range seed {
		r.clients[c.ID] = c
	}
	return r
}

func (r *ClientMemoryRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := ctx.Err(); err != nil {
		return entities.Client{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[c.ID]; exists {
		return entities.Client{}, ErrDuplicateID
	}
	r.clients[c.ID] = c
	return c, nil
}

func (r *ClientMemoryRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	if err := ctx.Err(); err != nil {
		return entities.Client{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[id], nil
}

func (r *ClientMemoryRepository) List(ctx context.Context) ([]entities.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return valuesByKey(r.clients, identity[entities.Client]), nil
}
