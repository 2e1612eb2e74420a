package repository

import (
	"context"
	"sync"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

// CostEntryMemoryRepository keeps cost entries in process memory.

type CostEntryMemoryRepository struct {
	mu      sync.RWMutex
	entries map[int64]entities.CostEntry
}

var _ interfaces.ICostEntryRepository = (*CostEntryMemoryRepository)(nil)

func NewCostEntryMemoryRepository(seed ...entities.CostEntry) *CostEntryMemoryRepository {
	r := &CostEntryMemoryRepository{entries: make(map[int64]entities.CostEntry, len(seed))}
	for _, e := range seed {
		r.entries[e.ID] = e
	}
	return r
}

func (r *CostEntryMemoryRepository) Create(ctx context.Context, e entities.CostEntry) (entities.CostEntry, error) {
	if err := ctx.Err(); err != nil {
		return entities.CostEntry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.ID]; exists {
		return entities.CostEntry{}, ErrDuplicateID
	}
	r.entries[e.ID] = e
	return e, nil
}

func (r *CostEntryMemoryRepository) GetByID(ctx context.Context, id int64) (entities.CostEntry, error) {
	if err := ctx.Err(); err != nil {
		return entities.CostEntry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id], nil
}

func (r *CostEntryMemoryRepository) List(ctx context.Context) ([]entities.CostEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return valuesByKey(r.entries, identity[entities.CostEntry]), nil
}
