package repository

import (
	"context"
	"sync"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

// InvoiceMemoryRepository keeps invoices in process memory.
//
// Every read and write goes through Invoice.Clone, so callers never share an
// item slice with the stored record. Update replaces the record wholesale.

type InvoiceMemoryRepository struct {
	mu       sync.RWMutex
	invoices map[int64]entities.Invoice
}

var _ interfaces.IInvoiceRepository = (*InvoiceMemoryRepository)(nil)

func NewInvoiceMemoryRepository(seed ...entities.Invoice) *InvoiceMemoryRepository {
	r := &InvoiceMemoryRepository{invoices: make(map[int64]entities.Invoice, len(seed))}
	for _, inv := range seed {
		r.invoices[inv.ID] = inv.Clone()
	}
	return r
}

func (r *InvoiceMemoryRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invoices[inv.ID]; exists {
		return entities.Invoice{}, ErrDuplicateID
	}
	r.invoices[inv.ID] = inv.Clone()
	return inv.Clone(), nil
}

func (r *InvoiceMemoryRepository) GetByID(ctx context.Context, id int64) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	return inv.Clone(), nil
}

func (r *InvoiceMemoryRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return valuesByKey(r.invoices, entities.Invoice.Clone), nil
}

func (r *InvoiceMemoryRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return entities.Invoice{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[inv.ID]; !ok {
		return entities.Invoice{}, nil
	}
	r.invoices[inv.ID] = inv.Clone()
	return inv.Clone(), nil
}
