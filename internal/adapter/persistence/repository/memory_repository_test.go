package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

func sampleInvoice(id int64) entities.Invoice {
	return entities.Invoice{
		ID:       id,
		ClientID: "CL001",
		Items: []entities.LineItem{
			{Name: "Web Design", Quantity: 10, UnitPrice: decimal.RequireFromString("75.00")},
		},
		Status: entities.InvoiceStatusPending,
	}
}

func TestInvoiceMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository()
		_, err := repo.Create(ctx, sampleInvoice(1))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "CL001", got.ClientID)

		_, err = repo.Create(ctx, sampleInvoice(1))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("miss returns zero invoice", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository()
		got, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Zero(t, got.ID)

		updated, err := repo.Update(ctx, sampleInvoice(42))
		require.NoError(t, err)
		assert.Zero(t, updated.ID)
	})

	t.Run("reads do not alias stored items", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository(sampleInvoice(1001))

		got, err := repo.GetByID(ctx, 1001)
		require.NoError(t, err)
		got.Items[0].Name = "mutated"

		list, err := repo.List(ctx)
		require.NoError(t, err)
		list[0].Items[0].Quantity = 99

		again, err := repo.GetByID(ctx, 1001)
		require.NoError(t, err)
		assert.Equal(t, "Web Design", again.Items[0].Name)
		assert.Equal(t, 10, again.Items[0].Quantity)
	})

	t.Run("update replaces record", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository(sampleInvoice(1001))
		inv := sampleInvoice(1001)
		inv.Discount = decimal.RequireFromString("0.1")

		_, err := repo.Update(ctx, inv)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, 1001)
		require.NoError(t, err)
		assert.True(t, got.Discount.Equal(decimal.RequireFromString("0.1")))
	})

	t.Run("list ordered by id", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository(sampleInvoice(3), sampleInvoice(1), sampleInvoice(2))
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.List(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent creates", func(t *testing.T) {
		repo := NewInvoiceMemoryRepository()
		var wg sync.WaitGroup
		for i := 1; i <= 50; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				_, _ = repo.Create(ctx, sampleInvoice(id))
				_, _ = repo.List(ctx)
			}(int64(i))
		}
		wg.Wait()

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 50)
	})
}

func TestCostEntryMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCostEntryMemoryRepository(entities.CostEntry{ID: 2, Category: "Software"}, entities.CostEntry{ID: 1, Category: "Office Supplies"})

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Office Supplies", list[0].Category)

	_, err = repo.Create(ctx, entities.CostEntry{ID: 2})
	assert.ErrorIs(t, err, ErrDuplicateID)

	created, err := repo.Create(ctx, entities.CostEntry{ID: 3, Category: "Travel"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	miss, err := repo.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, miss.ID)
}

func TestClientMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClientMemoryRepository(entities.Client{ID: "CL001", Name: "Acme Corp", Region: "US-CA"})

	got, err := repo.GetByID(ctx, "CL001")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)

	_, err = repo.Create(ctx, entities.Client{ID: "CL001"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	for i := 2; i <= 3; i++ {
		_, err := repo.Create(ctx, entities.Client{ID: fmt.Sprintf("CL00%d", i)})
		require.NoError(t, err)
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestTaxRateMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("copy on read", func(t *testing.T) {
		repo := NewTaxRateMemoryRepository(entities.NewTaxRateTable(map[string]decimal.Decimal{
			"US-CA": decimal.RequireFromString("0.0825"),
		}, decimal.RequireFromString("0.05")))

		table, err := repo.GetTable(ctx)
		require.NoError(t, err)
		table["US-CA"] = decimal.Zero
		delete(table, entities.DefaultTaxRegion)

		again, err := repo.GetTable(ctx)
		require.NoError(t, err)
		assert.True(t, again["US-CA"].Equal(decimal.RequireFromString("0.0825")))
		assert.True(t, again.Default().Equal(decimal.RequireFromString("0.05")))
	})

	t.Run("default always present", func(t *testing.T) {
		repo := NewTaxRateMemoryRepository(entities.TaxRateTable{"EU-DE": decimal.RequireFromString("0.19")})
		table, err := repo.GetTable(ctx)
		require.NoError(t, err)
		_, ok := table.Lookup(entities.DefaultTaxRegion)
		assert.True(t, ok)
	})
}
