package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Abdelrahman10101/Cost-Management/internal/clock"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	mock_interfaces "github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces/mocks"
)

func TestCostEntryUseCase_Create(t *testing.T) {
	valid := CreateCostEntryCommand{Category: "Travel", Amount: dec("320.40"), Date: "2024-03-02", Description: "Client visit"}

	t.Run("missing fields", func(t *testing.T) {
		uc := NewCostEntryUseCase(nil, nil, nil, nil)
		cmd := valid
		cmd.Category = "  "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidCostEntry) {
			t.Fatalf("expected ErrInvalidCostEntry, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewCostEntryUseCase(nil, nil, nil, nil)
		cmd := valid
		cmd.Amount = dec("-1")
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidCostAmount) {
			t.Fatalf("expected ErrInvalidCostAmount, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		uc := NewCostEntryUseCase(nil, nil, nil, nil)
		cmd := valid
		cmd.Date = "02/03/2024"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidCostDate) {
			t.Fatalf("expected ErrInvalidCostDate, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewCostEntryUseCase(repo, ids, clock.NewFakeClock(testNow), nil)

		ids.EXPECT().NextID().Return(int64(3))
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CostEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CostEntry) (entities.CostEntry, error) {
				if e.ID != 3 || e.Category != "Travel" || e.Date != "2024-03-02" {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if !e.CreatedAt.Equal(testNow) {
					t.Fatalf("expected created_at from clock, got %v", e.CreatedAt)
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), valid)
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if !res.Amount.Equal(dec("320.4")) {
			t.Fatalf("unexpected amount: %s", res.Amount)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewCostEntryUseCase(repo, ids, clock.NewFakeClock(testNow), nil)

		ids.EXPECT().NextID().Return(int64(3))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CostEntry{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), valid); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCostEntryUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCostEntryUseCase(nil, nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), -1); !errors.Is(err, ErrInvalidCostEntryID) {
			t.Fatalf("expected ErrInvalidCostEntryID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		uc := NewCostEntryUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.CostEntry{}, nil)

		if _, err := uc.GetByID(context.Background(), 99); !errors.Is(err, ErrCostEntryNotFound) {
			t.Fatalf("expected ErrCostEntryNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostEntryRepository(ctrl)
		uc := NewCostEntryUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.CostEntry{ID: 1, Category: "Office Supplies"}, nil)

		e, err := uc.GetByID(context.Background(), 1)
		if err != nil || e.Category != "Office Supplies" {
			t.Fatalf("unexpected result: %+v, %v", e, err)
		}
	})
}

func TestCostEntryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICostEntryRepository(ctrl)
	uc := NewCostEntryUseCase(repo, nil, nil, nil)
	repo.EXPECT().List(gomock.Any()).Return([]entities.CostEntry{{ID: 1}, {ID: 2}}, nil)

	list, err := uc.List(context.Background())
	if err != nil || len(list) != 2 {
		t.Fatalf("unexpected list: %+v, %v", list, err)
	}
}
