package pantry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vibecoders/backend/internal/domain/pantry"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// MockPantryItemRepository is a mock implementation of PantryItemRepository
type MockPantryItemRepository struct {
	mock.Mock
}

func (m *MockPantryItemRepository) FindByUser(ctx context.Context, userID string) ([]pantry.PantryItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) FindByUserAndName(ctx context.Context, userID, name string) (*pantry.PantryItem, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.PantryItem), args.Error(1)
}

func (m *MockPantryItemRepository) Upsert(ctx context.Context, item *pantry.PantryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPantryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPantryItemRepository) DeleteByUserAndName(ctx context.Context, userID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func TestPantryService_List(t *testing.T) {
	t.Run("defaults empty user to shared scope", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		item, err := pantry.NewPantryItem("", "Молоко", 1, decimal.NewFromInt(89), nil)
		require.NoError(t, err)

		repo.On("FindByUser", mock.Anything, "default").Return([]pantry.PantryItem{*item}, nil)

		items, err := service.List(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Молоко", items[0].Name)
		assert.Equal(t, "default", items[0].UserID)
		repo.AssertExpectations(t)
	})
}

func TestPantryService_Save(t *testing.T) {
	t.Run("upserts and returns the row", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*pantry.PantryItem")).Return(nil)

		resp, err := service.Save(context.Background(), SavePantryItemRequest{
			Name:     "Молоко",
			Quantity: 2,
			Price:    decimal.NewFromInt(89),
		})

		require.NoError(t, err)
		assert.Equal(t, "Молоко", resp.Name)
		assert.Equal(t, float64(2), resp.Quantity)
		assert.Equal(t, "default", resp.UserID)
	})

	t.Run("rejects empty name before storage", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		_, err := service.Save(context.Background(), SavePantryItemRequest{
			Name: "  ",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert")
	})
}

func TestPantryService_SaveBatch(t *testing.T) {
	t.Run("saves all elements in order", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		saved, err := service.SaveBatch(context.Background(), SavePantryItemsBatchRequest{
			Items: []SavePantryItemRequest{
				{Name: "Молоко", Quantity: 1, Price: decimal.NewFromInt(89)},
				{Name: "Хлеб", Quantity: 2, Price: decimal.NewFromInt(45)},
			},
		})

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, "Молоко", saved[0].Name)
		assert.Equal(t, "Хлеб", saved[1].Name)
		repo.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("keeps earlier elements on failure", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		storageErr := errors.New("connection reset")
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(i *pantry.PantryItem) bool {
			return i.Name == "Молоко"
		})).Return(nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(i *pantry.PantryItem) bool {
			return i.Name == "Хлеб"
		})).Return(storageErr)

		saved, err := service.SaveBatch(context.Background(), SavePantryItemsBatchRequest{
			Items: []SavePantryItemRequest{
				{Name: "Молоко", Quantity: 1, Price: decimal.NewFromInt(89)},
				{Name: "Хлеб", Quantity: 2, Price: decimal.NewFromInt(45)},
				{Name: "Сыр", Quantity: 1, Price: decimal.NewFromInt(300)},
			},
		})

		assert.ErrorIs(t, err, storageErr)
		require.Len(t, saved, 1)
		assert.Equal(t, "Молоко", saved[0].Name)
	})
}

func TestPantryService_Delete(t *testing.T) {
	t.Run("deletes by natural key", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		repo.On("DeleteByUserAndName", mock.Anything, "anna", "Молоко").Return(nil)

		assert.NoError(t, service.Delete(context.Background(), "anna", "Молоко"))
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockPantryItemRepository)
		service := NewPantryService(repo)

		repo.On("DeleteByUserAndName", mock.Anything, "default", "Молоко").Return(shared.ErrNotFound)

		err := service.Delete(context.Background(), "", "Молоко")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
