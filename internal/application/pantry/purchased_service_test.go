package pantry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vibecoders/backend/internal/domain/pantry"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// MockPurchasedItemRepository is a mock implementation of PurchasedItemRepository
type MockPurchasedItemRepository struct {
	mock.Mock
}

func (m *MockPurchasedItemRepository) FindByUserAndTab(ctx context.Context, userID, tabKey string) ([]pantry.PurchasedItem, error) {
	args := m.Called(ctx, userID, tabKey)
	return args.Get(0).([]pantry.PurchasedItem), args.Error(1)
}

func (m *MockPurchasedItemRepository) Upsert(ctx context.Context, item *pantry.PurchasedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPurchasedItemRepository) DeleteByUserAndTab(ctx context.Context, userID, tabKey string) (int64, error) {
	args := m.Called(ctx, userID, tabKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchasedItemRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchasedItemRepository) DeleteByKey(ctx context.Context, userID, itemName, tabKey string) error {
	args := m.Called(ctx, userID, itemName, tabKey)
	return args.Error(0)
}

func TestPurchasedService_List(t *testing.T) {
	t.Run("lists one tab for the default user", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		item, err := pantry.NewPurchasedItem("", "Молоко", pantry.TabWeek, true)
		require.NoError(t, err)

		repo.On("FindByUserAndTab", mock.Anything, "default", "week").
			Return([]pantry.PurchasedItem{*item}, nil)

		items, err := service.List(context.Background(), "", "week")

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Молоко", items[0].ItemName)
		assert.True(t, items[0].Purchased)
	})

	t.Run("rejects unknown tab", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		_, err := service.List(context.Background(), "", "year")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "FindByUserAndTab")
	})
}

func TestPurchasedService_Save(t *testing.T) {
	t.Run("upserts a mark", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*pantry.PurchasedItem")).Return(nil)

		resp, err := service.Save(context.Background(), SavePurchasedItemRequest{
			ItemName:  "Молоко",
			TabKey:    "tomorrow",
			Purchased: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Молоко", resp.ItemName)
		assert.Equal(t, "tomorrow", resp.TabKey)
		assert.True(t, resp.Purchased)
	})

	t.Run("rejects unknown tab before storage", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		_, err := service.Save(context.Background(), SavePurchasedItemRequest{
			ItemName: "Молоко",
			TabKey:   "someday",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert")
	})
}

func TestPurchasedService_SaveBatch(t *testing.T) {
	t.Run("stops at first failing element", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		storageErr := errors.New("constraint violation")
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(i *pantry.PurchasedItem) bool {
			return i.ItemName == "Молоко"
		})).Return(nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(i *pantry.PurchasedItem) bool {
			return i.ItemName == "Хлеб"
		})).Return(storageErr)

		saved, err := service.SaveBatch(context.Background(), SavePurchasedItemsBatchRequest{
			Items: []SavePurchasedItemRequest{
				{ItemName: "Молоко", TabKey: "week", Purchased: true},
				{ItemName: "Хлеб", TabKey: "week", Purchased: false},
			},
		})

		assert.ErrorIs(t, err, storageErr)
		require.Len(t, saved, 1)
		assert.Equal(t, "Молоко", saved[0].ItemName)
	})
}

func TestPurchasedService_Delete(t *testing.T) {
	t.Run("deletes by natural key", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("DeleteByKey", mock.Anything, "default", "Молоко", "month").Return(nil)

		assert.NoError(t, service.Delete(context.Background(), "", "Молоко", "month"))
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("DeleteByKey", mock.Anything, "default", "Молоко", "month").Return(shared.ErrNotFound)

		err := service.Delete(context.Background(), "", "Молоко", "month")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPurchasedService_Clear(t *testing.T) {
	t.Run("clears one tab", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("DeleteByUserAndTab", mock.Anything, "default", "week").Return(int64(3), nil)

		resp, err := service.Clear(context.Background(), "", "week")

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Deleted)
	})

	t.Run("clears every tab when none given", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("DeleteByUser", mock.Anything, "anna").Return(int64(7), nil)

		resp, err := service.Clear(context.Background(), "anna", "")

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.Deleted)
		repo.AssertNotCalled(t, "DeleteByUserAndTab")
	})

	t.Run("clearing nothing is not an error", func(t *testing.T) {
		repo := new(MockPurchasedItemRepository)
		service := NewPurchasedService(repo)

		repo.On("DeleteByUserAndTab", mock.Anything, "default", "month").Return(int64(0), nil)

		resp, err := service.Clear(context.Background(), "", "month")

		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.Deleted)
	})
}
