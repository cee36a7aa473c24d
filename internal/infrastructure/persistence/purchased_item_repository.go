package persistence

import (
	"context"
	"time"

	"github.com/vibecoders/backend/internal/domain/pantry"
	"github.com/vibecoders/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchasedItemRepository implements PurchasedItemRepository using GORM
type GormPurchasedItemRepository struct {
	db *gorm.DB
}

// NewGormPurchasedItemRepository creates a new GormPurchasedItemRepository
func NewGormPurchasedItemRepository(db *gorm.DB) *GormPurchasedItemRepository {
	return &GormPurchasedItemRepository{db: db}
}

// FindByUserAndTab returns a user's purchased marks for one tab
func (r *GormPurchasedItemRepository) FindByUserAndTab(ctx context.Context, userID, tabKey string) ([]pantry.PurchasedItem, error) {
	var items []pantry.PurchasedItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND tab_key = ?", userID, tabKey).
		Order("item_name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts the mark or flips the existing row with the same
// (user_id, item_name, tab_key) in a single statement
func (r *GormPurchasedItemRepository) Upsert(ctx context.Context, item *pantry.PurchasedItem) error {
	item.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "item_name"}, {Name: "tab_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"purchased",
				"updated_at",
			}),
		}).
		Create(item).Error; err != nil {
		return err
	}

	// On conflict the original row survives; pick up its identity
	var surviving pantry.PurchasedItem
	if err := r.db.WithContext(ctx).Select("id", "created_at").
		Where("user_id = ? AND item_name = ? AND tab_key = ?", item.UserID, item.ItemName, item.TabKey).
		Take(&surviving).Error; err != nil {
		return err
	}
	item.ID = surviving.ID
	item.CreatedAt = surviving.CreatedAt
	return nil
}

// DeleteByUserAndTab removes all marks of a user's tab. Clearing an empty
// tab is not an error; the caller gets the affected row count.
func (r *GormPurchasedItemRepository) DeleteByUserAndTab(ctx context.Context, userID, tabKey string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND tab_key = ?", userID, tabKey).
		Delete(&pantry.PurchasedItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByUser removes all marks of a user across every tab
func (r *GormPurchasedItemRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&pantry.PurchasedItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByKey removes a single mark by its natural key
func (r *GormPurchasedItemRepository) DeleteByKey(ctx context.Context, userID, itemName, tabKey string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND item_name = ? AND tab_key = ?", userID, itemName, tabKey).
		Delete(&pantry.PurchasedItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
