package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/pantry"
	"github.com/vibecoders/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPantryItemRepository implements PantryItemRepository using GORM
type GormPantryItemRepository struct {
	db *gorm.DB
}

// NewGormPantryItemRepository creates a new GormPantryItemRepository
func NewGormPantryItemRepository(db *gorm.DB) *GormPantryItemRepository {
	return &GormPantryItemRepository{db: db}
}

// FindByUser returns a user's pantry items ordered by name
func (r *GormPantryItemRepository) FindByUser(ctx context.Context, userID string) ([]pantry.PantryItem, error) {
	var items []pantry.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserAndName returns one item by its natural key
func (r *GormPantryItemRepository) FindByUserAndName(ctx context.Context, userID, name string) (*pantry.PantryItem, error) {
	var item pantry.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Upsert inserts the item or overwrites quantity, price and unit of the
// existing row with the same (user_id, name) in a single statement
func (r *GormPantryItemRepository) Upsert(ctx context.Context, item *pantry.PantryItem) error {
	item.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"quantity",
				"price",
				"unit",
				"updated_at",
			}),
		}).
		Create(item).Error; err != nil {
		return err
	}

	// On conflict the original row survives; pick up its identity
	var surviving pantry.PantryItem
	if err := r.db.WithContext(ctx).Select("id", "created_at").
		Where("user_id = ? AND name = ?", item.UserID, item.Name).
		Take(&surviving).Error; err != nil {
		return err
	}
	item.ID = surviving.ID
	item.CreatedAt = surviving.CreatedAt
	return nil
}

// Delete removes an item by ID
func (r *GormPantryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pantry.PantryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUserAndName removes an item by its natural key
func (r *GormPantryItemRepository) DeleteByUserAndName(ctx context.Context, userID, name string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&pantry.PantryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
