package pantry

import (
	"context"

	"github.com/google/uuid"
)

// PantryItemRepository defines the interface for pantry persistence
type PantryItemRepository interface {
	// FindByUser returns a user's pantry items ordered by name
	FindByUser(ctx context.Context, userID string) ([]PantryItem, error)

	// FindByUserAndName returns one item by its natural key, or ErrNotFound
	FindByUserAndName(ctx context.Context, userID, name string) (*PantryItem, error)

	// Upsert inserts the item or, when the user already has an item with
	// that name, overwrites its quantity, price and unit atomically
	Upsert(ctx context.Context, item *PantryItem) error

	// Delete removes an item by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserAndName removes an item by its natural key
	DeleteByUserAndName(ctx context.Context, userID, name string) error
}

// PurchasedItemRepository defines the interface for purchased mark persistence
type PurchasedItemRepository interface {
	// FindByUserAndTab returns a user's purchased marks for one tab
	FindByUserAndTab(ctx context.Context, userID, tabKey string) ([]PurchasedItem, error)

	// Upsert inserts the mark or flips the existing row for the same
	// (user, item, tab) key atomically
	Upsert(ctx context.Context, item *PurchasedItem) error

	// DeleteByUserAndTab removes all marks of a user's tab and reports how
	// many rows went away
	DeleteByUserAndTab(ctx context.Context, userID, tabKey string) (int64, error)

	// DeleteByUser removes all marks of a user across every tab
	DeleteByUser(ctx context.Context, userID string) (int64, error)

	// DeleteByKey removes a single mark by its natural key
	DeleteByKey(ctx context.Context, userID, itemName, tabKey string) error
}
