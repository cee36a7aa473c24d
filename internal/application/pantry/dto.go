package pantry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vibecoders/backend/internal/domain/pantry"
)

// SavePantryItemRequest represents an upsert of one pantry item,
// keyed by (user, name)
type SavePantryItemRequest struct {
	UserID   string          `json:"user_id" binding:"omitempty,max=100"`
	Name     string          `json:"name" binding:"required,min=1,max=255"`
	Quantity float64         `json:"quantity" binding:"min=0"`
	Price    decimal.Decimal `json:"price"`
	Unit     *string         `json:"unit" binding:"omitempty,max=50"`
}

// SavePantryItemsBatchRequest upserts several pantry items. Elements
// apply independently; a failure leaves earlier elements saved.
type SavePantryItemsBatchRequest struct {
	Items []SavePantryItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PantryItemResponse represents a pantry item in API responses
type PantryItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Quantity  float64         `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Unit      *string         `json:"unit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SavePurchasedItemRequest represents an upsert of one purchased mark,
// keyed by (user, item, tab)
type SavePurchasedItemRequest struct {
	UserID    string `json:"user_id" binding:"omitempty,max=100"`
	ItemName  string `json:"item_name" binding:"required,min=1,max=255"`
	TabKey    string `json:"tab_key" binding:"required,oneof=tomorrow week month"`
	Purchased bool   `json:"purchased"`
}

// SavePurchasedItemsBatchRequest upserts several purchased marks,
// non-atomically like the pantry batch
type SavePurchasedItemsBatchRequest struct {
	Items []SavePurchasedItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchasedItemResponse represents a purchased mark in API responses
type PurchasedItemResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	ItemName  string    `json:"item_name"`
	TabKey    string    `json:"tab_key"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClearPurchasedResponse reports how many marks a clear removed
type ClearPurchasedResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToPantryItemResponse converts a domain PantryItem to its API shape
func ToPantryItemResponse(item *pantry.PantryItem) PantryItemResponse {
	return PantryItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Unit:      item.Unit,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToPurchasedItemResponse converts a domain PurchasedItem to its API shape
func ToPurchasedItemResponse(item *pantry.PurchasedItem) PurchasedItemResponse {
	return PurchasedItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ItemName:  item.ItemName,
		TabKey:    item.TabKey,
		Purchased: item.Purchased,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// normalizeUser falls back to the shared default scope when the client
// sends no user
func normalizeUser(userID string) string {
	if userID == "" {
		return pantry.DefaultUserID
	}
	return userID
}
