package pantry

import (
	"strings"

	"github.com/vibecoders/backend/internal/domain/shared"
)

// Shopping list tabs the tracker knows about
const (
	TabTomorrow = "tomorrow"
	TabWeek     = "week"
	TabMonth    = "month"
)

// PurchasedItem marks a shopping list entry as bought. The natural key
// is (user, item name, tab): marking the same entry again flips the
// existing row instead of inserting a new one.
type PurchasedItem struct {
	shared.BaseEntity
	UserID    string `gorm:"type:varchar(100);not null;default:'default';uniqueIndex:idx_purchased_user_item_tab,priority:1"`
	ItemName  string `gorm:"type:varchar(255);not null;uniqueIndex:idx_purchased_user_item_tab,priority:2"`
	TabKey    string `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchased_user_item_tab,priority:3"`
	Purchased bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PurchasedItem) TableName() string {
	return "purchased_items"
}

// ValidTab reports whether key names a known shopping list tab
func ValidTab(key string) bool {
	switch key {
	case TabTomorrow, TabWeek, TabMonth:
		return true
	}
	return false
}

// NewPurchasedItem creates a purchased mark for a shopping list entry
func NewPurchasedItem(userID, itemName, tabKey string, purchased bool) (*PurchasedItem, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name is required")
	}
	if !ValidTab(tabKey) {
		return nil, shared.NewDomainError("INVALID_TAB", "Unknown shopping list tab")
	}
	if userID == "" {
		userID = DefaultUserID
	}

	return &PurchasedItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ItemName:   itemName,
		TabKey:     tabKey,
		Purchased:  purchased,
	}, nil
}
