package pantry

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// DefaultUserID is used when a request does not name a user
const DefaultUserID = "default"

// PantryItem is an ingredient a user keeps on hand, with the quantity
// owned and the price paid. A user has at most one item per name.
type PantryItem struct {
	shared.BaseEntity
	UserID   string          `gorm:"type:varchar(100);not null;default:'default';uniqueIndex:idx_pantry_user_name,priority:1"`
	Name     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_pantry_user_name,priority:2"`
	Quantity float64         `gorm:"not null;default:0"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Unit     *string         `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PantryItem) TableName() string {
	return "user_ingredients"
}

// NewPantryItem creates a pantry item for a user. An empty userID falls
// back to the default user.
func NewPantryItem(userID, name string, quantity float64, price decimal.Decimal, unit *string) (*PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Ingredient name is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if userID == "" {
		userID = DefaultUserID
	}

	return &PantryItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		Unit:       unit,
	}, nil
}

// Update replaces quantity, price and unit
func (i *PantryItem) Update(quantity float64, price decimal.Decimal, unit *string) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	i.Quantity = quantity
	i.Price = price
	i.Unit = unit
	return nil
}
