package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// Slot identifies one of the fixed meal slots of a day
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotExtra     Slot = "extra"
)

// DefaultUserID is used when a request does not name a user
const DefaultUserID = "default"

// MenuPlan is the plan for a single calendar day. At most one plan
// exists per date; saving again for the same date replaces it.
type MenuPlan struct {
	shared.BaseEntity
	Date   time.Time `gorm:"type:date;not null;uniqueIndex"`
	UserID *string   `gorm:"type:varchar(100)"`

	BreakfastRecipeID *uuid.UUID `gorm:"type:uuid"`
	LunchRecipeID     *uuid.UUID `gorm:"type:uuid"`
	DinnerRecipeID    *uuid.UUID `gorm:"type:uuid"`
	ExtraRecipeID     *uuid.UUID `gorm:"type:uuid"`

	BreakfastRecipe *catalog.Recipe `gorm:"foreignKey:BreakfastRecipeID;constraint:OnDelete:SET NULL"`
	LunchRecipe     *catalog.Recipe `gorm:"foreignKey:LunchRecipeID;constraint:OnDelete:SET NULL"`
	DinnerRecipe    *catalog.Recipe `gorm:"foreignKey:DinnerRecipeID;constraint:OnDelete:SET NULL"`
	ExtraRecipe     *catalog.Recipe `gorm:"foreignKey:ExtraRecipeID;constraint:OnDelete:SET NULL"`

	Additional []MenuPlanItem `gorm:"foreignKey:MenuPlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MenuPlan) TableName() string {
	return "menu_plans"
}

// MenuPlanItem is an additional recipe attached to a day beyond the
// four fixed slots. SortOrder preserves the order the client sent.
type MenuPlanItem struct {
	shared.BaseEntity
	MenuPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null"`
	SortOrder  int       `gorm:"not null;default:0"`

	Recipe *catalog.Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (MenuPlanItem) TableName() string {
	return "menu_plan_items"
}

// NewMenuPlan creates a plan for the given date. The time component of
// the date is discarded.
func NewMenuPlan(date time.Time, userID *string) (*MenuPlan, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Menu plan date is required")
	}
	return &MenuPlan{
		BaseEntity: shared.NewBaseEntity(),
		Date:       truncateToDay(date),
		UserID:     userID,
	}, nil
}

// SetSlot assigns a recipe to one of the fixed slots; nil clears it
func (p *MenuPlan) SetSlot(slot Slot, recipeID *uuid.UUID) error {
	switch slot {
	case SlotBreakfast:
		p.BreakfastRecipeID = recipeID
	case SlotLunch:
		p.LunchRecipeID = recipeID
	case SlotDinner:
		p.DinnerRecipeID = recipeID
	case SlotExtra:
		p.ExtraRecipeID = recipeID
	default:
		return shared.NewDomainError("INVALID_SLOT", "Unknown menu plan slot")
	}
	return nil
}

// SlotRecipeID returns the recipe assigned to a slot, or nil
func (p *MenuPlan) SlotRecipeID(slot Slot) *uuid.UUID {
	switch slot {
	case SlotBreakfast:
		return p.BreakfastRecipeID
	case SlotLunch:
		return p.LunchRecipeID
	case SlotDinner:
		return p.DinnerRecipeID
	case SlotExtra:
		return p.ExtraRecipeID
	}
	return nil
}

// ReplaceAdditional replaces the additional recipe list, keeping the
// order of the given IDs
func (p *MenuPlan) ReplaceAdditional(recipeIDs []uuid.UUID) {
	items := make([]MenuPlanItem, 0, len(recipeIDs))
	for i, id := range recipeIDs {
		items = append(items, MenuPlanItem{
			BaseEntity: shared.NewBaseEntity(),
			MenuPlanID: p.ID,
			RecipeID:   id,
			SortOrder:  i,
		})
	}
	p.Additional = items
}

// AdditionalRecipeIDs returns the additional recipe IDs in list order
func (p *MenuPlan) AdditionalRecipeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Additional))
	for _, item := range p.Additional {
		ids = append(ids, item.RecipeID)
	}
	return ids
}

// IsEmpty reports whether the plan has no recipes at all
func (p *MenuPlan) IsEmpty() bool {
	return p.BreakfastRecipeID == nil &&
		p.LunchRecipeID == nil &&
		p.DinnerRecipeID == nil &&
		p.ExtraRecipeID == nil &&
		len(p.Additional) == 0
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
