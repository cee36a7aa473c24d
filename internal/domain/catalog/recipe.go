package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// Recipe categories known to the catalog. The list mirrors the values
// the frontend filter offers; unknown categories are rejected on create.
const (
	CategoryBreakfast = "завтрак"
	CategorySoup      = "суп"
	CategoryMain      = "горячее"
	CategorySalad     = "салат"
	CategoryDessert   = "десерт"
	CategoryDrink     = "напиток"
)

// Recipe is the aggregate root of the catalog context. Ingredients and
// steps live and die with their recipe.
type Recipe struct {
	shared.BaseEntity
	Title                   string   `gorm:"type:varchar(255);not null"`
	Category                string   `gorm:"type:varchar(50);not null;index"`
	CookTime                int      `gorm:"not null"` // minutes
	Servings                int      `gorm:"not null"`
	Image                   *string  `gorm:"type:text"`
	CaloriesPerServing      *int     `gorm:""`
	ProteinsPerServing      *float64 `gorm:""`
	FatsPerServing          *float64 `gorm:""`
	CarbohydratesPerServing *float64 `gorm:""`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Steps       []Step       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Reviews     []Review     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`

	// Rating is derived from reviews at read time and never stored.
	Rating *float64 `gorm:"-"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient is a single line of a recipe's ingredient list.
// Amount stays a free-form string ("2", "1/2", "по вкусу").
type Ingredient struct {
	shared.BaseEntity
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Amount    string    `gorm:"type:varchar(50);not null"`
	Unit      string    `gorm:"type:varchar(50);not null"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Ingredient) TableName() string {
	return "ingredients"
}

// Step is a single cooking instruction within a recipe.
type Step struct {
	shared.BaseEntity
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Number      int       `gorm:"not null"`
	Instruction string    `gorm:"type:text;not null"`
	Image       *string   `gorm:"type:text"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Step) TableName() string {
	return "steps"
}

// NewRecipe creates a recipe with its ingredient and step lists.
// List positions are assigned from slice order.
func NewRecipe(title, category string, cookTime, servings int) (*Recipe, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Recipe title is required")
	}
	if len(title) > 255 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Recipe title cannot exceed 255 characters")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Recipe category is required")
	}
	if cookTime <= 0 {
		return nil, shared.NewDomainError("INVALID_COOK_TIME", "Cooking time must be positive")
	}
	if servings <= 0 {
		return nil, shared.NewDomainError("INVALID_SERVINGS", "Servings must be positive")
	}

	return &Recipe{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Category:   strings.ToLower(strings.TrimSpace(category)),
		CookTime:   cookTime,
		Servings:   servings,
	}, nil
}

// AddIngredient appends an ingredient line, keeping list order
func (r *Recipe) AddIngredient(name, amount, unit string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient name is required")
	}
	r.Ingredients = append(r.Ingredients, Ingredient{
		BaseEntity: shared.NewBaseEntity(),
		RecipeID:   r.ID,
		Name:       strings.TrimSpace(name),
		Amount:     amount,
		Unit:       unit,
		SortOrder:  len(r.Ingredients),
	})
	return nil
}

// AddStep appends a cooking step, numbering it after the last one
func (r *Recipe) AddStep(instruction string, image *string) error {
	if strings.TrimSpace(instruction) == "" {
		return shared.NewDomainError("INVALID_STEP", "Step instruction is required")
	}
	r.Steps = append(r.Steps, Step{
		BaseEntity:  shared.NewBaseEntity(),
		RecipeID:    r.ID,
		Number:      len(r.Steps) + 1,
		Instruction: instruction,
		Image:       image,
		SortOrder:   len(r.Steps),
	})
	return nil
}

// SetNutrition sets the per-serving nutrition facts. Any field may be nil
// when the value is unknown.
func (r *Recipe) SetNutrition(calories *int, proteins, fats, carbohydrates *float64) error {
	if calories != nil && *calories < 0 {
		return shared.NewDomainError("INVALID_NUTRITION", "Calories cannot be negative")
	}
	for _, v := range []*float64{proteins, fats, carbohydrates} {
		if v != nil && *v < 0 {
			return shared.NewDomainError("INVALID_NUTRITION", "Nutrition values cannot be negative")
		}
	}
	r.CaloriesPerServing = calories
	r.ProteinsPerServing = proteins
	r.FatsPerServing = fats
	r.CarbohydratesPerServing = carbohydrates
	return nil
}

// HasIngredient reports whether the recipe lists an ingredient whose name
// contains the given term, case-insensitively.
func (r *Recipe) HasIngredient(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), term) {
			return true
		}
	}
	return false
}
