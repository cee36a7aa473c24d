package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// Review rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user review attached to a recipe. Date keeps the
// display string the client sends ("15 ноя 2024") rather than a
// parsed timestamp.
type Review struct {
	shared.BaseEntity
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Author   string    `gorm:"type:varchar(100);not null"`
	Rating   int       `gorm:"not null"`
	Comment  string    `gorm:"type:text;not null"`
	Date     string    `gorm:"type:varchar(50);not null"`
	Image    *string   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review for a recipe
func NewReview(recipeID uuid.UUID, author string, rating int, comment, date string, image *string) (*Review, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Review author is required")
	}
	if len(author) > 100 {
		return nil, shared.NewDomainError("INVALID_AUTHOR", "Review author cannot exceed 100 characters")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Review comment is required")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		RecipeID:   recipeID,
		Author:     author,
		Rating:     rating,
		Comment:    comment,
		Date:       date,
		Image:      image,
	}, nil
}
