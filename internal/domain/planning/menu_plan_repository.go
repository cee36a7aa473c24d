package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MenuPlanRepository defines the interface for menu plan persistence
type MenuPlanRepository interface {
	// FindByID loads a plan with its slot recipes and additional items
	FindByID(ctx context.Context, id uuid.UUID) (*MenuPlan, error)

	// FindByDate loads the plan for a calendar day, or ErrNotFound
	FindByDate(ctx context.Context, date time.Time) (*MenuPlan, error)

	// FindByDateRange returns plans with dates in [start, end], ordered by
	// date ascending, with slot recipes and additional items loaded
	FindByDateRange(ctx context.Context, start, end time.Time) ([]MenuPlan, error)

	// Upsert saves the plan for its date. If a plan already exists for
	// that date its slots are overwritten and its additional list is
	// replaced, all within a single transaction.
	Upsert(ctx context.Context, plan *MenuPlan) error

	// Delete removes a plan and its additional items
	Delete(ctx context.Context, id uuid.UUID) error
}
