package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/planning"
	"github.com/vibecoders/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuPlanRepository implements MenuPlanRepository using GORM
type GormMenuPlanRepository struct {
	db *gorm.DB
}

// NewGormMenuPlanRepository creates a new GormMenuPlanRepository
func NewGormMenuPlanRepository(db *gorm.DB) *GormMenuPlanRepository {
	return &GormMenuPlanRepository{db: db}
}

// FindByID loads a plan with its slot recipes and additional items
func (r *GormMenuPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.MenuPlan, error) {
	var plan planning.MenuPlan
	if err := r.withPreloads(r.db.WithContext(ctx)).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindByDate loads the plan for a calendar day
func (r *GormMenuPlanRepository) FindByDate(ctx context.Context, date time.Time) (*planning.MenuPlan, error) {
	var plan planning.MenuPlan
	if err := r.withPreloads(r.db.WithContext(ctx)).
		Where("date = ?", dateOnly(date)).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindByDateRange returns plans with dates in [start, end], ordered by date
func (r *GormMenuPlanRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]planning.MenuPlan, error) {
	var plans []planning.MenuPlan
	if err := r.withPreloads(r.db.WithContext(ctx)).
		Where("date >= ? AND date <= ?", dateOnly(start), dateOnly(end)).
		Order("date ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Upsert saves the plan for its date. A conflicting date overwrites the
// existing row in place, and the additional list is fully replaced. The
// whole operation runs in one transaction.
func (r *GormMenuPlanRepository) Upsert(ctx context.Context, plan *planning.MenuPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan.UpdatedAt = time.Now()
		if err := tx.
			Omit("BreakfastRecipe", "LunchRecipe", "DinnerRecipe", "ExtraRecipe", "Additional").
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"user_id",
					"breakfast_recipe_id",
					"lunch_recipe_id",
					"dinner_recipe_id",
					"extra_recipe_id",
					"updated_at",
				}),
			}).
			Create(plan).Error; err != nil {
			return err
		}

		// On conflict the original row survives; pick up its identity
		var surviving planning.MenuPlan
		if err := tx.Select("id", "created_at").
			Where("date = ?", plan.Date).
			Take(&surviving).Error; err != nil {
			return err
		}
		plan.ID = surviving.ID
		plan.CreatedAt = surviving.CreatedAt

		if err := tx.Where("menu_plan_id = ?", plan.ID).Delete(&planning.MenuPlanItem{}).Error; err != nil {
			return err
		}
		if len(plan.Additional) > 0 {
			for i := range plan.Additional {
				plan.Additional[i].MenuPlanID = plan.ID
			}
			if err := tx.Create(&plan.Additional).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a plan; its additional items cascade
func (r *GormMenuPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&planning.MenuPlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormMenuPlanRepository) withPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("BreakfastRecipe").
		Preload("LunchRecipe").
		Preload("DinnerRecipe").
		Preload("ExtraRecipe").
		Preload("Additional", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Additional.Recipe")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
