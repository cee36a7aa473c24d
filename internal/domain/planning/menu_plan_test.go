package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuPlan(t *testing.T) {
	t.Run("creates plan and truncates date to day", func(t *testing.T) {
		plan, err := NewMenuPlan(time.Date(2024, 11, 15, 13, 45, 0, 0, time.UTC), nil)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), plan.Date)
		assert.Nil(t, plan.UserID)
		assert.True(t, plan.IsEmpty())
	})

	t.Run("rejects zero date", func(t *testing.T) {
		_, err := NewMenuPlan(time.Time{}, nil)
		assert.Error(t, err)
	})
}

func TestMenuPlanSetSlot(t *testing.T) {
	plan, err := NewMenuPlan(time.Now(), nil)
	require.NoError(t, err)

	recipeID := uuid.New()
	for _, slot := range []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotExtra} {
		require.NoError(t, plan.SetSlot(slot, &recipeID))
		require.NotNil(t, plan.SlotRecipeID(slot))
		assert.Equal(t, recipeID, *plan.SlotRecipeID(slot))
	}
	assert.False(t, plan.IsEmpty())

	t.Run("clears slot with nil", func(t *testing.T) {
		require.NoError(t, plan.SetSlot(SlotLunch, nil))
		assert.Nil(t, plan.LunchRecipeID)
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		err := plan.SetSlot(Slot("brunch"), &recipeID)
		assert.Error(t, err)
	})
}

func TestMenuPlanReplaceAdditional(t *testing.T) {
	plan, err := NewMenuPlan(time.Now(), nil)
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()
	plan.ReplaceAdditional([]uuid.UUID{first, second})

	require.Len(t, plan.Additional, 2)
	assert.Equal(t, 0, plan.Additional[0].SortOrder)
	assert.Equal(t, 1, plan.Additional[1].SortOrder)
	assert.Equal(t, []uuid.UUID{first, second}, plan.AdditionalRecipeIDs())

	t.Run("replaces previous list", func(t *testing.T) {
		third := uuid.New()
		plan.ReplaceAdditional([]uuid.UUID{third})
		require.Len(t, plan.Additional, 1)
		assert.Equal(t, third, plan.Additional[0].RecipeID)
	})

	t.Run("empty list clears items", func(t *testing.T) {
		plan.ReplaceAdditional(nil)
		assert.Empty(t, plan.Additional)
	})
}
