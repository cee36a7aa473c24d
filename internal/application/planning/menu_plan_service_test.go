package planning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/vibecoders/backend/internal/application/catalog"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/domain/planning"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// MockMenuPlanRepository is a mock implementation of MenuPlanRepository
type MockMenuPlanRepository struct {
	mock.Mock
}

func (m *MockMenuPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.MenuPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.MenuPlan), args.Error(1)
}

func (m *MockMenuPlanRepository) FindByDate(ctx context.Context, date time.Time) (*planning.MenuPlan, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.MenuPlan), args.Error(1)
}

func (m *MockMenuPlanRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]planning.MenuPlan, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]planning.MenuPlan), args.Error(1)
}

func (m *MockMenuPlanRepository) Upsert(ctx context.Context, plan *planning.MenuPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMenuPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeRepository is a mock implementation of the catalog RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*catalog.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Recipe, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Save(ctx context.Context, recipe *catalog.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecipeProjector is a mock implementation of RecipeProjector
type MockRecipeProjector struct {
	mock.Mock
}

func (m *MockRecipeProjector) ListProjectionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalogapp.RecipeListItem, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]catalogapp.RecipeListItem), args.Error(1)
}

func newTestPlanService() (*MenuPlanService, *MockMenuPlanRepository, *MockRecipeRepository, *MockRecipeProjector) {
	planRepo := new(MockMenuPlanRepository)
	recipeRepo := new(MockRecipeRepository)
	projector := new(MockRecipeProjector)
	return NewMenuPlanService(planRepo, recipeRepo, projector), planRepo, recipeRepo, projector
}

func newStoredRecipe(t *testing.T, title string) *catalog.Recipe {
	t.Helper()
	recipe, err := catalog.NewRecipe(title, catalog.CategoryMain, 45, 2)
	require.NoError(t, err)
	return recipe
}

func TestMenuPlanService_Save(t *testing.T) {
	t.Run("validates refs then upserts and assembles", func(t *testing.T) {
		service, planRepo, recipeRepo, projector := newTestPlanService()

		breakfast := newStoredRecipe(t, "Сырники")
		extra := newStoredRecipe(t, "Компот")

		recipeRepo.On("FindByIDs", mock.Anything, mock.Anything).
			Return([]catalog.Recipe{*breakfast, *extra}, nil)
		planRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*planning.MenuPlan")).
			Run(func(args mock.Arguments) {
				plan := args.Get(1).(*planning.MenuPlan)
				assert.Equal(t, &breakfast.ID, plan.BreakfastRecipeID)
				require.Len(t, plan.Additional, 1)
				assert.Equal(t, extra.ID, plan.Additional[0].RecipeID)
				assert.Equal(t, 0, plan.Additional[0].SortOrder)
			}).
			Return(nil)
		stored, err := planning.NewMenuPlan(time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		require.NoError(t, stored.SetSlot(planning.SlotBreakfast, &breakfast.ID))
		stored.ReplaceAdditional([]uuid.UUID{extra.ID})
		planRepo.On("FindByID", mock.Anything, mock.Anything).Return(stored, nil)
		projector.On("ListProjectionsByIDs", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]catalogapp.RecipeListItem{
				breakfast.ID: {ID: breakfast.ID, Title: "Сырники"},
				extra.ID:     {ID: extra.ID, Title: "Компот"},
			}, nil)

		resp, err := service.Save(context.Background(), SaveMenuPlanRequest{
			Date:                "2024-11-18",
			BreakfastRecipeID:   &breakfast.ID,
			AdditionalRecipeIDs: []uuid.UUID{extra.ID},
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-11-18", resp.Date)
		require.NotNil(t, resp.BreakfastRecipe)
		assert.Equal(t, "Сырники", resp.BreakfastRecipe.Title)
		require.Len(t, resp.AdditionalRecipes, 1)
		assert.Equal(t, "Компот", resp.AdditionalRecipes[0].Title)
		planRepo.AssertExpectations(t)
	})

	t.Run("missing recipe ref fails before any write", func(t *testing.T) {
		service, planRepo, recipeRepo, _ := newTestPlanService()

		missing := uuid.New()
		recipeRepo.On("FindByIDs", mock.Anything, []uuid.UUID{missing}).
			Return([]catalog.Recipe{}, nil)

		_, err := service.Save(context.Background(), SaveMenuPlanRequest{
			Date:          "2024-11-18",
			LunchRecipeID: &missing,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RECIPE_NOT_FOUND", domainErr.Code)
		planRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("empty plan saves without ref validation", func(t *testing.T) {
		service, planRepo, recipeRepo, projector := newTestPlanService()

		stored, err := planning.NewMenuPlan(time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		planRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		planRepo.On("FindByID", mock.Anything, mock.Anything).Return(stored, nil)
		projector.On("ListProjectionsByIDs", mock.Anything, []uuid.UUID{}).
			Return(map[uuid.UUID]catalogapp.RecipeListItem{}, nil)

		resp, err := service.Save(context.Background(), SaveMenuPlanRequest{Date: "2024-11-18"})

		require.NoError(t, err)
		assert.Nil(t, resp.BreakfastRecipe)
		assert.Empty(t, resp.AdditionalRecipes)
		recipeRepo.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		service, planRepo, _, _ := newTestPlanService()

		_, err := service.Save(context.Background(), SaveMenuPlanRequest{Date: "18.11.2024"})

		assert.Error(t, err)
		planRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestMenuPlanService_List(t *testing.T) {
	t.Run("assembles each plan in range", func(t *testing.T) {
		service, planRepo, _, projector := newTestPlanService()

		recipe := newStoredRecipe(t, "Борщ")
		plan, err := planning.NewMenuPlan(time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		require.NoError(t, plan.SetSlot(planning.SlotLunch, &recipe.ID))

		planRepo.On("FindByDateRange", mock.Anything,
			time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC),
		).Return([]planning.MenuPlan{*plan}, nil)
		projector.On("ListProjectionsByIDs", mock.Anything, []uuid.UUID{recipe.ID}).
			Return(map[uuid.UUID]catalogapp.RecipeListItem{
				recipe.ID: {ID: recipe.ID, Title: "Борщ"},
			}, nil)

		responses, err := service.List(context.Background(), MenuPlanListFilter{
			StartDate: "2024-11-17",
			EndDate:   "2024-11-23",
		})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		require.NotNil(t, responses[0].LunchRecipe)
		assert.Equal(t, "Борщ", responses[0].LunchRecipe.Title)
	})

	t.Run("open range when no bounds supplied", func(t *testing.T) {
		service, planRepo, _, _ := newTestPlanService()

		planRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything).
			Return([]planning.MenuPlan{}, nil)

		responses, err := service.List(context.Background(), MenuPlanListFilter{})

		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("dangling slot reference projects to nil", func(t *testing.T) {
		service, planRepo, _, projector := newTestPlanService()

		danglingID := uuid.New()
		plan, err := planning.NewMenuPlan(time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		require.NoError(t, plan.SetSlot(planning.SlotDinner, &danglingID))

		planRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything).
			Return([]planning.MenuPlan{*plan}, nil)
		projector.On("ListProjectionsByIDs", mock.Anything, []uuid.UUID{danglingID}).
			Return(map[uuid.UUID]catalogapp.RecipeListItem{}, nil)

		responses, err := service.List(context.Background(), MenuPlanListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, &danglingID, responses[0].DinnerRecipeID)
		assert.Nil(t, responses[0].DinnerRecipe)
	})
}

func TestMenuPlanService_DeleteByDate(t *testing.T) {
	t.Run("removes existing plan", func(t *testing.T) {
		service, planRepo, _, _ := newTestPlanService()

		plan, err := planning.NewMenuPlan(time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)

		planRepo.On("FindByDate", mock.Anything, time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC)).
			Return(plan, nil)
		planRepo.On("Delete", mock.Anything, plan.ID).Return(nil)

		assert.NoError(t, service.DeleteByDate(context.Background(), "2024-11-18"))
		planRepo.AssertExpectations(t)
	})

	t.Run("not found when no plan for date", func(t *testing.T) {
		service, planRepo, _, _ := newTestPlanService()

		planRepo.On("FindByDate", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		err := service.DeleteByDate(context.Background(), "2024-11-18")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		planRepo.AssertNotCalled(t, "Delete")
	})
}
