package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mealPlanFixtures holds all test dependencies for meal plan service tests.
type mealPlanFixtures struct {
	service      usecase.MealPlanUsecase
	mealPlanRepo *mockMealPlanRepo
}

func createTestMealPlanService(t *testing.T) mealPlanFixtures {
	t.Helper()

	mealPlanRepo := &mockMealPlanRepo{}
	factory := &fakeRepoFactory{mealPlanRepo: mealPlanRepo}

	svc := NewMealPlanService(MealPlanServiceParams{
		TxManager:    &fakeTxManager{factory: factory},
		MealPlanRepo: mealPlanRepo,
		Logger:       newDiscardLogger(),
	})

	return mealPlanFixtures{
		service:      svc,
		mealPlanRepo: mealPlanRepo,
	}
}

func TestMealPlanService_GetMealPlan_OwnershipEnforced(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	planID := uuid.New()

	fx.mealPlanRepo.On("FindByID", ctx, planID).Return(&entity.MealPlan{
		ID:     planID,
		UserID: uuid.New(),
	}, nil)

	plan, err := fx.service.GetMealPlan(ctx, uuid.New(), planID)

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestMealPlanService_GetMealPlan_NotFound(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	planID := uuid.New()

	fx.mealPlanRepo.On("FindByID", ctx, planID).
		Return(nil, repository.ErrMealPlanNotFound)

	plan, err := fx.service.GetMealPlan(ctx, uuid.New(), planID)

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domainerrors.ErrMealPlanNotFound)
}

func TestMealPlanService_CreateMealPlan_Success(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	recipeID := uuid.New()
	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	fx.mealPlanRepo.On("Create", ctx, mock.AnythingOfType("*entity.MealPlan")).
		Run(func(args mock.Arguments) {
			plan := args.Get(1).(*entity.MealPlan)
			plan.ID = planID
			// Entries default to one serving when none is given.
			require.Len(t, plan.Entries, 1)
			assert.Equal(t, 1, plan.Entries[0].Servings)
		}).
		Return(nil)
	fx.mealPlanRepo.On("FindByID", ctx, planID).Return(&entity.MealPlan{
		ID:        planID,
		UserID:    userID,
		Name:      "Week 37",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}, nil)

	plan, err := fx.service.CreateMealPlan(ctx, userID, &usecase.CreateMealPlanInput{
		Name:      "Week 37",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Entries: []*usecase.AddMealPlanEntryInput{
			{RecipeID: recipeID, Date: start, MealType: entity.MealTypeDinner},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, planID, plan.ID)
}

func TestMealPlanService_CreateMealPlan_InvalidRange(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	plan, err := fx.service.CreateMealPlan(ctx, uuid.New(), &usecase.CreateMealPlanInput{
		Name:      "Backwards",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -1),
	})

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.mealPlanRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMealPlanService_RemoveEntry_NotInPlan(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	fx.mealPlanRepo.On("FindByID", ctx, planID).Return(&entity.MealPlan{
		ID:     planID,
		UserID: userID,
		Entries: []*entity.MealPlanEntry{
			{ID: uuid.New(), MealPlanID: planID},
		},
	}, nil)

	err := fx.service.RemoveEntry(ctx, userID, planID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMealPlanEntryNotFound)
	fx.mealPlanRepo.AssertNotCalled(t, "RemoveEntry", mock.Anything, mock.Anything)
}

func TestMealPlanService_DeleteMealPlan_Success(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()

	fx.mealPlanRepo.On("FindByID", ctx, planID).Return(&entity.MealPlan{
		ID:     planID,
		UserID: userID,
	}, nil)
	fx.mealPlanRepo.On("Delete", ctx, planID).Return(nil)

	err := fx.service.DeleteMealPlan(ctx, userID, planID)

	require.NoError(t, err)
	fx.mealPlanRepo.AssertCalled(t, "Delete", ctx, planID)
}

func TestMealPlanService_UpdateMealPlan_RejectsInvertedRange(t *testing.T) {
	fx := createTestMealPlanService(t)
	ctx := context.Background()
	userID := uuid.New()
	planID := uuid.New()
	start := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	fx.mealPlanRepo.On("FindByID", ctx, planID).Return(&entity.MealPlan{
		ID:        planID,
		UserID:    userID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}, nil)

	badEnd := start.AddDate(0, 0, -2)
	plan, err := fx.service.UpdateMealPlan(ctx, userID, planID, &usecase.UpdateMealPlanInput{
		EndDate: &badEnd,
	})

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.mealPlanRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
