package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engagementFixtures holds all test dependencies for engagement service tests.
type engagementFixtures struct {
	service        usecase.EngagementUsecase
	engagementRepo *mockEngagementRepo
	recipeRepo     *mockRecipeRepo
}

func createTestEngagementService(t *testing.T) engagementFixtures {
	t.Helper()

	engagementRepo := &mockEngagementRepo{}
	recipeRepo := &mockRecipeRepo{}

	factory := &fakeRepoFactory{
		engagementRepo: engagementRepo,
		recipeRepo:     recipeRepo,
	}

	svc := NewEngagementService(EngagementServiceParams{
		TxManager:      &fakeTxManager{factory: factory},
		EngagementRepo: engagementRepo,
		RecipeRepo:     recipeRepo,
		Logger:         newDiscardLogger(),
	})

	return engagementFixtures{
		service:        svc,
		engagementRepo: engagementRepo,
		recipeRepo:     recipeRepo,
	}
}

func TestEngagementService_SaveRecipe_CreatesRecord(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	var captured *entity.EngagementRecord

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).
		Return(nil, repository.ErrEngagementNotFound)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.AnythingOfType("*entity.EngagementRecord")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.EngagementRecord)
		}).
		Return(nil)

	err := fx.service.SaveRecipe(ctx, userID, recipeID)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, entity.EngagementStatusSaved, captured.Status)
	assert.False(t, captured.IsFavorite)
}

func TestEngagementService_SaveRecipe_AlreadySavedIsNoOp(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	var captured *entity.EngagementRecord

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).Return(&entity.EngagementRecord{
		UserID:     userID,
		RecipeID:   recipeID,
		Status:     entity.EngagementStatusSaved,
		IsFavorite: true,
	}, nil)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.AnythingOfType("*entity.EngagementRecord")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.EngagementRecord)
		}).
		Return(nil)

	err := fx.service.SaveRecipe(ctx, userID, recipeID)

	require.NoError(t, err)
	// Re-saving writes the same state back: status saved, favorite untouched.
	require.NotNil(t, captured)
	assert.Equal(t, entity.EngagementStatusSaved, captured.Status)
	assert.True(t, captured.IsFavorite)
}

func TestEngagementService_SaveRecipe_UnknownRecipe(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).
		Return(nil, repository.ErrEngagementNotFound)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.Anything).
		Return(repository.ErrRecipeNotFound)

	err := fx.service.SaveRecipe(ctx, userID, recipeID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestEngagementService_UnsaveRecipe_KeepsFavorite(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	var captured *entity.EngagementRecord

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).Return(&entity.EngagementRecord{
		UserID:     userID,
		RecipeID:   recipeID,
		Status:     entity.EngagementStatusSaved,
		IsFavorite: true,
	}, nil)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.AnythingOfType("*entity.EngagementRecord")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.EngagementRecord)
		}).
		Return(nil)

	err := fx.service.UnsaveRecipe(ctx, userID, recipeID)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, entity.EngagementStatusNone, captured.Status)
	assert.True(t, captured.IsFavorite)
}

func TestEngagementService_UnsaveRecipe_MissingRecordIsNoOp(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).
		Return(nil, repository.ErrEngagementNotFound)

	err := fx.service.UnsaveRecipe(ctx, userID, recipeID)

	require.NoError(t, err)
	fx.engagementRepo.AssertNotCalled(t, "UpsertRecord", mock.Anything, mock.Anything)
}

func TestEngagementService_ToggleFavorite_CreatesSavedFavorite(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	var captured *entity.EngagementRecord

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).
		Return(nil, repository.ErrEngagementNotFound)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.AnythingOfType("*entity.EngagementRecord")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.EngagementRecord)
		}).
		Return(nil)

	favorite, err := fx.service.ToggleFavorite(ctx, userID, recipeID)

	require.NoError(t, err)
	assert.True(t, favorite)
	// A first toggle creates the row saved and favorited in one write.
	require.NotNil(t, captured)
	assert.Equal(t, entity.EngagementStatusSaved, captured.Status)
	assert.True(t, captured.IsFavorite)
}

func TestEngagementService_ToggleFavorite_FlipsExistingFlag(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	fx.engagementRepo.On("FindRecord", ctx, userID, recipeID).Return(&entity.EngagementRecord{
		UserID:     userID,
		RecipeID:   recipeID,
		Status:     entity.EngagementStatusSaved,
		IsFavorite: true,
	}, nil)
	fx.engagementRepo.On("UpsertRecord", ctx, mock.Anything).Return(nil)

	favorite, err := fx.service.ToggleFavorite(ctx, userID, recipeID)

	require.NoError(t, err)
	assert.False(t, favorite)
}

func TestEngagementService_RateRecipe_RejectsOutOfRange(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, rating := range []int{0, 6, -1, 100} {
		aggregate, err := fx.service.RateRecipe(ctx, userID, &usecase.RateRecipeInput{
			RecipeID: uuid.New(),
			Rating:   rating,
		})

		require.Error(t, err)
		assert.Nil(t, aggregate)
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
	}

	// Validation happens before any storage round-trip.
	fx.engagementRepo.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything)
}

func TestEngagementService_RateRecipe_RecomputesAggregate(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	// Another user already rated 4; this user rates 2 -> mean 3.0 over 2 rows.
	fx.engagementRepo.On("UpsertRating", ctx, mock.AnythingOfType("*entity.RatingRecord")).Return(nil)
	fx.engagementRepo.On("AggregateRatings", ctx, recipeID).Return(&entity.RecipeAggregate{
		AverageRating: 3.0,
		TotalRatings:  2,
	}, nil)
	fx.recipeRepo.On("UpdateAggregate", ctx, recipeID, mock.AnythingOfType("*entity.RecipeAggregate")).Return(nil)

	aggregate, err := fx.service.RateRecipe(ctx, userID, &usecase.RateRecipeInput{
		RecipeID: recipeID,
		Rating:   2,
	})

	require.NoError(t, err)
	assert.InDelta(t, 3.0, aggregate.AverageRating, 0.0001)
	assert.Equal(t, 2, aggregate.TotalRatings)
	fx.recipeRepo.AssertCalled(t, "UpdateAggregate", ctx, recipeID, aggregate)
}

func TestEngagementService_RateRecipe_ReplacementKeepsCount(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID, recipeID := uuid.New(), uuid.New()

	// The user re-rates: the upsert replaces the prior row, so the aggregate
	// still counts a single rating.
	fx.engagementRepo.On("UpsertRating", ctx, mock.Anything).Return(nil)
	fx.engagementRepo.On("AggregateRatings", ctx, recipeID).Return(&entity.RecipeAggregate{
		AverageRating: 5.0,
		TotalRatings:  1,
	}, nil)
	fx.recipeRepo.On("UpdateAggregate", ctx, recipeID, mock.Anything).Return(nil)

	aggregate, err := fx.service.RateRecipe(ctx, userID, &usecase.RateRecipeInput{
		RecipeID: recipeID,
		Rating:   5,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, aggregate.TotalRatings)
	assert.InDelta(t, 5.0, aggregate.AverageRating, 0.0001)
}

func TestEngagementService_ListSavedRecipes_PreservesOrder(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	first, second, gone := uuid.New(), uuid.New(), uuid.New()

	fx.engagementRepo.On("ListSavedByUser", ctx, userID).Return([]*entity.EngagementRecord{
		{UserID: userID, RecipeID: first, Status: entity.EngagementStatusSaved},
		{UserID: userID, RecipeID: gone, Status: entity.EngagementStatusSaved},
		{UserID: userID, RecipeID: second, Status: entity.EngagementStatusSaved},
	}, nil)
	// The storage layer returns recipes in arbitrary order, and one of the
	// saved recipes no longer exists.
	fx.recipeRepo.On("FindByIDs", ctx, []uuid.UUID{first, gone, second}).Return([]*entity.Recipe{
		{ID: second, Name: "Second"},
		{ID: first, Name: "First"},
	}, nil)

	recipes, err := fx.service.ListSavedRecipes(ctx, userID)

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "First", recipes[0].Name)
	assert.Equal(t, "Second", recipes[1].Name)
}

func TestEngagementService_ListFavoriteRecipes_Empty(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.engagementRepo.On("ListFavoritesByUser", ctx, userID).
		Return([]*entity.EngagementRecord{}, nil)

	recipes, err := fx.service.ListFavoriteRecipes(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, recipes)
	fx.recipeRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
