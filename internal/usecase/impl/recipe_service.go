package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface. Catalog reads are
// single queries, so they use the direct repository instance instead of a
// transaction.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRecipe retrieves a single published recipe by ID.
func (srv *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "get recipe failed")
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

// GetRecipeBySlug retrieves a single published recipe by its URL slug.
func (srv *recipeService) GetRecipeBySlug(ctx context.Context, slug string) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "get recipe failed")
		}

		return nil, errors.Wrap(err, "failed to find recipe by slug")
	}

	return recipe, nil
}

// ListRecipes retrieves published recipes matching the filter.
func (srv *recipeService) ListRecipes(ctx context.Context, input *usecase.ListRecipesInput) ([]*entity.Recipe, error) {
	filter := &repository.RecipeFilter{}
	if input != nil {
		filter.CuisineID = input.CuisineID
		filter.MealType = input.MealType
		filter.Difficulty = input.Difficulty
		filter.MaxTotalTime = input.MaxTotalTime
		filter.Search = input.Search
		filter.FeaturedOnly = input.FeaturedOnly
		filter.Limit = input.Limit
		filter.Offset = input.Offset
	}

	recipes, err := srv.recipeRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Warn("Failed to list recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// ListCuisines retrieves the cuisine catalog ordered by name.
func (srv *recipeService) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	cuisines, err := srv.recipeRepo.ListCuisines(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}

	return cuisines, nil
}
