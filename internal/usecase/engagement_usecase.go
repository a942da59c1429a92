package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementUsecase manages the per-user recipe relationships: saves,
// favorites and ratings. All writes are keyed on the (user, recipe) pair so
// repeating an operation never duplicates rows.
type EngagementUsecase interface {
	// SaveRecipe marks a recipe as saved for the user. Saving an already
	// saved recipe is a no-op.
	SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error

	// UnsaveRecipe clears the saved status, keeping any favorite flag.
	UnsaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error

	// ToggleFavorite flips the favorite flag and returns the new value.
	// When no engagement row exists yet, one is created with the favorite
	// flag set and the recipe marked saved.
	ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)

	// RateRecipe stores the user's rating (replacing any earlier one) and
	// recomputes the recipe's aggregate rating in the same transaction.
	RateRecipe(ctx context.Context, userID uuid.UUID, input *RateRecipeInput) (*entity.RecipeAggregate, error)

	// ListSavedRecipes returns the recipes the user has saved, most recently
	// touched first.
	ListSavedRecipes(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)

	// ListFavoriteRecipes returns the recipes the user has marked favorite.
	ListFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)
}

// --- Input DTOs ---

// RateRecipeInput defines the data required to rate a recipe.
// Rating must be within [1, 5]; it is validated before any storage call.
type RateRecipeInput struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Rating   int       `json:"rating"`
	Review   string    `json:"review,omitempty"`
}
