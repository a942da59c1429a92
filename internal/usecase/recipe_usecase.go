package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeUsecase exposes read access to the recipe catalog. The catalog is
// authored elsewhere; from here it is read-only apart from the aggregate
// rating fields maintained by the engagement flow.
type RecipeUsecase interface {
	// GetRecipe retrieves a single published recipe by ID.
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// GetRecipeBySlug retrieves a single published recipe by its URL slug.
	GetRecipeBySlug(ctx context.Context, slug string) (*entity.Recipe, error)

	// ListRecipes retrieves published recipes matching the filter. Featured
	// and search listings are ranked by average rating; plain browsing is
	// newest first.
	ListRecipes(ctx context.Context, input *ListRecipesInput) ([]*entity.Recipe, error)

	// ListCuisines retrieves the cuisine catalog ordered by name.
	ListCuisines(ctx context.Context) ([]*entity.Cuisine, error)
}

// --- Input DTOs ---

// ListRecipesInput narrows the recipe listing. Zero values mean "no filter".
type ListRecipesInput struct {
	CuisineID    *uuid.UUID        `json:"cuisine_id,omitempty"`
	MealType     entity.MealType   `json:"meal_type,omitempty"`
	Difficulty   entity.Difficulty `json:"difficulty,omitempty"`
	MaxTotalTime int               `json:"max_total_time,omitempty"`
	Search       string            `json:"search,omitempty"`
	FeaturedOnly bool              `json:"featured_only,omitempty"`
	Limit        int               `json:"limit,omitempty"`
	Offset       int               `json:"offset,omitempty"`
}
