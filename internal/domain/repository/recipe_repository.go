// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeFilter narrows recipe listing queries. Zero values mean "no filter".
type RecipeFilter struct {
	// CuisineID filters by cuisine when non-nil.
	CuisineID *uuid.UUID
	// MealType filters by meal type when non-empty.
	MealType entity.MealType
	// Difficulty filters by difficulty when non-empty.
	Difficulty entity.Difficulty
	// MaxTotalTime filters recipes whose total time in minutes does not exceed this value.
	MaxTotalTime int
	// Search matches against recipe name, case-insensitively.
	Search string
	// FeaturedOnly restricts the result to featured recipes.
	FeaturedOnly bool
	// Limit caps the number of rows returned; 0 means the repository default.
	Limit int
	// Offset skips rows for pagination.
	Offset int
}

// RecipeRepository defines read and aggregate operations for the recipe catalog.
// Listing queries only ever return published recipes.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID, with its cuisine preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindBySlug retrieves a single recipe by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Recipe, error)

	// FindByIDs retrieves the recipes matching the given IDs, in no guaranteed
	// order. IDs with no matching row are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error)

	// List retrieves published recipes matching the filter. Featured and
	// search queries order by average rating, everything else newest first.
	List(ctx context.Context, filter *RecipeFilter) ([]*entity.Recipe, error)

	// ListCuisines retrieves all cuisines ordered by name.
	ListCuisines(ctx context.Context) ([]*entity.Cuisine, error)

	// UpdateAggregate overwrites the denormalized rating columns on a recipe row.
	// Called inside the same transaction that changed the underlying ratings.
	UpdateAggregate(ctx context.Context, id uuid.UUID, aggregate *entity.RecipeAggregate) error
}
