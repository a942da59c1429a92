// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for engagement persistence.
var (
	// ErrEngagementNotFound is returned when no engagement row exists for a user/recipe pair.
	ErrEngagementNotFound = errors.New("engagement record not found")
	// ErrRatingNotFound is returned when no rating row exists for a user/recipe pair.
	ErrRatingNotFound = errors.New("rating not found")
)

// EngagementRepository defines the operations for per-user recipe engagement:
// saves, favorites and ratings. Each user/recipe pair holds at most one
// engagement row and at most one rating row.
type EngagementRepository interface {
	// FindRecord retrieves the engagement row for a user/recipe pair.
	// Returns ErrEngagementNotFound when no row exists.
	FindRecord(ctx context.Context, userID, recipeID uuid.UUID) (*entity.EngagementRecord, error)

	// UpsertRecord creates or overwrites the engagement row for a user/recipe pair.
	// Re-applying an identical record is a no-op at the domain level.
	UpsertRecord(ctx context.Context, record *entity.EngagementRecord) error

	// ListSavedByUser retrieves all engagement rows with status saved for a user,
	// most recently updated first.
	ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error)

	// ListFavoritesByUser retrieves all engagement rows flagged as favorite for a user.
	ListFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error)

	// FindRating retrieves the rating row for a user/recipe pair.
	// Returns ErrRatingNotFound when no row exists.
	FindRating(ctx context.Context, userID, recipeID uuid.UUID) (*entity.RatingRecord, error)

	// UpsertRating creates or replaces the rating row for a user/recipe pair.
	UpsertRating(ctx context.Context, rating *entity.RatingRecord) error

	// AggregateRatings recomputes the exact average and count over all rating
	// rows for a recipe. Returns a zero-valued aggregate when no ratings exist.
	AggregateRatings(ctx context.Context, recipeID uuid.UUID) (*entity.RecipeAggregate, error)
}
