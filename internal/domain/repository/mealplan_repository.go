// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for meal plan persistence.
var (
	// ErrMealPlanNotFound is returned when a meal plan is not found.
	ErrMealPlanNotFound = errors.New("meal plan not found")
	// ErrMealPlanEntryNotFound is returned when a meal plan entry is not found.
	ErrMealPlanEntryNotFound = errors.New("meal plan entry not found")
)

// MealPlanRepository defines the operations for meal plan persistence.
type MealPlanRepository interface {
	// FindByID retrieves a meal plan with its entries and their recipes preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error)

	// ListByUser retrieves all meal plans for a user, newest start date first,
	// without entries.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	// FindByUserAndRange retrieves the meal plans for a user whose date range
	// overlaps [from, to], with entries preloaded.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MealPlan, error)

	// Create persists a new meal plan and any entries attached to it.
	Create(ctx context.Context, plan *entity.MealPlan) error

	// Update modifies the meal plan row itself, not its entries.
	Update(ctx context.Context, plan *entity.MealPlan) error

	// Delete removes a meal plan and cascades to its entries.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddEntry persists a new entry on an existing meal plan.
	AddEntry(ctx context.Context, entry *entity.MealPlanEntry) error

	// RemoveEntry removes a single entry by its ID.
	RemoveEntry(ctx context.Context, entryID uuid.UUID) error
}
