package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanUsecase manages dated meal plans and their entries. Every
// operation checks that the plan belongs to the acting user before touching it.
type MealPlanUsecase interface {
	// GetMealPlan retrieves one plan with its entries and recipes.
	GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error)

	// ListMealPlans retrieves the user's plans, newest start date first.
	ListMealPlans(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error)

	// GetMealPlansInRange retrieves the user's plans overlapping [from, to].
	GetMealPlansInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MealPlan, error)

	// CreateMealPlan creates a plan, optionally with initial entries.
	CreateMealPlan(ctx context.Context, userID uuid.UUID, input *CreateMealPlanInput) (*entity.MealPlan, error)

	// UpdateMealPlan renames a plan or shifts its date range.
	UpdateMealPlan(ctx context.Context, userID, planID uuid.UUID, input *UpdateMealPlanInput) (*entity.MealPlan, error)

	// DeleteMealPlan removes a plan together with all of its entries.
	DeleteMealPlan(ctx context.Context, userID, planID uuid.UUID) error

	// AddEntry schedules a recipe on a plan.
	AddEntry(ctx context.Context, userID, planID uuid.UUID, input *AddMealPlanEntryInput) (*entity.MealPlan, error)

	// RemoveEntry removes one scheduled recipe from a plan.
	RemoveEntry(ctx context.Context, userID, planID, entryID uuid.UUID) error
}

// --- Input DTOs ---

// CreateMealPlanInput defines the data required to create a meal plan.
type CreateMealPlanInput struct {
	Name      string                   `json:"name"`
	StartDate time.Time                `json:"start_date"`
	EndDate   time.Time                `json:"end_date"`
	Entries   []*AddMealPlanEntryInput `json:"entries,omitempty"`
}

// UpdateMealPlanInput defines a sparse update of the plan row.
type UpdateMealPlanInput struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// AddMealPlanEntryInput defines the data required to schedule a recipe.
type AddMealPlanEntryInput struct {
	RecipeID uuid.UUID       `json:"recipe_id"`
	Date     time.Time       `json:"date"`
	MealType entity.MealType `json:"meal_type"`
	Servings int             `json:"servings,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}
