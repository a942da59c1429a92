package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is a dated plan owned by one account. Its entries share its
// lifecycle: destroying the plan destroys the entries, never orphaning them.
type MealPlan struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Entries   []*MealPlanEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealPlanEntry schedules one recipe on one date within a plan.
type MealPlanEntry struct {
	ID         uuid.UUID
	MealPlanID uuid.UUID
	RecipeID   uuid.UUID
	Recipe     *Recipe // Populated on plan reads.
	Date       time.Time
	MealType   MealType
	Servings   int // Always >= 1; defaults to 1.
	Notes      string
	CreatedAt  time.Time
}
