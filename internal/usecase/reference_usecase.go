package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// ReferenceUsecase exposes the lookup catalogs that populate onboarding and
// preference pickers. All reads are public and unfiltered by user.
type ReferenceUsecase interface {
	// ListRegions retrieves all regions ordered by name.
	ListRegions(ctx context.Context) ([]*entity.Region, error)

	// ListIngredients retrieves active ingredients grouped by category.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// ListHealthConditions retrieves the health condition catalog.
	ListHealthConditions(ctx context.Context) ([]*entity.ReferenceItem, error)

	// ListAllergies retrieves the allergy catalog.
	ListAllergies(ctx context.Context) ([]*entity.ReferenceItem, error)

	// ListDietaryPreferences retrieves the dietary preference catalog.
	ListDietaryPreferences(ctx context.Context) ([]*entity.ReferenceItem, error)

	// ListFitnessGoals retrieves the fitness goal catalog.
	ListFitnessGoals(ctx context.Context) ([]*entity.ReferenceItem, error)
}
