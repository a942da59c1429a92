package repository

import (
	"context"

	"pantry/internal/domain/entity"
)

// ReferenceRepository defines read access to the lookup catalogs that back
// onboarding and preference pickers. All catalogs are ordered by name except
// ingredients, which group by category first.
type ReferenceRepository interface {
	// ListRegions retrieves all regions.
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
