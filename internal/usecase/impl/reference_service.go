package impl

import (
	"context"
	"log/slog"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// referenceService implements the ReferenceUsecase interface. Catalog reads
// are single queries, so they use the direct repository instance instead of a
// transaction.
type referenceService struct {
	referenceRepo repository.ReferenceRepository
	logger        *slog.Logger
}

// ReferenceServiceParams holds dependencies for ReferenceService, injected by Fx.
type ReferenceServiceParams struct {
	fx.In

	ReferenceRepo repository.ReferenceRepository
	Logger        *slog.Logger
}

// NewReferenceService is the constructor for referenceService.
func NewReferenceService(params ReferenceServiceParams) usecase.ReferenceUsecase {
	return &referenceService{
		referenceRepo: params.ReferenceRepo,
		logger:        params.Logger,
	}
}

// ListRegions retrieves all regions ordered by name.
func (srv *referenceService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.referenceRepo.ListRegions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return regions, nil
}

// ListIngredients retrieves active ingredients grouped by category.
func (srv *referenceService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := srv.referenceRepo.ListIngredients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// ListHealthConditions retrieves the health condition catalog.
func (srv *referenceService) ListHealthConditions(ctx context.Context) ([]*entity.ReferenceItem, error) {
	items, err := srv.referenceRepo.ListHealthConditions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health conditions")
	}

	return items, nil
}

// ListAllergies retrieves the allergy catalog.
func (srv *referenceService) ListAllergies(ctx context.Context) ([]*entity.ReferenceItem, error) {
	items, err := srv.referenceRepo.ListAllergies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list allergies")
	}

	return items, nil
}

// ListDietaryPreferences retrieves the dietary preference catalog.
func (srv *referenceService) ListDietaryPreferences(ctx context.Context) ([]*entity.ReferenceItem, error) {
	items, err := srv.referenceRepo.ListDietaryPreferences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dietary preferences")
	}

	return items, nil
}

// ListFitnessGoals retrieves the fitness goal catalog.
func (srv *referenceService) ListFitnessGoals(ctx context.Context) ([]*entity.ReferenceItem, error) {
	goals, err := srv.referenceRepo.ListFitnessGoals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fitness goals")
	}

	return goals, nil
}
