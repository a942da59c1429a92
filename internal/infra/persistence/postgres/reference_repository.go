package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referenceRepository implements the repository.ReferenceRepository interface using GORM.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// ListRegions retrieves all regions ordered by name.
func (repo *referenceRepository) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, &entity.Region{
			ID:          regionM.ID,
			Name:        regionM.Name,
			Description: regionM.Description,
		})
	}

	return regions, nil
}

// ListIngredients retrieves active ingredients grouped by category, then name.
func (repo *referenceRepository) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, name ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, &entity.Ingredient{
			ID:       ingredientM.ID,
			Name:     ingredientM.Name,
			Category: ingredientM.Category,
			IsActive: ingredientM.IsActive,
		})
	}

	return ingredients, nil
}

// ListHealthConditions retrieves the health condition catalog ordered by name.
func (repo *referenceRepository) ListHealthConditions(ctx context.Context) ([]*entity.ReferenceItem, error) {
	var rows []*model.HealthConditionModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list health conditions")
	}

	items := make([]*entity.ReferenceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.ReferenceItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
		})
	}

	return items, nil
}

// ListAllergies retrieves the allergy catalog ordered by name.
func (repo *referenceRepository) ListAllergies(ctx context.Context) ([]*entity.ReferenceItem, error) {
	var rows []*model.AllergyModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list allergies")
	}

	items := make([]*entity.ReferenceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.ReferenceItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
		})
	}

	return items, nil
}

// ListDietaryPreferences retrieves the dietary preference catalog ordered by name.
func (repo *referenceRepository) ListDietaryPreferences(ctx context.Context) ([]*entity.ReferenceItem, error) {
	var rows []*model.DietaryPreferenceModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dietary preferences")
	}

	items := make([]*entity.ReferenceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.ReferenceItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
		})
	}

	return items, nil
}

// ListFitnessGoals retrieves the fitness goal catalog ordered by name.
func (repo *referenceRepository) ListFitnessGoals(ctx context.Context) ([]*entity.ReferenceItem, error) {
	var rows []*model.FitnessGoalModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fitness goals")
	}

	items := make([]*entity.ReferenceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.ReferenceItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
		})
	}

	return items, nil
}
