// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealPlanRepository implements the repository.MealPlanRepository interface using GORM.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository is the constructor for mealPlanRepository.
func NewMealPlanRepository(db *gorm.DB) repository.MealPlanRepository {
	return &mealPlanRepository{
		db: db,
	}
}

// FindByID retrieves a meal plan with its entries and their recipes preloaded.
func (repo *mealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	var planM model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, meal_type ASC")
		}).
		Preload("Entries.Recipe").
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal plan by id")
	}

	return toMealPlanDomain(&planM), nil
}

// ListByUser retrieves all meal plans for a user, newest start date first, without entries.
func (repo *mealPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	var planModels []*model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	plans := make([]*entity.MealPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toMealPlanDomain(planM))
	}

	return plans, nil
}

// FindByUserAndRange retrieves the meal plans for a user whose date range
// overlaps [from, to], with entries preloaded.
func (repo *mealPlanRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MealPlan, error) {
	var planModels []*model.MealPlanModel

	if err := repo.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, meal_type ASC")
		}).
		Preload("Entries.Recipe").
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, to, from).
		Order("start_date ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meal plans by range")
	}

	plans := make([]*entity.MealPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toMealPlanDomain(planM))
	}

	return plans, nil
}

// Create persists a new meal plan and any entries attached to it.
func (repo *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	planM := fromMealPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt
	for i, entryM := range planM.Entries {
		if i < len(plan.Entries) {
			plan.Entries[i].ID = entryM.ID
			plan.Entries[i].MealPlanID = entryM.MealPlanID
		}
	}

	return nil
}

// Update modifies the meal plan row itself, not its entries.
func (repo *mealPlanRepository) Update(ctx context.Context, plan *entity.MealPlan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MealPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"name":       plan.Name,
			"start_date": plan.StartDate,
			"end_date":   plan.EndDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update meal plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

// Delete removes a meal plan; the database cascades to its entries.
func (repo *mealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MealPlanModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealPlanNotFound
	}

	return nil
}

// AddEntry persists a new entry on an existing meal plan.
func (repo *mealPlanRepository) AddEntry(ctx context.Context, entry *entity.MealPlanEntry) error {
	entryM := fromMealPlanEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMealPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add meal plan entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// RemoveEntry removes a single entry by its ID.
func (repo *mealPlanRepository) RemoveEntry(ctx context.Context, entryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", entryID).
		Delete(&model.MealPlanEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove meal plan entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealPlanEntryNotFound
	}

	return nil
}

// toMealPlanDomain converts a GORM MealPlanModel to a domain MealPlan entity.
func toMealPlanDomain(data *model.MealPlanModel) *entity.MealPlan {
	if data == nil {
		return nil
	}

	entries := make([]*entity.MealPlanEntry, 0, len(data.Entries))
	for _, entryM := range data.Entries {
		entries = append(entries, toMealPlanEntryDomain(entryM))
	}

	return &entity.MealPlan{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Entries:   entries,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMealPlanDomain converts a domain MealPlan entity to a GORM MealPlanModel.
func fromMealPlanDomain(data *entity.MealPlan) *model.MealPlanModel {
	if data == nil {
		return nil
	}

	entries := make([]*model.MealPlanEntryModel, 0, len(data.Entries))
	for _, entry := range data.Entries {
		entries = append(entries, fromMealPlanEntryDomain(entry))
	}

	return &model.MealPlanModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Entries:   entries,
	}
}

// toMealPlanEntryDomain converts a GORM MealPlanEntryModel to a domain MealPlanEntry entity.
func toMealPlanEntryDomain(data *model.MealPlanEntryModel) *entity.MealPlanEntry {
	if data == nil {
		return nil
	}

	return &entity.MealPlanEntry{
		ID:         data.ID,
		MealPlanID: data.MealPlanID,
		RecipeID:   data.RecipeID,
		Recipe:     toRecipeDomain(data.Recipe),
		Date:       data.Date,
		MealType:   entity.MealType(data.MealType),
		Servings:   data.Servings,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}

// fromMealPlanEntryDomain converts a domain MealPlanEntry entity to a GORM MealPlanEntryModel.
func fromMealPlanEntryDomain(data *entity.MealPlanEntry) *model.MealPlanEntryModel {
	if data == nil {
		return nil
	}

	return &model.MealPlanEntryModel{
		ID:         data.ID,
		MealPlanID: data.MealPlanID,
		RecipeID:   data.RecipeID,
		Date:       data.Date,
		MealType:   string(data.MealType),
		Servings:   data.Servings,
		Notes:      data.Notes,
	}
}
