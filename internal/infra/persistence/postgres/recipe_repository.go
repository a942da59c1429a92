// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// defaultRecipeListLimit caps listing queries when the caller does not set one.
const defaultRecipeListLimit = 50

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// FindByID retrieves a single recipe by its unique ID, with its cuisine preloaded.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Cuisine").
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindBySlug retrieves a single recipe by its URL slug.
func (repo *recipeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Cuisine").
		Where("slug = ?", slug).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by slug")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByIDs retrieves the recipes matching the given IDs. IDs with no
// matching row are skipped rather than reported as an error.
func (repo *recipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error) {
	if len(ids) == 0 {
		return []*entity.Recipe{}, nil
	}

	var recipeModels []model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Cuisine").
		Where("id IN ?", ids).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by ids")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for i := range recipeModels {
		recipes = append(recipes, toRecipeDomain(&recipeModels[i]))
	}

	return recipes, nil
}

// recipeListOrder picks the sort order for a listing query. Featured and
// search results surface the best-rated recipes first; plain browsing stays
// newest first.
func recipeListOrder(filter *repository.RecipeFilter) string {
	if filter != nil && (filter.FeaturedOnly || filter.Search != "") {
		return "average_rating DESC, created_at DESC"
	}

	return "created_at DESC"
}

// List retrieves published recipes matching the filter.
func (repo *recipeRepository) List(ctx context.Context, filter *repository.RecipeFilter) ([]*entity.Recipe, error) {
	query := repo.db.WithContext(ctx).
		Preload("Cuisine").
		Where("is_published = ?", true)

	if filter != nil {
		if filter.CuisineID != nil {
			query = query.Where("cuisine_id = ?", *filter.CuisineID)
		}
		if filter.MealType != "" {
			query = query.Where("meal_type = ?", string(filter.MealType))
		}
		if filter.Difficulty != "" {
			query = query.Where("difficulty = ?", string(filter.Difficulty))
		}
		if filter.MaxTotalTime > 0 {
			query = query.Where("total_time <= ?", filter.MaxTotalTime)
		}
		if filter.Search != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.FeaturedOnly {
			query = query.Where("is_featured = ?", true)
		}
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	limit := defaultRecipeListLimit
	if filter != nil && filter.Limit > 0 {
		limit = filter.Limit
	}

	var recipeModels []*model.RecipeModel
	if err := query.
		Order(recipeListOrder(filter)).
		Limit(limit).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// ListCuisines retrieves all cuisines ordered by name.
func (repo *recipeRepository) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	var cuisineModels []*model.CuisineModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&cuisineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}

	cuisines := make([]*entity.Cuisine, 0, len(cuisineModels))
	for _, cuisineM := range cuisineModels {
		cuisines = append(cuisines, toCuisineDomain(cuisineM))
	}

	return cuisines, nil
}

// UpdateAggregate overwrites the denormalized rating columns on a recipe row.
func (repo *recipeRepository) UpdateAggregate(ctx context.Context, id uuid.UUID, aggregate *entity.RecipeAggregate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": aggregate.AverageRating,
			"total_ratings":  aggregate.TotalRatings,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe aggregate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:                 data.ID,
		Name:               data.Name,
		Slug:               data.Slug,
		Description:        data.Description,
		CuisineID:          data.CuisineID,
		Cuisine:            toCuisineDomain(data.Cuisine),
		PrepTime:           data.PrepTime,
		CookTime:           data.CookTime,
		TotalTime:          data.TotalTime,
		Servings:           data.Servings,
		Difficulty:         entity.Difficulty(data.Difficulty),
		MealType:           entity.MealType(data.MealType),
		CaloriesPerServing: data.CaloriesPerServing,
		Image:              data.Image,
		IsPublished:        data.IsPublished,
		IsFeatured:         data.IsFeatured,
		AverageRating:      data.AverageRating,
		TotalRatings:       data.TotalRatings,
		CreatedBy:          data.CreatedBy,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toCuisineDomain converts a GORM CuisineModel to a domain Cuisine entity.
func toCuisineDomain(data *model.CuisineModel) *entity.Cuisine {
	if data == nil {
		return nil
	}

	return &entity.Cuisine{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
	}
}
