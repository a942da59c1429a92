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
	"gorm.io/gorm/clause"
)

// engagementRepository implements the repository.EngagementRepository interface using GORM.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{
		db: db,
	}
}

// FindRecord retrieves the engagement row for a user/recipe pair.
func (repo *engagementRepository) FindRecord(ctx context.Context, userID, recipeID uuid.UUID) (*entity.EngagementRecord, error) {
	var recordM model.EngagementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEngagementNotFound
		}

		return nil, errors.Wrap(err, "failed to find engagement record")
	}

	return toEngagementDomain(&recordM), nil
}

// UpsertRecord creates or overwrites the engagement row for a user/recipe pair.
// The conflict target is the composite primary key, which is what guarantees
// at most one row per pair regardless of how many times this is called.
func (repo *engagementRepository) UpsertRecord(ctx context.Context, record *entity.EngagementRecord) error {
	recordM := fromEngagementDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "is_favorite", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert engagement record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// ListSavedByUser retrieves all saved engagement rows for a user, most recently updated first.
func (repo *engagementRepository) ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error) {
	var recordModels []*model.EngagementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.EngagementStatusSaved)).
		Order("updated_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved recipes")
	}

	records := make([]*entity.EngagementRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toEngagementDomain(recordM))
	}

	return records, nil
}

// ListFavoritesByUser retrieves all favorite engagement rows for a user.
func (repo *engagementRepository) ListFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error) {
	var recordModels []*model.EngagementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("updated_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite recipes")
	}

	records := make([]*entity.EngagementRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toEngagementDomain(recordM))
	}

	return records, nil
}

// FindRating retrieves the rating row for a user/recipe pair.
func (repo *engagementRepository) FindRating(ctx context.Context, userID, recipeID uuid.UUID) (*entity.RatingRecord, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// UpsertRating creates or replaces the rating row for a user/recipe pair.
// Last write wins; a re-rate replaces the prior value instead of adding a row.
func (repo *engagementRepository) UpsertRating(ctx context.Context, rating *entity.RatingRecord) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
		}).
		Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// AggregateRatings recomputes the exact average and count over all rating rows
// for a recipe. COALESCE keeps the average at zero when no ratings exist.
func (repo *engagementRepository) AggregateRatings(ctx context.Context, recipeID uuid.UUID) (*entity.RecipeAggregate, error) {
	var aggregate entity.RecipeAggregate

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("recipe_id = ?", recipeID).
		Scan(&aggregate).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	return &aggregate, nil
}

// toEngagementDomain converts a GORM EngagementModel to a domain EngagementRecord entity.
func toEngagementDomain(data *model.EngagementModel) *entity.EngagementRecord {
	if data == nil {
		return nil
	}

	return &entity.EngagementRecord{
		UserID:     data.UserID,
		RecipeID:   data.RecipeID,
		Status:     entity.EngagementStatus(data.Status),
		IsFavorite: data.IsFavorite,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromEngagementDomain converts a domain EngagementRecord entity to a GORM EngagementModel.
func fromEngagementDomain(data *entity.EngagementRecord) *model.EngagementModel {
	if data == nil {
		return nil
	}

	return &model.EngagementModel{
		UserID:     data.UserID,
		RecipeID:   data.RecipeID,
		Status:     string(data.Status),
		IsFavorite: data.IsFavorite,
	}
}

// toRatingDomain converts a GORM RatingModel to a domain RatingRecord entity.
func toRatingDomain(data *model.RatingModel) *entity.RatingRecord {
	if data == nil {
		return nil
	}

	return &entity.RatingRecord{
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		Rating:    data.Rating,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRatingDomain converts a domain RatingRecord entity to a GORM RatingModel.
func fromRatingDomain(data *entity.RatingRecord) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		UserID:   data.UserID,
		RecipeID: data.RecipeID,
		Rating:   data.Rating,
		Review:   data.Review,
	}
}
