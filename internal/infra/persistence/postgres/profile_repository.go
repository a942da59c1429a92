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

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the extended profile for a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ExtendedProfile, error) {
	var profileM model.ExtendedProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find extended profile")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new extended profile row.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.ExtendedProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create extended profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Upsert creates the extended profile row if absent, or overwrites the
// provided columns if it already exists. The conflict target is the user_id
// primary key, so at most one row per account can exist.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.ExtendedProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"activity_level", "daily_calorie_target", "onboarding_completed", "onboarding_completed_at", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert extended profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// ApplyUpdates writes only the fields present in updates to the profile row.
func (repo *profileRepository) ApplyUpdates(ctx context.Context, userID uuid.UUID, updates *entity.ProfileUpdates) error {
	columns := map[string]any{}
	if updates.ActivityLevel != nil {
		columns["activity_level"] = string(*updates.ActivityLevel)
	}
	if updates.DailyCalorieTarget != nil {
		columns["daily_calorie_target"] = *updates.DailyCalorieTarget
	}
	if updates.OnboardingCompleted != nil {
		columns["onboarding_completed"] = *updates.OnboardingCompleted
	}
	if updates.OnboardingCompletedAt != nil {
		columns["onboarding_completed_at"] = *updates.OnboardingCompletedAt
	}

	if len(columns) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ExtendedProfileModel{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply profile updates")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// toProfileDomain converts a GORM ExtendedProfileModel to a domain ExtendedProfile entity.
func toProfileDomain(data *model.ExtendedProfileModel) *entity.ExtendedProfile {
	if data == nil {
		return nil
	}

	return &entity.ExtendedProfile{
		UserID:                data.UserID,
		ActivityLevel:         entity.ActivityLevel(data.ActivityLevel),
		DailyCalorieTarget:    data.DailyCalorieTarget,
		OnboardingCompleted:   data.OnboardingCompleted,
		OnboardingCompletedAt: data.OnboardingCompletedAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain ExtendedProfile entity to a GORM ExtendedProfileModel.
func fromProfileDomain(data *entity.ExtendedProfile) *model.ExtendedProfileModel {
	if data == nil {
		return nil
	}

	return &model.ExtendedProfileModel{
		UserID:                data.UserID,
		ActivityLevel:         string(data.ActivityLevel),
		DailyCalorieTarget:    data.DailyCalorieTarget,
		OnboardingCompleted:   data.OnboardingCompleted,
		OnboardingCompletedAt: data.OnboardingCompletedAt,
	}
}
