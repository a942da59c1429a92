package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager    repository.TransactionManager
	mealPlanRepo repository.MealPlanRepository
	logger       *slog.Logger
}

// MealPlanServiceParams holds dependencies for MealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MealPlanRepo repository.MealPlanRepository
	Logger       *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager:    params.TxManager,
		mealPlanRepo: params.MealPlanRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMealPlan retrieves one plan with its entries and recipes.
func (srv *mealPlanService) GetMealPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := srv.loadOwnedPlan(ctx, srv.mealPlanRepo, userID, planID)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// ListMealPlans retrieves the user's plans, newest start date first.
func (srv *mealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	return plans, nil
}

// GetMealPlansInRange retrieves the user's plans overlapping [from, to].
func (srv *mealPlanService) GetMealPlansInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MealPlan, error) {
	plans, err := srv.mealPlanRepo.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans in range")
	}

	return plans, nil
}

// CreateMealPlan creates a plan, optionally with initial entries.
func (srv *mealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, input *usecase.CreateMealPlanInput) (*entity.MealPlan, error) {
	if input.Name == "" || input.EndDate.Before(input.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid meal plan input")
	}

	plan := &entity.MealPlan{
		UserID:    userID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	for _, entryInput := range input.Entries {
		plan.Entries = append(plan.Entries, buildMealPlanEntry(entryInput))
	}

	var created *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()

		if createErr := mealPlanRepo.Create(ctx, plan); createErr != nil {
			if errors.Is(createErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "meal plan creation failed")
			}

			return errors.Wrap(createErr, "failed to create meal plan")
		}

		// Re-read so entries come back with their recipes preloaded.
		var loadErr error
		created, loadErr = mealPlanRepo.FindByID(ctx, plan.ID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to reload meal plan")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create meal plan", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute meal plan creation transaction")
	}
	srv.log(ctx).Debug("Meal plan created", slog.Any("planID", created.ID))

	return created, nil
}

// UpdateMealPlan renames a plan or shifts its date range.
func (srv *mealPlanService) UpdateMealPlan(ctx context.Context, userID, planID uuid.UUID, input *usecase.UpdateMealPlanInput) (*entity.MealPlan, error) {
	var updated *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()

		plan, loadErr := srv.loadOwnedPlan(ctx, mealPlanRepo, userID, planID)
		if loadErr != nil {
			return loadErr
		}

		if input.Name != nil {
			plan.Name = *input.Name
		}
		if input.StartDate != nil {
			plan.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			plan.EndDate = *input.EndDate
		}
		if plan.EndDate.Before(plan.StartDate) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "meal plan date range is inverted")
		}

		if updateErr := mealPlanRepo.Update(ctx, plan); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update meal plan")
		}

		var reloadErr error
		updated, reloadErr = mealPlanRepo.FindByID(ctx, planID)
		if reloadErr != nil {
			return errors.Wrap(reloadErr, "failed to reload meal plan")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute meal plan update transaction")
	}

	return updated, nil
}

// DeleteMealPlan removes a plan together with all of its entries.
func (srv *mealPlanService) DeleteMealPlan(ctx context.Context, userID, planID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()

		if _, loadErr := srv.loadOwnedPlan(ctx, mealPlanRepo, userID, planID); loadErr != nil {
			return loadErr
		}

		if deleteErr := mealPlanRepo.Delete(ctx, planID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete meal plan")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute meal plan deletion transaction")
	}
	srv.log(ctx).Debug("Meal plan deleted", slog.Any("planID", planID))

	return nil
}

// AddEntry schedules a recipe on a plan.
func (srv *mealPlanService) AddEntry(ctx context.Context, userID, planID uuid.UUID, input *usecase.AddMealPlanEntryInput) (*entity.MealPlan, error) {
	var updated *entity.MealPlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()

		if _, loadErr := srv.loadOwnedPlan(ctx, mealPlanRepo, userID, planID); loadErr != nil {
			return loadErr
		}

		entry := buildMealPlanEntry(input)
		entry.MealPlanID = planID
		if addErr := mealPlanRepo.AddEntry(ctx, entry); addErr != nil {
			if errors.Is(addErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "add entry failed")
			}

			return errors.Wrap(addErr, "failed to add meal plan entry")
		}

		var reloadErr error
		updated, reloadErr = mealPlanRepo.FindByID(ctx, planID)
		if reloadErr != nil {
			return errors.Wrap(reloadErr, "failed to reload meal plan")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add entry transaction")
	}

	return updated, nil
}

// RemoveEntry removes one scheduled recipe from a plan.
func (srv *mealPlanService) RemoveEntry(ctx context.Context, userID, planID, entryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealPlanRepo := repoFactory.NewMealPlanRepository()

		plan, loadErr := srv.loadOwnedPlan(ctx, mealPlanRepo, userID, planID)
		if loadErr != nil {
			return loadErr
		}

		// The entry must belong to this plan; a bare entry ID from another
		// user's plan must not be removable through this path.
		owned := false
		for _, entry := range plan.Entries {
			if entry.ID == entryID {
				owned = true

				break
			}
		}
		if !owned {
			return errors.Wrap(domainerrors.ErrMealPlanEntryNotFound, "entry does not belong to plan")
		}

		if removeErr := mealPlanRepo.RemoveEntry(ctx, entryID); removeErr != nil {
			return errors.Wrap(removeErr, "failed to remove meal plan entry")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute remove entry transaction")
	}

	return nil
}

// loadOwnedPlan loads a plan and verifies it belongs to the acting user.
func (srv *mealPlanService) loadOwnedPlan(ctx context.Context, mealPlanRepo repository.MealPlanRepository, userID, planID uuid.UUID) (*entity.MealPlan, error) {
	plan, err := mealPlanRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrMealPlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMealPlanNotFound, "meal plan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find meal plan")
	}
	if plan.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOwnershipViolation, "meal plan belongs to another user")
	}

	return plan, nil
}

func buildMealPlanEntry(input *usecase.AddMealPlanEntryInput) *entity.MealPlanEntry {
	servings := input.Servings
	if servings < 1 {
		servings = 1
	}

	return &entity.MealPlanEntry{
		RecipeID: input.RecipeID,
		Date:     input.Date,
		MealType: input.MealType,
		Servings: servings,
		Notes:    input.Notes,
	}
}
