package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager      repository.TransactionManager
	engagementRepo repository.EngagementRepository
	recipeRepo     repository.RecipeRepository
	logger         *slog.Logger
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EngagementRepo repository.EngagementRepository
	RecipeRepo     repository.RecipeRepository
	Logger         *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:      params.TxManager,
		engagementRepo: params.EngagementRepo,
		recipeRepo:     params.RecipeRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveRecipe marks a recipe as saved. The write is an upsert keyed on the
// (user, recipe) pair, so repeating it changes nothing: same row, same state.
func (srv *engagementService) SaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.NewEngagementRepository()

		record, findErr := engagementRepo.FindRecord(ctx, userID, recipeID)
		switch {
		case findErr == nil:
			// Keep the favorite flag; only the saved status changes.
			record.Status = entity.EngagementStatusSaved
		case errors.Is(findErr, repository.ErrEngagementNotFound):
			record = &entity.EngagementRecord{
				UserID:   userID,
				RecipeID: recipeID,
				Status:   entity.EngagementStatusSaved,
			}
		default:
			return errors.Wrap(findErr, "failed to load engagement record")
		}

		if upsertErr := engagementRepo.UpsertRecord(ctx, record); upsertErr != nil {
			if errors.Is(upsertErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "save failed")
			}

			return errors.Wrap(upsertErr, "failed to upsert engagement record")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to save recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute save recipe transaction")
	}

	return nil
}

// UnsaveRecipe clears the saved status. Unsaving a recipe that was never
// saved is a no-op.
func (srv *engagementService) UnsaveRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.NewEngagementRepository()

		record, findErr := engagementRepo.FindRecord(ctx, userID, recipeID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrEngagementNotFound) {
				return nil
			}

			return errors.Wrap(findErr, "failed to load engagement record")
		}

		record.Status = entity.EngagementStatusNone
		if upsertErr := engagementRepo.UpsertRecord(ctx, record); upsertErr != nil {
			return errors.Wrap(upsertErr, "failed to upsert engagement record")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute unsave recipe transaction")
	}

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value. A first
// toggle on an untouched recipe creates the row with the favorite flag set
// and the recipe marked saved, so favorites always show up in the saved list.
func (srv *engagementService) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var favorite bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.NewEngagementRepository()

		record, findErr := engagementRepo.FindRecord(ctx, userID, recipeID)
		switch {
		case findErr == nil:
			record.IsFavorite = !record.IsFavorite
		case errors.Is(findErr, repository.ErrEngagementNotFound):
			record = &entity.EngagementRecord{
				UserID:     userID,
				RecipeID:   recipeID,
				Status:     entity.EngagementStatusSaved,
				IsFavorite: true,
			}
		default:
			return errors.Wrap(findErr, "failed to load engagement record")
		}

		if upsertErr := engagementRepo.UpsertRecord(ctx, record); upsertErr != nil {
			if errors.Is(upsertErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "toggle favorite failed")
			}

			return errors.Wrap(upsertErr, "failed to upsert engagement record")
		}
		favorite = record.IsFavorite

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle favorite", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to execute toggle favorite transaction")
	}

	return favorite, nil
}

// RateRecipe stores the user's rating and recomputes the recipe's aggregate
// fields from the full set of rating rows. Both writes happen in the same
// transaction so the denormalized aggregate can never drift from the source
// ratings. Re-rating replaces the prior value; the rating count is unchanged.
func (srv *engagementService) RateRecipe(ctx context.Context, userID uuid.UUID, input *usecase.RateRecipeInput) (*entity.RecipeAggregate, error) {
	// 1. Validate before any storage round-trip.
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrRatingOutOfRange, "rating validation failed")
	}

	var aggregate *entity.RecipeAggregate

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.NewEngagementRepository()
		recipeRepo := repoFactory.NewRecipeRepository()

		// 2. Upsert the rating row for this user/recipe pair.
		rating := &entity.RatingRecord{
			UserID:   userID,
			RecipeID: input.RecipeID,
			Rating:   input.Rating,
			Review:   input.Review,
		}
		if upsertErr := engagementRepo.UpsertRating(ctx, rating); upsertErr != nil {
			if errors.Is(upsertErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "rating failed")
			}

			return errors.Wrap(upsertErr, "failed to upsert rating")
		}

		// 3. Recompute the exact aggregate over all current ratings.
		var aggErr error
		aggregate, aggErr = engagementRepo.AggregateRatings(ctx, input.RecipeID)
		if aggErr != nil {
			return errors.Wrap(aggErr, "failed to aggregate ratings")
		}

		// 4. Write the denormalized columns back onto the recipe row.
		if updateErr := recipeRepo.UpdateAggregate(ctx, input.RecipeID, aggregate); updateErr != nil {
			if errors.Is(updateErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "rating failed")
			}

			return errors.Wrap(updateErr, "failed to update recipe aggregate")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to rate recipe", slog.Any("recipeID", input.RecipeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rate recipe transaction")
	}
	srv.log(ctx).Debug("Recipe rated",
		slog.Any("recipeID", input.RecipeID),
		slog.Float64("averageRating", aggregate.AverageRating),
		slog.Int("totalRatings", aggregate.TotalRatings))

	return aggregate, nil
}

// ListSavedRecipes returns the recipes the user has saved, most recently
// touched first.
func (srv *engagementService) ListSavedRecipes(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	records, err := srv.engagementRepo.ListSavedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved records")
	}

	return srv.resolveRecipes(ctx, records)
}

// ListFavoriteRecipes returns the recipes the user has marked favorite.
func (srv *engagementService) ListFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	records, err := srv.engagementRepo.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite records")
	}

	return srv.resolveRecipes(ctx, records)
}

// resolveRecipes loads the recipes behind a set of engagement records,
// preserving the record order. Records pointing at recipes that have since
// been unpublished or removed are skipped.
func (srv *engagementService) resolveRecipes(ctx context.Context, records []*entity.EngagementRecord) ([]*entity.Recipe, error) {
	if len(records) == 0 {
		return []*entity.Recipe{}, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.RecipeID)
	}

	recipes, err := srv.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipes")
	}

	byID := make(map[uuid.UUID]*entity.Recipe, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}

	ordered := make([]*entity.Recipe, 0, len(records))
	for _, record := range records {
		if recipe, ok := byID[record.RecipeID]; ok {
			ordered = append(ordered, recipe)
		}
	}

	return ordered, nil
}
