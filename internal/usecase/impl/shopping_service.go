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

// shoppingService implements the ShoppingListUsecase interface.
type shoppingService struct {
	txManager    repository.TransactionManager
	shoppingRepo repository.ShoppingListRepository
	logger       *slog.Logger
}

// ShoppingServiceParams holds dependencies for ShoppingService, injected by Fx.
type ShoppingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ShoppingRepo repository.ShoppingListRepository
	Logger       *slog.Logger
}

// NewShoppingService is the constructor for shoppingService.
func NewShoppingService(params ShoppingServiceParams) usecase.ShoppingListUsecase {
	return &shoppingService{
		txManager:    params.TxManager,
		shoppingRepo: params.ShoppingRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shoppingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetShoppingList retrieves one active list with its items.
func (srv *shoppingService) GetShoppingList(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error) {
	return srv.loadOwnedList(ctx, srv.shoppingRepo, userID, listID)
}

// ListShoppingLists retrieves the user's active lists, newest first.
func (srv *shoppingService) ListShoppingLists(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	lists, err := srv.shoppingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping lists")
	}

	return lists, nil
}

// CreateShoppingList creates an active list, optionally with items.
func (srv *shoppingService) CreateShoppingList(ctx context.Context, userID uuid.UUID, input *usecase.CreateShoppingListInput) (*entity.ShoppingList, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "shopping list name is required")
	}

	list := &entity.ShoppingList{
		UserID: userID,
		Name:   input.Name,
	}
	for _, itemInput := range input.Items {
		list.Items = append(list.Items, buildShoppingItem(itemInput))
	}

	if err := srv.shoppingRepo.Create(ctx, list); err != nil {
		srv.log(ctx).Warn("Failed to create shopping list", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create shopping list")
	}
	srv.log(ctx).Debug("Shopping list created", slog.Any("listID", list.ID))

	return list, nil
}

// RenameShoppingList changes the list name.
func (srv *shoppingService) RenameShoppingList(ctx context.Context, userID, listID uuid.UUID, name string) (*entity.ShoppingList, error) {
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "shopping list name is required")
	}

	var renamed *entity.ShoppingList

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shoppingRepo := repoFactory.NewShoppingListRepository()

		list, loadErr := srv.loadOwnedList(ctx, shoppingRepo, userID, listID)
		if loadErr != nil {
			return loadErr
		}

		list.Name = name
		if updateErr := shoppingRepo.Update(ctx, list); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update shopping list")
		}
		renamed = list

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute shopping list rename transaction")
	}

	return renamed, nil
}

// DeleteShoppingList deactivates a list. The rows are kept; the list simply
// stops showing up in active views.
func (srv *shoppingService) DeleteShoppingList(ctx context.Context, userID, listID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shoppingRepo := repoFactory.NewShoppingListRepository()

		if _, loadErr := srv.loadOwnedList(ctx, shoppingRepo, userID, listID); loadErr != nil {
			return loadErr
		}

		if deactivateErr := shoppingRepo.Deactivate(ctx, listID); deactivateErr != nil {
			return errors.Wrap(deactivateErr, "failed to deactivate shopping list")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute shopping list deletion transaction")
	}
	srv.log(ctx).Debug("Shopping list deactivated", slog.Any("listID", listID))

	return nil
}

// AddItem appends an item to a list.
func (srv *shoppingService) AddItem(ctx context.Context, userID, listID uuid.UUID, input *usecase.ShoppingItemInput) (*entity.ShoppingList, error) {
	if input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item name is required")
	}

	var updated *entity.ShoppingList

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shoppingRepo := repoFactory.NewShoppingListRepository()

		if _, loadErr := srv.loadOwnedList(ctx, shoppingRepo, userID, listID); loadErr != nil {
			return loadErr
		}

		item := buildShoppingItem(input)
		item.ShoppingListID = listID
		if addErr := shoppingRepo.AddItem(ctx, item); addErr != nil {
			return errors.Wrap(addErr, "failed to add shopping list item")
		}

		var reloadErr error
		updated, reloadErr = shoppingRepo.FindByID(ctx, listID)
		if reloadErr != nil {
			return errors.Wrap(reloadErr, "failed to reload shopping list")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add item transaction")
	}

	return updated, nil
}

// UpdateItem modifies an item, including toggling its purchased flag.
func (srv *shoppingService) UpdateItem(ctx context.Context, userID, listID, itemID uuid.UUID, input *usecase.UpdateShoppingItemInput) (*entity.ShoppingList, error) {
	var updated *entity.ShoppingList

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shoppingRepo := repoFactory.NewShoppingListRepository()

		list, loadErr := srv.loadOwnedList(ctx, shoppingRepo, userID, listID)
		if loadErr != nil {
			return loadErr
		}

		item := findListItem(list, itemID)
		if item == nil {
			return errors.Wrap(domainerrors.ErrShoppingItemNotFound, "item does not belong to list")
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.Category != nil {
			item.Category = *input.Category
		}
		if input.EstimatedPrice != nil {
			item.EstimatedPrice = input.EstimatedPrice
		}
		if input.IsPurchased != nil {
			item.IsPurchased = *input.IsPurchased
		}

		if updateErr := shoppingRepo.UpdateItem(ctx, item); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update shopping list item")
		}
		updated = list

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update item transaction")
	}

	return updated, nil
}

// RemoveItem removes an item from a list.
func (srv *shoppingService) RemoveItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shoppingRepo := repoFactory.NewShoppingListRepository()

		list, loadErr := srv.loadOwnedList(ctx, shoppingRepo, userID, listID)
		if loadErr != nil {
			return loadErr
		}

		if findListItem(list, itemID) == nil {
			return errors.Wrap(domainerrors.ErrShoppingItemNotFound, "item does not belong to list")
		}

		if removeErr := shoppingRepo.RemoveItem(ctx, itemID); removeErr != nil {
			return errors.Wrap(removeErr, "failed to remove shopping list item")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute remove item transaction")
	}

	return nil
}

// loadOwnedList loads an active list and verifies it belongs to the acting user.
func (srv *shoppingService) loadOwnedList(ctx context.Context, shoppingRepo repository.ShoppingListRepository, userID, listID uuid.UUID) (*entity.ShoppingList, error) {
	list, err := shoppingRepo.FindByID(ctx, listID)
	if err != nil {
		if errors.Is(err, repository.ErrShoppingListNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShoppingListNotFound, "shopping list lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find shopping list")
	}
	if list.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOwnershipViolation, "shopping list belongs to another user")
	}

	return list, nil
}

func findListItem(list *entity.ShoppingList, itemID uuid.UUID) *entity.ShoppingListItem {
	for _, item := range list.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

func buildShoppingItem(input *usecase.ShoppingItemInput) *entity.ShoppingListItem {
	return &entity.ShoppingListItem{
		Name:           input.Name,
		Quantity:       input.Quantity,
		Category:       input.Category,
		EstimatedPrice: input.EstimatedPrice,
	}
}
