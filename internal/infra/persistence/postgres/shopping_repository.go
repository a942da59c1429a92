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

// shoppingListRepository implements the repository.ShoppingListRepository interface using GORM.
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository is the constructor for shoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) repository.ShoppingListRepository {
	return &shoppingListRepository{
		db: db,
	}
}

// FindByID retrieves an active shopping list with its items preloaded.
func (repo *shoppingListRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	var listM model.ShoppingListModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND is_active = ?", id, true).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoppingListNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping list by id")
	}

	return toShoppingListDomain(&listM), nil
}

// ListByUser retrieves all active shopping lists for a user, newest first.
func (repo *shoppingListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	var listModels []*model.ShoppingListModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&listModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shopping lists")
	}

	lists := make([]*entity.ShoppingList, 0, len(listModels))
	for _, listM := range listModels {
		lists = append(lists, toShoppingListDomain(listM))
	}

	return lists, nil
}

// Create persists a new shopping list and any items attached to it.
func (repo *shoppingListRepository) Create(ctx context.Context, list *entity.ShoppingList) error {
	listM := fromShoppingListDomain(list)
	listM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(listM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping list")
	}

	list.ID = listM.ID
	list.IsActive = true
	list.CreatedAt = listM.CreatedAt
	list.UpdatedAt = listM.UpdatedAt
	for i, itemM := range listM.Items {
		if i < len(list.Items) {
			list.Items[i].ID = itemM.ID
			list.Items[i].ShoppingListID = itemM.ShoppingListID
		}
	}

	return nil
}

// Update modifies the shopping list row itself, not its items.
func (repo *shoppingListRepository) Update(ctx context.Context, list *entity.ShoppingList) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingListModel{}).
		Where("id = ? AND is_active = ?", list.ID, true).
		Update("name", list.Name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shopping list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingListNotFound
	}

	return nil
}

// Deactivate soft-deletes a list by clearing its is_active flag.
func (repo *shoppingListRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingListModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate shopping list")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingListNotFound
	}

	return nil
}

// AddItem persists a new item on an existing list.
func (repo *shoppingListRepository) AddItem(ctx context.Context, item *entity.ShoppingListItem) error {
	itemM := fromShoppingItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShoppingListNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add shopping list item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateItem modifies an existing item, including its purchased flag.
func (repo *shoppingListRepository) UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingListItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":            item.Name,
			"quantity":        item.Quantity,
			"category":        item.Category,
			"estimated_price": item.EstimatedPrice,
			"is_purchased":    item.IsPurchased,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shopping list item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingItemNotFound
	}

	return nil
}

// RemoveItem removes a single item by its ID.
func (repo *shoppingListRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.ShoppingListItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove shopping list item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShoppingItemNotFound
	}

	return nil
}

// toShoppingListDomain converts a GORM ShoppingListModel to a domain ShoppingList entity.
func toShoppingListDomain(data *model.ShoppingListModel) *entity.ShoppingList {
	if data == nil {
		return nil
	}

	items := make([]*entity.ShoppingListItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toShoppingItemDomain(itemM))
	}

	return &entity.ShoppingList{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		IsActive:  data.IsActive,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromShoppingListDomain converts a domain ShoppingList entity to a GORM ShoppingListModel.
func fromShoppingListDomain(data *entity.ShoppingList) *model.ShoppingListModel {
	if data == nil {
		return nil
	}

	items := make([]*model.ShoppingListItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromShoppingItemDomain(item))
	}

	return &model.ShoppingListModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Name:     data.Name,
		IsActive: data.IsActive,
		Items:    items,
	}
}

// toShoppingItemDomain converts a GORM ShoppingListItemModel to a domain ShoppingListItem entity.
func toShoppingItemDomain(data *model.ShoppingListItemModel) *entity.ShoppingListItem {
	if data == nil {
		return nil
	}

	return &entity.ShoppingListItem{
		ID:             data.ID,
		ShoppingListID: data.ShoppingListID,
		Name:           data.Name,
		Quantity:       data.Quantity,
		Category:       data.Category,
		EstimatedPrice: data.EstimatedPrice,
		IsPurchased:    data.IsPurchased,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromShoppingItemDomain converts a domain ShoppingListItem entity to a GORM ShoppingListItemModel.
func fromShoppingItemDomain(data *entity.ShoppingListItem) *model.ShoppingListItemModel {
	if data == nil {
		return nil
	}

	return &model.ShoppingListItemModel{
		ID:             data.ID,
		ShoppingListID: data.ShoppingListID,
		Name:           data.Name,
		Quantity:       data.Quantity,
		Category:       data.Category,
		EstimatedPrice: data.EstimatedPrice,
		IsPurchased:    data.IsPurchased,
	}
}
