package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ShoppingListUsecase manages shopping lists and their items. Deleting a
// list is a soft delete: the row is kept but hidden from active views. Every
// operation checks that the list belongs to the acting user.
type ShoppingListUsecase interface {
	// GetShoppingList retrieves one active list with its items.
	GetShoppingList(ctx context.Context, userID, listID uuid.UUID) (*entity.ShoppingList, error)

	// ListShoppingLists retrieves the user's active lists, newest first.
	ListShoppingLists(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)

	// CreateShoppingList creates an active list, optionally with items.
	CreateShoppingList(ctx context.Context, userID uuid.UUID, input *CreateShoppingListInput) (*entity.ShoppingList, error)

	// RenameShoppingList changes the list name.
	RenameShoppingList(ctx context.Context, userID, listID uuid.UUID, name string) (*entity.ShoppingList, error)

	// DeleteShoppingList deactivates a list, keeping its rows.
	DeleteShoppingList(ctx context.Context, userID, listID uuid.UUID) error

	// AddItem appends an item to a list.
	AddItem(ctx context.Context, userID, listID uuid.UUID, input *ShoppingItemInput) (*entity.ShoppingList, error)

	// UpdateItem modifies an item, including toggling its purchased flag.
	UpdateItem(ctx context.Context, userID, listID, itemID uuid.UUID, input *UpdateShoppingItemInput) (*entity.ShoppingList, error)

	// RemoveItem removes an item from a list.
	RemoveItem(ctx context.Context, userID, listID, itemID uuid.UUID) error
}

// --- Input DTOs ---

// CreateShoppingListInput defines the data required to create a shopping list.
type CreateShoppingListInput struct {
	Name  string               `json:"name"`
	Items []*ShoppingItemInput `json:"items,omitempty"`
}

// ShoppingItemInput defines the data required to add an item.
type ShoppingItemInput struct {
	Name           string   `json:"name"`
	Quantity       string   `json:"quantity,omitempty"`
	Category       string   `json:"category,omitempty"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
}

// UpdateShoppingItemInput defines a sparse update of one item.
type UpdateShoppingItemInput struct {
	Name           *string  `json:"name,omitempty"`
	Quantity       *string  `json:"quantity,omitempty"`
	Category       *string  `json:"category,omitempty"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
	IsPurchased    *bool    `json:"is_purchased,omitempty"`
}
