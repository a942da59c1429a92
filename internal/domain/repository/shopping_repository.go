// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for shopping list persistence.
var (
	// ErrShoppingListNotFound is returned when a shopping list is not found.
	ErrShoppingListNotFound = errors.New("shopping list not found")
	// ErrShoppingItemNotFound is returned when a shopping list item is not found.
	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

// ShoppingListRepository defines the operations for shopping list persistence.
// Lists are soft-deleted by clearing is_active; reads only ever return active lists.
type ShoppingListRepository interface {
	// FindByID retrieves an active shopping list with its items preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)

	// ListByUser retrieves all active shopping lists for a user, newest first,
	// with items preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error)

	// Create persists a new shopping list and any items attached to it.
	Create(ctx context.Context, list *entity.ShoppingList) error

	// Update modifies the shopping list row itself, not its items.
	Update(ctx context.Context, list *entity.ShoppingList) error

	// Deactivate soft-deletes a list by clearing its is_active flag.
	// The row and its items are retained.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// AddItem persists a new item on an existing list.
	AddItem(ctx context.Context, item *entity.ShoppingListItem) error

	// UpdateItem modifies an existing item, including its purchased flag.
	UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error

	// RemoveItem removes a single item by its ID.
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}
