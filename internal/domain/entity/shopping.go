package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingList is owned by one account. Deactivation is a soft delete: the
// list is retained but excluded from the user's active view.
type ShoppingList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsActive  bool
	Items     []*ShoppingListItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListItem belongs to exactly one list.
type ShoppingListItem struct {
	ID             uuid.UUID
	ShoppingListID uuid.UUID
	Name           string
	Quantity       string
	Category       string
	EstimatedPrice *float64
	IsPurchased    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
