package model

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingListModel mirrors the 'shopping_lists' table. Lists are never hard
// deleted; is_active=false hides them from the user's active view.
type ShoppingListModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*ShoppingListItemModel `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ShoppingListItemModel mirrors the 'shopping_list_items' table.
type ShoppingListItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShoppingListID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Quantity       string    `gorm:"type:varchar(100)"`
	Category       string    `gorm:"type:varchar(100)"`
	EstimatedPrice *float64  `gorm:"type:numeric(8,2)"`
	IsPurchased    bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}
