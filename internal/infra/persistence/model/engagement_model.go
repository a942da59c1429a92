package model

import (
	"time"

	"github.com/google/uuid"
)

// EngagementModel mirrors the 'user_recipes' table. The composite primary key
// (user_id, recipe_id) is what makes the upsert semantics possible: at most
// one row per pair can ever exist.
type EngagementModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status     string    `gorm:"type:varchar(20);not null;default:'none'"`
	IsFavorite bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (EngagementModel) TableName() string {
	return "user_recipes"
}

// RatingModel mirrors the 'recipe_ratings' table, one row per (user, recipe).
type RatingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Rating    int       `gorm:"not null"`
	Review    string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "recipe_ratings"
}
