package model

import (
	"time"

	"github.com/google/uuid"
)

// CuisineModel mirrors the 'cuisines' table.
type CuisineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Slug        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CuisineModel) TableName() string {
	return "cuisines"
}

// RecipeModel mirrors the 'recipes' table. The aggregate rating columns are
// denormalized and rewritten whenever the underlying ratings change.
type RecipeModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Slug               string    `gorm:"type:varchar(255);unique;not null"`
	Description        string    `gorm:"type:text"`
	CuisineID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PrepTime           int       `gorm:"not null"`
	CookTime           int       `gorm:"not null"`
	TotalTime          int       `gorm:"not null"`
	Servings           int       `gorm:"not null;default:1"`
	Difficulty         string    `gorm:"type:varchar(20);not null"`
	MealType           string    `gorm:"type:varchar(20);not null;index"`
	CaloriesPerServing *int
	Image              *string `gorm:"type:varchar(500)"`
	IsPublished        bool    `gorm:"not null;default:false;index"`
	IsFeatured         bool    `gorm:"not null;default:false"`
	AverageRating      float64 `gorm:"type:numeric(3,2);not null;default:0"`
	TotalRatings       int     `gorm:"not null;default:0"`
	CreatedBy          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Cuisine *CuisineModel `gorm:"foreignKey:CuisineID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
