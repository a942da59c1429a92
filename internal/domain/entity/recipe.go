package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty classifies how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MealType classifies which meal of the day a recipe or plan entry targets.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Cuisine is a catalog reference grouping recipes by culinary tradition.
type Cuisine struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
}

// Recipe is a catalog entity owned by content authors. From this layer's
// perspective it is read-only except for the derived aggregate rating fields,
// which the engagement manager keeps consistent with the set of rating records.
type Recipe struct {
	ID                 uuid.UUID
	Name               string
	Slug               string // Unique, URL-safe identifier.
	Description        string
	CuisineID          uuid.UUID
	Cuisine            *Cuisine // Populated on catalog reads.
	PrepTime           int      // Minutes.
	CookTime           int      // Minutes.
	TotalTime          int      // Always prep_time + cook_time.
	Servings           int      // Always >= 1.
	Difficulty         Difficulty
	MealType           MealType
	CaloriesPerServing *int
	Image              *string
	IsPublished        bool
	IsFeatured         bool
	AverageRating      float64 // Derived: exact mean of all current ratings, 0 when unrated.
	TotalRatings       int     // Derived: exact count of all current ratings.
	CreatedBy          *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RecipeAggregate carries the recomputed rating fields for a recipe.
type RecipeAggregate struct {
	AverageRating float64
	TotalRatings  int
}
