package model

import (
	"time"

	"github.com/google/uuid"
)

// MealPlanModel mirrors the 'meal_plans' table.
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Entries are removed together with their plan (ON DELETE CASCADE).
	Entries []*MealPlanEntryModel `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// MealPlanEntryModel mirrors the 'meal_plan_entries' table.
type MealPlanEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null"`
	Date       time.Time `gorm:"type:date;not null"`
	MealType   string    `gorm:"type:varchar(20);not null"`
	Servings   int       `gorm:"not null;default:1"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time

	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}
