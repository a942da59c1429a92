package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	Username     string     `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FirstName    string     `gorm:"type:varchar(100)"`
	LastName     string     `gorm:"type:varchar(100)"`
	CookingLevel string     `gorm:"type:varchar(20)"`
	FamilySize   int        `gorm:"default:1"`
	HeightCm     *float64   `gorm:"type:numeric(5,1)"`
	WeightKg     *float64   `gorm:"type:numeric(5,1)"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	Gender       string     `gorm:"type:varchar(10)"`
	Location     string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ExtendedProfile *ExtendedProfileModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}

// ExtendedProfileModel mirrors the 'extended_profiles' table. UserID references users.id (UUID).
type ExtendedProfileModel struct {
	UserID                uuid.UUID `gorm:"primaryKey"`
	ActivityLevel         string    `gorm:"type:varchar(20);not null;default:'moderate'"`
	DailyCalorieTarget    *int
	OnboardingCompleted   bool `gorm:"not null;default:false"`
	OnboardingCompletedAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExtendedProfileModel) TableName() string {
	return "extended_profiles"
}
