// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record of the system, created once at registration.
// It carries the login identity plus the physiological inputs the derivation
// engine reads when computing a daily calorie target.
type Account struct {
	ID           uuid.UUID  // The Global Unique Identifier for the account.
	Email        string     // The account's primary contact email, used as the login identifier.
	Username     string     // The display handle; defaults to the email when not supplied.
	FirstName    string     // Given name, optional.
	LastName     string     // Family name, optional.
	CookingLevel CookingLevel // Self-reported cooking skill (beginner/intermediate/advanced).
	FamilySize   int        // Number of people cooked for; always >= 1.
	HeightCm     *float64   // Body height in centimeters, nil until onboarding supplies it.
	WeightKg     *float64   // Body weight in kilograms, nil until onboarding supplies it.
	DateOfBirth  *time.Time // Birth date; may be synthesized from a bare age (Jan 1 approximation).
	Gender       Gender     // "M" or "F"; any other value falls through to the female BMR branch.
	Location     string     // Free-form locale string, optional.
	PasswordHash string     // bcrypt hash of the login password. Never serialized outward.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// ExtendedProfile holds the derived, one-to-one companion record of an Account.
// It exists from registration with defaults (onboarding_completed=false,
// activity_level="moderate") and is only ever written by the onboarding and
// profile-update flows.
type ExtendedProfile struct {
	UserID                uuid.UUID     // Foreign key linking this profile to its Account.
	ActivityLevel         ActivityLevel // Daily activity classification driving the TDEE multiplier.
	DailyCalorieTarget    *int          // Derived kcal target; nil until the derivation engine can compute it.
	OnboardingCompleted   bool          // Transitions false -> true exactly once per account.
	OnboardingCompletedAt *time.Time    // Set when onboarding first completes.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AccountUpdates is a sparse update set for an Account. Nil fields are left
// untouched downstream; only fields present in the onboarding input appear here.
type AccountUpdates struct {
	HeightCm     *float64
	WeightKg     *float64
	Gender       *Gender
	DateOfBirth  *time.Time
	CookingLevel *CookingLevel
	FamilySize   *int
	Location     *string
}

// ProfileUpdates is a sparse update set for an ExtendedProfile.
type ProfileUpdates struct {
	ActivityLevel         *ActivityLevel
	DailyCalorieTarget    *int
	OnboardingCompleted   *bool
	OnboardingCompletedAt *time.Time
}
