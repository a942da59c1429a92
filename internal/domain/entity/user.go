package entity

import (
	"github.com/google/uuid"
)

// User is the normalized in-memory view assembled from an Account and its
// ExtendedProfile. It is what session consumers observe; it never holds the
// password hash.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	CookingLevel CookingLevel
	FamilySize   int
	Profile      *ProfileView // nil when no extended profile record exists; distinct from a pre-onboarding profile.
}

// ProfileView is the subset of ExtendedProfile exposed on the assembled user.
type ProfileView struct {
	OnboardingCompleted bool
	DailyCalorieTarget  *int
	ActivityLevel       ActivityLevel
}
