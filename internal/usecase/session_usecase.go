// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase drives the authentication lifecycle and the profile flows
// that hang off it. It owns an observable session state that moves between
// anonymous, authenticating and authenticated, and publishes SIGNED_IN /
// SIGNED_OUT events for other components to react to.
type SessionUsecase interface {
	// Register creates a new account with a default extended profile and
	// signs the user in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and signs the user in.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes the given refresh token and returns the session to the
	// anonymous phase. Local state is cleared even when revocation fails.
	Logout(ctx context.Context, refreshToken string) error

	// RestoreSession rebuilds an authenticated session from a previously
	// issued refresh token, e.g. after a restart.
	RestoreSession(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshTokenOutput, error)

	// CompleteOnboarding persists the supplied profile data, derives the
	// daily calorie target where possible and marks onboarding as completed.
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, input *SaveProfileInput) (*entity.User, error)

	// UpdateProfile persists a sparse profile change through the same save
	// path as onboarding. Fields left nil are not touched.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *SaveProfileInput) (*entity.User, error)

	// RefreshUser re-reads the account and extended profile from storage and
	// refreshes the in-memory snapshot.
	RefreshUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// CurrentUser returns the signed-in user, or nil in any other phase.
	CurrentUser() *entity.User

	// IsAuthenticated reports whether the session is in the authenticated phase.
	IsAuthenticated() bool

	// State returns a snapshot of the session machine.
	State() entity.SessionState
}

// --- Input DTOs ---

// RegisterInput defines the data required to create a new account.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// LoginInput defines the credentials for signing in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveProfileInput carries the onboarding / profile-update payload. Every
// field is optional; only the fields present are written. Age is accepted as
// an alternative to an explicit date of birth, which wins when both are set.
type SaveProfileInput struct {
	HeightCm      *float64              `json:"height_cm,omitempty"`
	WeightKg      *float64              `json:"weight_kg,omitempty"`
	Age           *int                  `json:"age,omitempty"`
	DateOfBirth   *time.Time            `json:"date_of_birth,omitempty"`
	Gender        *entity.Gender        `json:"gender,omitempty"`
	ActivityLevel *entity.ActivityLevel `json:"activity_level,omitempty"`
	CookingLevel  *entity.CookingLevel  `json:"cooking_level,omitempty"`
	FamilySize    *int                  `json:"family_size,omitempty"`
	Location      *string               `json:"location,omitempty"`
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that establishes a session.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshTokenOutput carries the replacement access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access_token"`
}
