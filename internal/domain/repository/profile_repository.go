// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an extended profile row does not exist for a user.
// Callers must distinguish this from a remote failure: a missing profile is a
// valid state for accounts that never completed onboarding.
var ErrProfileNotFound = errors.New("extended profile not found")

// ProfileRepository defines the operations for extended profile persistence.
// The extended profile holds the derived nutrition fields that live in a
// separate table from the core account row.
type ProfileRepository interface {
	// FindByUserID retrieves the extended profile for a user.
	// Returns ErrProfileNotFound when no row exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ExtendedProfile, error)

	// Create persists a new extended profile row.
	Create(ctx context.Context, profile *entity.ExtendedProfile) error

	// Upsert creates the extended profile row if absent, or overwrites the
	// provided fields if it already exists. Used by onboarding completion,
	// which must succeed regardless of whether a prior row exists.
	Upsert(ctx context.Context, profile *entity.ExtendedProfile) error

	// ApplyUpdates writes the fields present in updates to the profile row.
	// Fields left nil are not touched.
	ApplyUpdates(ctx context.Context, userID uuid.UUID, updates *entity.ProfileUpdates) error
}
