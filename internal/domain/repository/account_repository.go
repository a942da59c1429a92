// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when creating an account with an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when creating an account with a username that already exists.
	ErrDuplicateUsername = errors.New("username already taken")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// ApplyUpdates writes the fields present in updates to the account row.
	// Fields left nil are not touched, so callers can send sparse changes.
	ApplyUpdates(ctx context.Context, id uuid.UUID, updates *entity.AccountUpdates) error

	// AcquireSessionLock takes a row-level lock on the account for the
	// duration of the surrounding transaction. Used to serialize concurrent
	// session-limit checks for the same user.
	AcquireSessionLock(ctx context.Context, id uuid.UUID) error
}
