package entity

import (
	"time"

	"github.com/google/uuid"
)

// EngagementStatus is the save-state of a user's relationship to a recipe.
type EngagementStatus string

const (
	EngagementStatusSaved EngagementStatus = "saved"
	EngagementStatusNone  EngagementStatus = "none"
)

// EngagementRecord is the per-(user, recipe) save/favorite state. At most one
// record exists per pair; all writes go through upsert-by-key, never duplicate
// inserts.
type EngagementRecord struct {
	UserID     uuid.UUID
	RecipeID   uuid.UUID
	Status     EngagementStatus
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RatingRecord is the per-(user, recipe) rating. A re-rate replaces the prior
// value (last write wins); the recipe's aggregate fields are recomputed from
// the full set of rating records after every successful upsert.
type RatingRecord struct {
	UserID    uuid.UUID
	RecipeID  uuid.UUID
	Rating    int    // Always within [1, 5]; validated before any remote call.
	Review    string // Optional free-form text.
	CreatedAt time.Time
	UpdatedAt time.Time
}
