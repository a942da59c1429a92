package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionPhase is the authentication half of the session/connectivity state
// machine.
type SessionPhase string

const (
	SessionAnonymous      SessionPhase = "anonymous"
	SessionAuthenticating SessionPhase = "authenticating"
	SessionAuthenticated  SessionPhase = "authenticated"
)

// SessionState is an observable snapshot of the session machine. User is
// non-nil only in the authenticated phase.
type SessionState struct {
	Phase SessionPhase
	User  *User
}

// ConnectivityPhase is the reachability half of the state machine.
type ConnectivityPhase string

const (
	ConnectivityUninitialized ConnectivityPhase = "uninitialized"
	ConnectivityChecking      ConnectivityPhase = "checking"
	ConnectivityReady         ConnectivityPhase = "ready"
	ConnectivityError         ConnectivityPhase = "error"
)

// ConnectivityState is an observable snapshot of the connectivity machine.
// A failed check lands in ready(connected=false) with the error message
// retained for display; it is terminal per attempt, not a crash.
type ConnectivityState struct {
	Phase     ConnectivityPhase
	Connected bool
	Err       string
}

// SessionEvent is delivered to connectivity observers when the session
// machine crosses an authentication boundary.
type SessionEvent string

const (
	SessionEventSignedIn  SessionEvent = "SIGNED_IN"
	SessionEventSignedOut SessionEvent = "SIGNED_OUT"
)

// RefreshToken is a persisted session credential. Only its SHA-256 hash is
// stored at rest.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
