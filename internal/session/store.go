package session

import (
	"context"
	"time"
)

// Session is the server-side session record. The cookie carries only the
// opaque SessionID; every other attribute lives in the store.
type Session struct {
	SessionID     string    `json:"session_id"`
	Authenticated bool      `json:"authenticated"`
	UserID        string    `json:"user_id"`   // weak reference to users.id
	UserName      string    `json:"user_name"` // non-empty whenever Authenticated
	UserRole      string    `json:"user_role"`
	ExpiresAt     time.Time `json:"expires_at"` // absolute expiry
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
// Get on a missing or evicted session returns (nil, nil), never an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	// Touch extends the session to expiresAt. It is a no-op when the
	// session no longer exists (it may have been evicted in between).
	Touch(ctx context.Context, sessionID string, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID string) error
}
