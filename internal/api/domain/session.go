package domain

import "time"

// Session is a server-side record of a signed-in browser. The opaque token
// travels in an HTTP-only cookie; only its SHA-256 fingerprint is stored.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
