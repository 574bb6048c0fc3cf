package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string     // argon2 encoded
	MFAEnabled   *time.Time // Timestamp when TOTP was activated (nullable)
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
