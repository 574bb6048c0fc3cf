package domain

import "time"

// Favorite marks a country as favorited by a user. A row exists for a
// (user, country code) pair iff the country is currently favorited; Toggle is
// the sole mutator. Uniqueness is scoped per user, never global.
type Favorite struct {
	ID          string
	UserID      string
	CountryCode string
	CountryName string
	FlagURL     string
	CreatedAt   time.Time
}
