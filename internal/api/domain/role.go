package domain

import "time"

// Role names form a closed set. Validated at the registration boundary
// against the roles table, never accepted as free-form strings.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// SeedRoleNames are the roles inserted on first startup, in insertion order.
var SeedRoleNames = []string{RoleUser, RoleModerator, RoleAdmin}

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
