package store

import (
	"context"
	"errors"

	"github.com/atlaspin/atlaspin/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Users() Users
	Roles() Roles
	Favorites() Favorites
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during signin.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// AssignRole links a user to a role. Idempotent per (user, role) pair.
	AssignRole(ctx context.Context, userID, roleID string) error

	// GetUserRoles returns the names of all roles assigned to a user.
	GetUserRoles(ctx context.Context, userID string) ([]string, error)

	// ListAllUserRoles returns role names for every user in a single
	// query, keyed by user id. Users without roles have no entry.
	ListAllUserRoles(ctx context.Context) (map[string][]string, error)

	// ListUsers returns all users ordered by creation (oldest first).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateMFASecret sets the pending TOTP secret for a user.
	UpdateMFASecret(ctx context.Context, userID string, secret string) error

	// EnableMFA marks TOTP as active (sets mfa_enabled timestamp).
	EnableMFA(ctx context.Context, userID string) error

	// DisableMFA clears mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, userID string) error
}

type Roles interface {
	// GetRoleByName fetches a role by its unique name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles in the system.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID).
	CreateRole(ctx context.Context, r domain.Role) error

	// Count returns the number of role rows. Seeding checks this first.
	Count(ctx context.Context) (int64, error)
}

type Favorites interface {
	// ListByUser returns a user's favorites ordered by creation (oldest first).
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)

	// Create inserts a favorite. Returns ErrAlreadyExists when the
	// (user_id, country_code) uniqueness constraint is violated.
	Create(ctx context.Context, f domain.Favorite) error

	// Delete removes the favorite for (userID, countryCode) and reports
	// whether a row was actually deleted.
	Delete(ctx context.Context, userID, countryCode string) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record (token_hash is the SHA-256
	// fingerprint of the opaque cookie token).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns a session by fingerprint if it has not
	// expired yet; ErrNotFound otherwise.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// DeleteSessionByTokenHash removes a session on signout. Deleting a
	// missing session is not an error.
	DeleteSessionByTokenHash(ctx context.Context, hash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}
