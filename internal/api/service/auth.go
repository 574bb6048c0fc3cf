package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/internal/api/store"
	"github.com/atlaspin/atlaspin/pkg/cryptox"
	"github.com/atlaspin/atlaspin/pkg/idx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

// DefaultSessionTTL bounds a session's server-side lifetime; the cookie
// carries the same expiry.
const DefaultSessionTTL = 24 * time.Hour

var (
	// ErrDuplicateUser reports a registration with a taken username.
	ErrDuplicateUser = errors.New("username already taken")

	// ErrInvalidRole reports a registration naming a role outside the seeded set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials covers both unknown-user and wrong-password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTOTPRequired reports a signin missing its TOTP code while MFA is enabled.
	ErrTOTPRequired = errors.New("totp code required")

	// ErrUnauthenticated reports a missing, unknown, or expired session.
	ErrUnauthenticated = errors.New("unauthenticated")
)

type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Register creates a user with the requested roles, defaulting to "user"
// when none are given. The user row and its role links are written in one
// transaction so a failed link never leaves a roleless user behind.
func (s *AuthService) Register(
	ctx context.Context,
	username, password string,
	roleNames []string,
) (domain.User, []string, error) {
	l := slogx.FromContext(ctx)

	if len(roleNames) == 0 {
		roleNames = []string{domain.RoleUser}
	}

	// Resolve role names against the seeded set before touching users.
	roleIDs := make([]string, len(roleNames))
	for i, name := range roleNames {
		role, err := s.Store.Roles().GetRoleByName(ctx, name)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, nil, fmt.Errorf("%w: %s", ErrInvalidRole, name)
			}
			return domain.User{}, nil, err
		}
		roleIDs[i] = role.ID
	}

	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: passHash,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateUser
			}
			return err
		}
		for _, roleID := range roleIDs {
			if err := tx.Users().AssignRole(ctx, user.ID, roleID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.User{}, nil, err
	}

	l.Info("user registered", "user_id", user.ID, "username", username, "roles", roleNames)
	return user, roleNames, nil
}

// Login verifies credentials and, when they match, establishes a session.
// The returned token is the only copy of the session secret; the store keeps
// its fingerprint.
func (s *AuthService) Login(
	ctx context.Context,
	username, password, totpCode string,
) (token string, session domain.Session, user domain.User, roles []string, err error) {
	l := slogx.FromContext(ctx)

	user, err = s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Session{}, domain.User{}, nil, ErrInvalidCredentials
		}
		return "", domain.Session{}, domain.User{}, nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Warn("password verification failed", "username", username)
		return "", domain.Session{}, domain.User{}, nil, ErrInvalidCredentials
	}

	if user.MFAEnabled != nil {
		if totpCode == "" {
			return "", domain.Session{}, domain.User{}, nil, ErrTOTPRequired
		}
		if user.MFASecret == nil || !totp.Validate(totpCode, *user.MFASecret) {
			l.Warn("totp verification failed", "username", username)
			return "", domain.Session{}, domain.User{}, nil, ErrInvalidCredentials
		}
	}

	token, err = cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.Session{}, domain.User{}, nil, err
	}

	session = domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", domain.Session{}, domain.User{}, nil, err
	}

	roles, err = s.Store.Users().GetUserRoles(ctx, user.ID)
	if err != nil {
		return "", domain.Session{}, domain.User{}, nil, err
	}

	l.Info("user signed in", "user_id", user.ID)
	return token, session, user, roles, nil
}

// CurrentUser resolves a session token to its user and role names.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, []string, error) {
	if token == "" {
		return domain.User{}, nil, ErrUnauthenticated
	}

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrUnauthenticated
		}
		return domain.User{}, nil, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrUnauthenticated
		}
		return domain.User{}, nil, err
	}

	roles, err := s.Store.Users().GetUserRoles(ctx, user.ID)
	if err != nil {
		return domain.User{}, nil, err
	}

	return user, roles, nil
}

// Logout deletes the session behind the token. Idempotent: logging out an
// already-dead session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
}
