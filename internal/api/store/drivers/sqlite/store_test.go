package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/internal/api/store"
	"github.com/atlaspin/atlaspin/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createTestUser(t *testing.T, st *Store, username string) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newTestStore(t)

	// golang-migrate records the schema version; a second run is a no-op
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestUsersUniqueUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	createTestUser(t, st, "alice")

	err := st.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "another-hash",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsersNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFavoritesUniquePerUserAndCountry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")
	bob := createTestUser(t, st, "bob")

	favorite := domain.Favorite{
		ID:          idx.New().String(),
		UserID:      alice.ID,
		CountryCode: "FR",
		CountryName: "France",
		FlagURL:     "https://flags.example/fr.svg",
	}
	require.NoError(t, st.Favorites().Create(ctx, favorite))

	// Same pair again violates UNIQUE(user_id, country_code)
	favorite.ID = idx.New().String()
	require.ErrorIs(t, st.Favorites().Create(ctx, favorite), store.ErrAlreadyExists)

	// Same country for a different user is fine
	require.NoError(t, st.Favorites().Create(ctx, domain.Favorite{
		ID:          idx.New().String(),
		UserID:      bob.ID,
		CountryCode: "FR",
		CountryName: "France",
		FlagURL:     "https://flags.example/fr.svg",
	}))
}

func TestFavoritesDeleteReportsPresence(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")

	removed, err := st.Favorites().Delete(ctx, alice.ID, "FR")
	require.NoError(t, err)
	require.False(t, removed, "deleting an absent favorite reports false")

	require.NoError(t, st.Favorites().Create(ctx, domain.Favorite{
		ID:          idx.New().String(),
		UserID:      alice.ID,
		CountryCode: "FR",
		CountryName: "France",
		FlagURL:     "https://flags.example/fr.svg",
	}))

	removed, err = st.Favorites().Delete(ctx, alice.ID, "FR")
	require.NoError(t, err)
	require.True(t, removed)
}

func TestSessionsExpiryEnforcedOnRead(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := createTestUser(t, st, "alice")

	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		UserID:    alice.ID,
		TokenHash: "expired-hash",
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}))

	_, err := st.Sessions().GetSessionByTokenHash(ctx, "expired-hash")
	require.ErrorIs(t, err, store.ErrNotFound, "expired sessions must not resolve")
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	sentinel := store.ErrAlreadyExists // any error will do
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     "alice",
			PasswordHash: "hash",
		}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The insert inside the failed transaction must not be visible
	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.Favorites().Create(ctx, domain.Favorite{
		ID:          idx.New().String(),
		UserID:      "no-such-user",
		CountryCode: "FR",
		CountryName: "France",
		FlagURL:     "https://flags.example/fr.svg",
	})
	require.Error(t, err, "favorites require an existing user")
}
