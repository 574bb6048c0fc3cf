package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/domain"
	"github.com/atlaspin/atlaspin/pkg/cryptox"
	"github.com/atlaspin/atlaspin/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	auth := &AuthService{Store: st}

	userID := registerTestUser(t, auth, "alice")

	liveToken := cryptox.MustGenerateToken(cryptox.TokenSize256)
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(liveToken),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}))

	expiredHash := cryptox.FingerprintToken(cryptox.MustGenerateToken(cryptox.TokenSize256))
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: expiredHash,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}))

	// Start sweeps immediately, then on every tick; Stop waits for the worker.
	svc := NewHousekeepingService(st, slog.New(slog.DiscardHandler), time.Hour)
	svc.Start()
	svc.Stop()

	_, err := st.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(liveToken))
	require.NoError(t, err, "live session must survive the sweep")

	// token_hash is UNIQUE, so a successful re-insert proves the expired row
	// was deleted rather than merely filtered on read.
	err = st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		UserID:    userID,
		TokenHash: expiredHash,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	require.NoError(t, err, "expired session row should have been deleted")
}
