package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/atlaspin/atlaspin/internal/api/store/drivers/sqlite"
	"github.com/atlaspin/atlaspin/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Password hashing needs a pepper file; point it at a throwaway one.
	pepperPath := filepath.Join(os.TempDir(), "service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a file-backed store so every pooled connection sees the
// same database, unlike :memory: which is per-connection.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// newSeededStore additionally seeds the fixed role set.
func newSeededStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st := newTestStore(t)
	roles := &RolesService{Store: st, Logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, roles.Seed(context.Background()))

	return st
}
