package app

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	return Config{
		Issuer:               "atlaspin-test",
		DatabaseFile:         filepath.Join(dir, "test.db"),
		PepperFile:           filepath.Join(dir, "pepper"),
		SessionTTL:           time.Hour,
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "text",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestRunReleasesResourcesWhenListenFails(t *testing.T) {
	// Occupy a port so ListenAndServe fails immediately.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	cfg := testConfig(t)
	cfg.Port = listener.Addr().(*net.TCPAddr).Port

	application, err := New(cfg)
	require.NoError(t, err)

	err = application.Run()
	require.Error(t, err)
	require.ErrorContains(t, err, "server failed")

	// Run must stop the housekeeping worker and close the store on the
	// error path, not just on the signal path.
	require.Error(t, application.db.Ping(context.Background()),
		"store should be closed after Run returns an error")
}
