package api_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for API end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "atlaspin-api-test:latest"

	testPassword = "Password123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building API Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAPIContainer starts the API in a container and returns the base URL.
// Rate limits are loosened so rapid test traffic doesn't trip the strict
// production profiles.
func setupAPIContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"DATABASE_FILE": "/tmp/atlaspin.db",
			"PEPPER_FILE":   "/tmp/pepper",
			"ENV":           "test",
			"LOG_LEVEL":     "info",
			"LOG_FORMAT":    "json",
			// Increase rate limits for E2E tests to prevent test failures
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
			"RATELIMIT_LENIENT_BURST":     "1000",
		},
		WaitingFor: wait.ForHTTP("/api/health").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupAndSignin registers a user and signs the client in.
func signupAndSignin(t *testing.T, client *atlassdk.SDKClient, username string, roles ...string) *atlassdk.UserResponse {
	t.Helper()
	ctx := context.Background()

	created, err := client.Signup(ctx, atlassdk.SignupRequest{
		Username: username,
		Password: testPassword,
		Roles:    roles,
	})
	require.NoError(t, err, "Signup should succeed")

	user, err := client.Signin(ctx, atlassdk.SigninRequest{
		Username: username,
		Password: testPassword,
	})
	require.NoError(t, err, "Signin should succeed")
	require.Equal(t, created.ID, user.ID)

	return user
}

// assertUnauthenticated checks that an error is the API's 401 response
// (a protected route hit without a live session).
func assertUnauthenticated(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *atlassdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, 401, apiErr.StatusCode, context)
}

// assertCredentialsRejected checks that a signin failed with the API's 400
// response. Rejected credentials are a bad request, not a missing session.
func assertCredentialsRejected(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *atlassdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, 400, apiErr.StatusCode, context)
}
