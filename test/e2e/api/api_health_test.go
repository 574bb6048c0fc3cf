package api_test

import (
	"testing"

	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoint verifies the health check works on a fresh deployment.
func TestHealthEndpoint(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := atlassdk.NewSDKClient(baseURL)

	health, err := client.Health(t.Context())
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "API is running.", health.Message)

	t.Logf("Health endpoint is healthy")
}

// TestUnknownRouteReturnsJSON404 verifies unmatched paths get the JSON 404
// body rather than the text/plain default.
func TestUnknownRouteReturnsJSON404(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := atlassdk.NewSDKClient(baseURL)

	resp, err := client.HTTPClient.Get(baseURL + "/api/no-such-route")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, 404, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
