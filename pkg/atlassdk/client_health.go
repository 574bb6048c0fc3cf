package atlassdk

import (
	"context"
	"net/http"
)

// HealthResponse is the health check body.
type HealthResponse struct {
	Message string `json:"message"`
}

// Health checks if the service is alive.
func (c *SDKClient) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
