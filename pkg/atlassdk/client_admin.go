package atlassdk

import (
	"context"
	"net/http"
)

// ListUsers returns every registered user with their roles.
// Requires the admin role.
func (c *SDKClient) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var users ListUsersResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return &users, nil
}

// ListRoles returns all roles known to the system. Requires the admin role.
func (c *SDKClient) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/roles", nil)
	if err != nil {
		return nil, err
	}

	var roles ListRolesResponse
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}

	return &roles, nil
}
