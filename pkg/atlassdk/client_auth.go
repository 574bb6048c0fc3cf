package atlassdk

import (
	"context"
	"net/http"
)

// Signup registers a new user. It does not sign the user in.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// Signin authenticates and stores the session cookie in the client's jar.
// Accounts with MFA enabled must set TOTPCode on the request.
func (c *SDKClient) Signin(ctx context.Context, req SigninRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/signin", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Signout deletes the server-side session. The expired cookie the server
// sends back clears the jar entry. Safe to call without a live session.
func (c *SDKClient) Signout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/signout", nil)
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil, http.StatusOK)
}

// Me returns the profile of the signed-in user.
func (c *SDKClient) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/users/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}
