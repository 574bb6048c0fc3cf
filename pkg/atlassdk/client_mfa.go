package atlassdk

import (
	"context"
	"net/http"
)

// EnrollMFA starts MFA enrollment for the signed-in user and returns the
// pending TOTP secret. MFA stays inactive until ActivateMFA succeeds.
func (c *SDKClient) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/mfa/enroll", nil)
	if err != nil {
		return nil, err
	}

	var enrollment MFAEnrollResponse
	if err := decodeJSON(resp, &enrollment, http.StatusOK); err != nil {
		return nil, err
	}

	return &enrollment, nil
}

// ActivateMFA proves possession of the enrolled secret with a TOTP code.
func (c *SDKClient) ActivateMFA(ctx context.Context, code string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/mfa/activate", MFAActivateRequest{Code: code})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil, http.StatusOK)
}

// DisableMFA turns MFA off for the signed-in user.
func (c *SDKClient) DisableMFA(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/auth/mfa", nil)
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil, http.StatusOK)
}
