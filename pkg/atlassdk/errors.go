package atlassdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error response from the API. Every failure path in
// the server answers with a JSON body of the shape {"message": "..."}, so the
// SDK surfaces that message alongside the HTTP status.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response
	StatusCode int `json:"-"`

	// Message is the human-readable error message from the server
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp APIError
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		errResp.StatusCode = resp.StatusCode
		return &errResp
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
