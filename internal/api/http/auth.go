package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Env         string
}

// HandleSignup registers a new user.
//
//	@Summary		Register a new user
//	@Description	Creates a user with the given username and password. Roles are optional and must name seeded roles; defaults to "user".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		atlassdk.SignupRequest	true	"Registration details"
//	@Success		201		{object}	atlassdk.UserResponse	"Created user"
//	@Failure		400		{object}	httpx.MessageResponse	"Missing fields, duplicate username, or unknown role"
//	@Failure		500		{object}	httpx.MessageResponse	"Internal server error"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req atlassdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, roles, err := h.AuthService.Register(ctx, req.Username, req.Password, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUser):
			httpx.WriteMessage(w, http.StatusBadRequest, "Username is already taken.")
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteMessage(w, http.StatusBadRequest, "Requested role does not exist.")
		default:
			log.Error("signup failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, atlassdk.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    roles,
	})
}

// HandleSignin authenticates a user and establishes a session cookie.
//
//	@Summary		Sign in
//	@Description	Verifies credentials and sets the HTTP-only session cookie. Accounts with MFA enabled must supply totpCode.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		atlassdk.SigninRequest	true	"Credentials"
//	@Success		200		{object}	atlassdk.UserResponse	"Signed-in user"
//	@Failure		400		{object}	httpx.MessageResponse	"Invalid credentials or missing TOTP code"
//	@Failure		500		{object}	httpx.MessageResponse	"Internal server error"
//	@Router			/api/auth/signin [post].
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req atlassdk.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	token, session, user, roles, err := h.AuthService.Login(
		ctx,
		strings.TrimSpace(req.Username),
		req.Password,
		strings.TrimSpace(req.TOTPCode),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPRequired):
			httpx.WriteMessage(w, http.StatusBadRequest, "TOTP code required.")
		case errors.Is(err, service.ErrInvalidCredentials):
			// Rejected credentials are a malformed request, not a missing
			// session; 401 is reserved for unauthenticated access to
			// protected routes. Same body for unknown users and wrong
			// passwords.
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid credentials.")
		default:
			log.Error("signin failed", "error", err)
			httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	httpx.NoCache(w)
	setSessionCookie(w, h.Env, token, session.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, atlassdk.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    roles,
	})
}

// HandleSignout deletes the session and clears the cookie.
//
//	@Summary		Sign out
//	@Description	Deletes the server-side session and expires the cookie. Succeeds even without a live session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	httpx.MessageResponse	"Signed out"
//	@Failure		500	{object}	httpx.MessageResponse	"Internal server error"
//	@Router			/api/auth/signout [post].
func (h *AuthHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.AuthService.Logout(ctx, token); err != nil {
		log.Error("signout failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	clearSessionCookie(w, h.Env)
	httpx.WriteMessage(w, http.StatusOK, "Signed out.")
}
