package http

import (
	"net/http"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe returns the authenticated user's profile.
//
//	@Summary		Current user profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	atlassdk.UserResponse	"Profile"
//	@Failure		401	{object}	httpx.MessageResponse	"Unauthenticated"
//	@Router			/api/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles := httpx.RolesFromCtx(ctx)
	if roles == nil {
		roles = []string{}
	}

	// SessionAuth already resolved the principal; no second lookup needed.
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, atlassdk.UserResponse{
		ID:       httpx.UserIDFromCtx(ctx),
		Username: httpx.UsernameFromCtx(ctx),
		Roles:    roles,
	})
}

// HandleList returns all users. Admin role required.
//
//	@Summary		List users
//	@Description	Returns every registered user with their roles. Requires the admin role.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	atlassdk.ListUsersResponse	"Users"
//	@Failure		401	{object}	httpx.MessageResponse		"Unauthenticated"
//	@Failure		403	{object}	httpx.MessageResponse		"Missing admin role"
//	@Failure		500	{object}	httpx.MessageResponse		"Internal server error"
//	@Router			/api/admin/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	// One join for everyone's roles instead of a query per user.
	rolesByUser, err := h.UserService.ListAllUserRoles(ctx)
	if err != nil {
		log.Error("failed to load roles", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	resp := atlassdk.ListUsersResponse{Users: make([]atlassdk.UserResponse, len(users))}
	for i, u := range users {
		roles := rolesByUser[u.ID]
		if roles == nil {
			roles = []string{}
		}
		resp.Users[i] = atlassdk.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Roles:    roles,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
