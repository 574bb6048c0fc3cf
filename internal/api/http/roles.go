package http

import (
	"net/http"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP returns all roles known to the system. Admin role required.
//
//	@Summary		List roles
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	atlassdk.ListRolesResponse	"Roles"
//	@Failure		401	{object}	httpx.MessageResponse		"Unauthenticated"
//	@Failure		403	{object}	httpx.MessageResponse		"Missing admin role"
//	@Failure		500	{object}	httpx.MessageResponse		"Internal server error"
//	@Router			/api/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list roles", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	resp := atlassdk.ListRolesResponse{Roles: make([]atlassdk.RoleInfo, len(roles))}
	for i, role := range roles {
		resp.Roles[i] = atlassdk.RoleInfo{
			ID:   role.ID,
			Name: role.Name,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
