package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/atlassdk"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"
)

type FavoritesHandler struct {
	FavoritesService *service.FavoritesService
}

// HandleList returns the caller's favorite countries.
//
//	@Summary		List favorite countries
//	@Description	Returns the authenticated user's favorites, oldest first. Empty array when none.
//	@Tags			Favorites
//	@Produce		json
//	@Success		200	{array}		atlassdk.FavoriteEntry	"Favorites"
//	@Failure		401	{object}	httpx.MessageResponse	"Unauthenticated"
//	@Failure		500	{object}	httpx.MessageResponse	"Internal server error"
//	@Router			/api/favorites [get].
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	favorites, err := h.FavoritesService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list favorites", "user_id", userID, "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	entries := make([]atlassdk.FavoriteEntry, len(favorites))
	for i, f := range favorites {
		entries[i] = atlassdk.FavoriteEntry{
			CountryCode: f.CountryCode,
			CountryName: f.CountryName,
			FlagURL:     f.FlagURL,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, entries)
}

// HandleToggle flips the favorited state of a country for the caller.
//
//	@Summary		Toggle a favorite country
//	@Description	Adds the country to the user's favorites if absent, removes it if present. Atomic per (user, country).
//	@Tags			Favorites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		atlassdk.ToggleFavoriteRequest	true	"Country to toggle"
//	@Success		200		{object}	atlassdk.ToggleFavoriteResponse	"added=true when now favorited"
//	@Failure		400		{object}	httpx.MessageResponse			"Missing fields"
//	@Failure		401		{object}	httpx.MessageResponse			"Unauthenticated"
//	@Failure		500		{object}	httpx.MessageResponse			"Internal server error"
//	@Router			/api/favorites/toggle [post].
func (h *FavoritesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	var req atlassdk.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.CountryName = strings.TrimSpace(req.CountryName)
	req.FlagURL = strings.TrimSpace(req.FlagURL)
	if req.CountryCode == "" || req.CountryName == "" || req.FlagURL == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "countryCode, countryName, and flagUrl are required.")
		return
	}

	added, err := h.FavoritesService.Toggle(ctx, userID, req.CountryCode, req.CountryName, req.FlagURL)
	if err != nil {
		log.Error("failed to toggle favorite",
			"user_id", userID,
			"country_code", req.CountryCode,
			"error", err,
		)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, atlassdk.ToggleFavoriteResponse{Added: added})
}
