package http

import (
	"net/http"

	"github.com/atlaspin/atlaspin/pkg/httpx"
)

// HealthHandler reports service liveness.
//
//	@Summary		Health check
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	httpx.MessageResponse	"API is running."
//	@Router			/api/health [get].
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "API is running.")
}

// NotFoundHandler answers any unmatched route with a JSON 404 so clients
// never see the text/plain default.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteMessage(w, http.StatusNotFound, "Not Found")
}
