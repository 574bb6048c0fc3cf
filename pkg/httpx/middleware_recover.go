package httpx

import (
	"fmt"
	"net/http"

	"github.com/atlaspin/atlaspin/pkg/slogx"
)

// Recover converts panics into 500 responses. The panic detail is only
// included in the body when env is "dev"; production callers get a generic
// message and the detail stays in the logs.
func Recover(env string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				log := slogx.FromContext(r.Context())
				log.Error("panic recovered", "panic", rec, "path", r.URL.Path)

				msg := "Internal server error."
				if env == "dev" {
					msg = fmt.Sprintf("Internal server error: %v", rec)
				}
				WriteMessage(w, http.StatusInternalServerError, msg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
