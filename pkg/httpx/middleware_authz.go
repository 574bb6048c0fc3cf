package httpx

import "net/http"

// RequireAnyRole the caller must hold at least one of the provided roles.
// Must run after SessionAuth so the roles are present in context.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, role := range RolesFromCtx(r.Context()) {
				if _, ok := want[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteMessage(w, http.StatusForbidden, "Requires elevated role.")
		})
	}
}
