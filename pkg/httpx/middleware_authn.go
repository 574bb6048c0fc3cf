package httpx

import (
	"context"
	"net/http"

	"github.com/atlaspin/atlaspin/pkg/slogx"
)

// Principal identifies an authenticated caller after session resolution.
type Principal struct {
	UserID   string
	Username string
	Roles    []string
}

// SessionResolver maps an opaque session token to its Principal.
// Implementations must reject unknown and expired tokens.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (Principal, error)
}

// SessionAuth authenticates requests via the named HTTP-only session cookie.
// Missing, unknown, or expired sessions short-circuit with 401 and no side
// effects. On success the principal is injected into the request context.
func SessionAuth(resolver SessionResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				WriteMessage(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			principal, err := resolver.ResolveSession(ctx, cookie.Value)
			if err != nil {
				log.Warn("session resolution failed", "err", err)
				WriteMessage(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			ctx = contextWithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, CtxKeyUsername, p.Username)
	ctx = context.WithValue(ctx, CtxKeyRoles, p.Roles)
	return ctx
}
