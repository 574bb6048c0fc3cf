package http

import (
	"context"
	"net/http"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/httpx"
)

// sessionResolver adapts AuthService to the httpx.SessionResolver interface
// used by the authentication middleware.
type sessionResolver struct {
	Auth *service.AuthService
}

func (sr *sessionResolver) ResolveSession(ctx context.Context, token string) (httpx.Principal, error) {
	user, roles, err := sr.Auth.CurrentUser(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    roles,
	}, nil
}

// setSessionCookie writes the session cookie. Cross-site frontends need
// SameSite=None which in turn requires Secure, so that pairing is used in
// prod; everywhere else Strict keeps local development simple.
func setSessionCookie(w http.ResponseWriter, env, token string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	}
	if env == "prod" {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter, env string) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	if env == "prod" {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	http.SetCookie(w, cookie)
}
