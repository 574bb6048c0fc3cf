package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atlaspin/atlaspin/internal/api/service"
	"github.com/atlaspin/atlaspin/pkg/httpx"
	"github.com/atlaspin/atlaspin/pkg/slogx"

	_ "github.com/atlaspin/atlaspin/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// SessionCookieName is the HTTP-only cookie carrying the opaque session token.
const SessionCookieName = "atlaspin_session"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	env          string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	AuthService      *service.AuthService
	UserService      *service.UserService
	RolesService     *service.RolesService
	FavoritesService *service.FavoritesService
	MFAService       *service.MFAService
}

func NewRouter(env, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		env:          env,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(env),
	}

	return r
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Atlaspin API
//	@version		0.1.0
//	@description	REST backend for user authentication, role-based authorization, and per-user favorite countries.
//	@description
//	@description	Authentication uses an opaque session token delivered in an HTTP-only cookie.
//
//	@contact.name	Atlaspin Maintainers
//	@contact.url	https://github.com/atlaspin/atlaspin
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerFavorites()
	r.registerUsers()
	r.registerRoles()
	r.registerMFA()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Anything that matched no registered pattern gets a JSON 404.
	r.Mux.Handle("/", http.HandlerFunc(NotFoundHandler))
}

// sessionAuth builds the authentication chain shared by protected routes.
func (r *Router) sessionAuth() httpx.Middleware {
	return httpx.SessionAuth(&sessionResolver{Auth: r.AuthService}, SessionCookieName)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Env:         r.env,
	}

	// Credential endpoints get strict per-IP limits (brute force prevention).
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/signout",
		httpx.Chain(http.HandlerFunc(h.HandleSignout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerFavorites() {
	h := &FavoritesHandler{FavoritesService: r.FavoritesService}

	r.Mux.Handle("GET /api/favorites",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/favorites/toggle",
		httpx.Chain(http.HandlerFunc(h.HandleToggle),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/admin/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.sessionAuth(),
			httpx.RequireAnyRole("admin"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	r.Mux.Handle("GET /api/roles",
		httpx.Chain(h,
			r.sessionAuth(),
			httpx.RequireAnyRole("admin"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	r.Mux.Handle("POST /api/auth/mfa/enroll",
		httpx.Chain(http.HandlerFunc(h.HandleEnroll),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	// Activation validates codes, so it gets the strict profile to stop
	// TOTP brute forcing.
	r.Mux.Handle("POST /api/auth/mfa/activate",
		httpx.Chain(http.HandlerFunc(h.HandleActivate),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /api/auth/mfa",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			r.sessionAuth(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health",
		httpx.Chain(http.HandlerFunc(HealthHandler),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
