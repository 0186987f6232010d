package middleware

import (
	"net/http"

	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
)

// Navigation targets for gate redirects.
const (
	LoginPath        = "/login/user"
	UnauthorizedPath = "/unauthorized"

	sessionContextKey = "session"
)

// SessionGate resolves the caller's session on every request and gates routes
// by the role claimed in the session's token. The gate decision is computed
// fresh on each navigation attempt, never cached: the session can change
// between requests (logout in another tab).
type SessionGate struct {
	Config   *models.Config
	Sessions repository.SessionRepositoryInterface
	Logger   logger.Logger
}

// NewSessionGate creates a new session gate
func NewSessionGate(cfg *models.Config, sessions repository.SessionRepositoryInterface, log logger.Logger) *SessionGate {
	return &SessionGate{
		Config:   cfg,
		Sessions: sessions,
		Logger:   log,
	}
}

// Admit decides what to do with one navigation attempt. No token means the
// caller must log in. A token whose payload cannot be parsed, or that carries
// no group claim, is treated identically to "no role" (RedirectToLogin), not
// as a distinct error state. A parsed role outside the required set is a
// RedirectToUnauthorized.
func Admit(requiredRoles []models.Role, session *models.Session) models.Decision {
	if !session.Authenticated() {
		return models.RedirectToLogin
	}

	role := RoleFromToken(session.Token)
	if role == models.RoleUnknown {
		return models.RedirectToLogin
	}

	for _, required := range requiredRoles {
		if role == required {
			return models.Allow
		}
	}
	return models.RedirectToUnauthorized
}

// ResolveSession loads the session named by the request cookie and attaches
// it to both the gin context and the request context, so resource clients
// can pick up the bearer token downstream. A missing or unknown cookie just
// means no session; the gate decides what that implies per route.
func (g *SessionGate) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(g.Config.SessionCookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		session, err := g.Sessions.Get(c.Request.Context(), cookie)
		if err != nil {
			g.Logger.Errorf("Failed to resolve session %s: %v", cookie, err)
			c.Next()
			return
		}
		if session == nil {
			c.Next()
			return
		}

		c.Set(sessionContextKey, session)
		c.Request = c.Request.WithContext(models.WithSession(c.Request.Context(), session))
		c.Next()
	}
}

// CurrentSession returns the session resolved for this request, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	if v, exists := c.Get(sessionContextKey); exists {
		if session, ok := v.(*models.Session); ok {
			return session
		}
	}
	return nil
}

// RequireRole gates a route group on the claimed role. The decision
// materializes as a JSON response carrying the redirect target: 401 with
// /login/user, or 403 with /unauthorized.
func (g *SessionGate) RequireRole(requiredRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)

		switch Admit(requiredRoles, session) {
		case models.Allow:
			c.Next()

		case models.RedirectToLogin:
			g.Logger.Debugf("Route gate: no usable role for %s, redirecting to login", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Authentication required",
				Error: &models.APIError{
					Type:     "AuthenticationError",
					Details:  "Sign in to continue",
					Redirect: LoginPath,
				},
			})
			c.Abort()

		case models.RedirectToUnauthorized:
			g.Logger.Debugf("Route gate: role mismatch for %s", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, models.APIResponse{
				Status:  "error",
				Code:    http.StatusForbidden,
				Message: "Insufficient permissions",
				Error: &models.APIError{
					Type:     "AuthorizationError",
					Details:  "This page is not available for your account",
					Redirect: UnauthorizedPath,
				},
			})
			c.Abort()
		}
	}
}

// HomePath returns the role-appropriate default page. Unknown paths redirect
// here.
func HomePath(session *models.Session) string {
	if !session.Authenticated() {
		return LoginPath
	}
	switch RoleFromToken(session.Token) {
	case models.RoleAdmin:
		return "/admin/shop"
	case models.RoleUser:
		return "/user/shop"
	default:
		return LoginPath
	}
}
