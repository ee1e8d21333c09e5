package middleware

import (
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// unauthorized is the body sent when Clerk rejects a token.
var unauthorized = errs.NewUnauthorizedError("Unauthorized", false)

// RequireAuth verifies the Clerk bearer token and stores the session's
// user id and role in the Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				auth.server.Logger.Warn().
					Str("function", "RequireAuth").
					Str("path", r.URL.Path).
					Msg("rejected request without a valid session token")

				writeJSON(w, unauthorized.Status, unauthorized)
			}))))(
		func(c echo.Context) error {
			claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
			if !ok {
				GetLogger(c).Error().
					Str("function", "RequireAuth").
					Msg("could not get session claims from context")

				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			c.Set(UserIDKey, claims.Subject)
			c.Set(UserRoleKey, claims.ActiveOrganizationRole)

			GetLogger(c).Debug().
				Str("function", "RequireAuth").
				Str("user_id", claims.Subject).
				Msg("user authenticated successfully")

			return next(c)
		})
}

// Enabled reports whether mutating routes must be authenticated.
func (auth *AuthMiddleware) Enabled() bool {
	return auth.server.Config.Auth.Enabled
}
