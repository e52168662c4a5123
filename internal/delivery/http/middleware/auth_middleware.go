package middleware

import (
	"log/slog"
	"strings"

	"github.com/PradyunT/kaizen-task/internal/delivery/http/response"
	"github.com/PradyunT/kaizen-task/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityKey is the context key the authenticated email is stored under.
const identityKey = "authEmail"

// AuthMiddleware is the gate in front of every protected route. It holds no
// per-session state; each request is verified independently against the
// token service.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the identity email on
// the request context. A missing header or wrong scheme is rejected before
// the token service is ever invoked. Bad signature, wrong key id and expiry
// all produce the same response body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// The reason stays server-side; the client sees one outcome.
			m.logger.Debug("Token rejected", "error", err.Error())

			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(identityKey, claims.Email)

		return next(c)
	}
}

// IdentityFromContext returns the authenticated email set by Authenticate.
func IdentityFromContext(c echo.Context) (string, bool) {
	email, ok := c.Get(identityKey).(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
