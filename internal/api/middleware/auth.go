package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/inventario-api/internal/api/metrics"
	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
	"github.com/sirpyerre/inventario-api/internal/core/security"
)

// contextUserKey is where Authenticate stores the resolved caller.
const contextUserKey = "currentUser"

// Authenticate resolves the caller's identity from the bearer token and
// injects the current user record into the request context. The token is
// verified statelessly; the user is then re-read from the store, so a role
// change since issuance takes effect on the next request.
func Authenticate(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.AuthenticateToken(c.Request().Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, security.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				case errors.Is(err, security.ErrTokenMalformed):
					metrics.TokenVerificationsTotal.WithLabelValues("malformed").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				case errors.Is(err, domain.ErrUserNotFound):
					metrics.TokenVerificationsTotal.WithLabelValues("user_not_found").Inc()
					return echo.NewHTTPError(http.StatusNotFound, "user not found")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			SetCurrentUser(c, user)
			return next(c)
		}
	}
}

// SetCurrentUser stores the resolved caller on the request context.
func SetCurrentUser(c echo.Context, user *domain.User) {
	c.Set(contextUserKey, user)
}

// CurrentUser returns the user resolved by Authenticate, or nil when the
// middleware did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(contextUserKey).(*domain.User)
	return user
}
