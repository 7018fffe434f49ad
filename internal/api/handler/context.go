package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/inventario-api/internal/api/middleware"
	"github.com/sirpyerre/inventario-api/internal/core/domain"
)

// requireUser extracts the identity injected by the Authenticate middleware
// and fast-fails with 401 before any service call when it is absent. Absence
// means the route was wired without the middleware.
func requireUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
