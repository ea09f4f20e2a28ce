package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawtracks/training-system/internal/api/middleware"
	"github.com/pawtracks/training-system/internal/core/domain"
)

// ctxUser extracts the identity injected by the Auth middleware. Its presence
// proves the middleware ran; a protected route without it is a wiring bug and
// fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "No token set")
	}
	return user, nil
}
