package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradelog/trade-journal/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware and fails fast when it is absent: its presence proves the
// middleware ran, and no trade operation is meaningful without an owner.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
