package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/models"
	"github.com/Rky1/sweet_shop/internal/transport"
)

// RequireAdmin must run after RequireLogin.
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if RoleFromContext(c) != models.RoleAdmin {
			return c.JSON(http.StatusForbidden, transport.Envelope{Success: false, Message: "Access denied. Admin privileges required"})
		}
		return next(c)
	}
}
