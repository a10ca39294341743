package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/service"
	"github.com/Rky1/sweet_shop/internal/transport"
)

type Middleware struct {
	Tokens *service.TokenService
}

func New(tokens *service.TokenService) *Middleware {
	return &Middleware{Tokens: tokens}
}

// RequireLogin verifies the bearer token and stores the acting identity
// and role in the request context.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return c.JSON(http.StatusUnauthorized, transport.Envelope{Success: false, Message: "Not authorized, no token provided"})
		}

		userID, role, err := m.Tokens.Verify(raw)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, transport.Envelope{Success: false, Message: "Not authorized, token is invalid or expired"})
		}

		setUserContext(c, userID, role)
		return next(c)
	}
}
