package auth

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

func setUserContext(c echo.Context, userID uuid.UUID, role string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxRole, role)
}

func UserIDFromContext(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ctxUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func RoleFromContext(c echo.Context) string {
	if role, ok := c.Get(ctxRole).(string); ok {
		return role
	}
	return ""
}
