package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Rky1/sweet_shop/internal/transport"
)

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, transport.Envelope{Success: true, Data: data})
}

func respondDataMessage(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, transport.Envelope{Success: true, Data: data, Message: message})
}

func respondList(c echo.Context, code int, data any, count int) error {
	return c.JSON(code, transport.Envelope{Success: true, Data: data, Count: &count})
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, transport.Envelope{Success: true, Message: message})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, transport.Envelope{Success: false, Message: message})
}
