package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Rky1/sweet_shop/internal/middleware/auth"
	"github.com/Rky1/sweet_shop/internal/transport"
)

type Deps struct {
	AuthHandler      *AuthHTTP
	SweetHandler     *SweetHTTP
	InventoryHandler *InventoryHTTP
	AuthMiddleware   *authmw.Middleware
	StaticDir        string
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	sweets := api.Group("/sweets", d.AuthMiddleware.RequireLogin)
	sweets.GET("", d.SweetHandler.GetSweets)
	sweets.GET("/search", d.SweetHandler.SearchSweets)
	sweets.GET("/fulltext", d.SweetHandler.FulltextSearch)
	sweets.GET("/:id", d.SweetHandler.GetSweet)
	sweets.POST("/:id/purchase", d.InventoryHandler.Purchase)

	admin := sweets.Group("", d.AuthMiddleware.RequireAdmin)
	admin.POST("", d.SweetHandler.CreateSweet)
	admin.PUT("/:id", d.SweetHandler.UpdateSweet)
	admin.DELETE("/:id", d.SweetHandler.DeleteSweet)
	admin.POST("/:id/restock", d.InventoryHandler.Restock)

	if d.StaticDir != "" {
		e.Static("/", d.StaticDir)
	}
}

// errorHandler keeps stray echo errors (bad routes, panics surfaced by
// Recover) in the same envelope the handlers use.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	_ = c.JSON(code, transport.Envelope{Success: false, Message: message})
}
