package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/myacars/myacars/internal/handler"
)

// RegisterRoutes wires the protocol endpoint and the health check. The
// smartCARS client calls /smartcars/ with either method depending on the
// action, so both are mapped to the same handler.
func RegisterRoutes(e *echo.Echo, sc *handler.Smartcars) {
	e.GET("/healthz", handler.Health)

	e.GET("/smartcars/", sc.Handle)
	e.POST("/smartcars/", sc.Handle)
}
