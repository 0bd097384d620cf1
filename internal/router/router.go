// Package router defines how HTTP routes are registered for the API.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/handler"
)

// RegisterRoutes registers routes that live outside the /v1 group.
// Currently that is only the health check, which load balancers probe.
func RegisterRoutes(e *echo.Echo, db *sql.DB) {
	e.GET("/healthz", handler.Health(db))
}
