package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports process liveness and whether the database answers a ping.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := "ok"
		dbStatus := "ok"
		if err := db.PingContext(c.Request().Context()); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status": status,
			"db":     dbStatus,
		})
	}
}
