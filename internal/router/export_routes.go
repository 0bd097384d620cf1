package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/handler"
)

// RegisterExportRoutes wires the export assembly routes. cacheMW is the
// Redis response cache; exports join several tables per show, so their
// payloads are worth caching, and they tolerate short staleness.
func RegisterExportRoutes(g *echo.Group, exports *handler.ExportHandler, cacheMW echo.MiddlewareFunc) {
	g.GET("/tours/:id/export/grid", exports.Grid, cacheMW)
	g.GET("/tours/:id/export/contacts", exports.Contacts, cacheMW)
	g.GET("/shows/:id/export/run-of-show", exports.RunOfShow, cacheMW)
}
