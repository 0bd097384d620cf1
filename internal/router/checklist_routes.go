package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/handler"
)

// RegisterChecklistRoutes wires the checklist template and instance
// routes. Item toggles address the checklist directly rather than
// through its show.
func RegisterChecklistRoutes(g *echo.Group, checklists *handler.ChecklistHandler) {
	g.GET("/checklist-templates", checklists.ListTemplates)
	g.POST("/checklist-templates", checklists.CreateTemplate)
	g.GET("/shows/:showId/checklists", checklists.ListForShow)
	g.POST("/shows/:showId/checklists", checklists.Instantiate)
	g.DELETE("/shows/:showId/checklists/:id", checklists.DeleteInstance)
	g.PATCH("/checklists/:id/items/:itemId", checklists.ToggleItem)
}
