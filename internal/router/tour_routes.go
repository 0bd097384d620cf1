package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/handler"
)

// RegisterTourRoutes wires the tour CRUD, team and activity routes plus
// the show routes nested under a tour.
func RegisterTourRoutes(g *echo.Group, tours *handler.TourHandler, shows *handler.ShowHandler) {
	g.GET("/tours", tours.List)
	g.POST("/tours", tours.Create)
	g.GET("/tours/:id", tours.Get)
	g.PUT("/tours/:id", tours.Update)
	g.DELETE("/tours/:id", tours.Delete)

	g.GET("/tours/:id/team", tours.ListTeam)
	g.POST("/tours/:id/team", tours.AddTeamMember)
	g.PUT("/tours/:id/team/:memberId", tours.UpdateTeamMember)
	g.DELETE("/tours/:id/team/:memberId", tours.DeleteTeamMember)
	g.GET("/tours/:id/activity", tours.ListActivity)

	// Shows are addressed through their tour.
	g.GET("/tours/:tourId/shows", shows.List)
	g.POST("/tours/:tourId/shows", shows.Create)
	g.GET("/tours/:tourId/shows/:id", shows.Get)
	g.PUT("/tours/:tourId/shows/:id", shows.Update)
	g.DELETE("/tours/:tourId/shows/:id", shows.Delete)
	g.PATCH("/tours/:tourId/shows/:id/status", shows.PatchStatus)
}
