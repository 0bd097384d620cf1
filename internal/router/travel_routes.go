package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/handler"
)

// RegisterTravelRoutes wires the flight, hotel and ground transport
// routes nested under a show.
func RegisterTravelRoutes(g *echo.Group, flights *handler.FlightHandler, hotels *handler.HotelHandler, transports *handler.TransportHandler) {
	g.GET("/shows/:showId/flights", flights.List)
	g.POST("/shows/:showId/flights", flights.Create)
	g.PUT("/shows/:showId/flights/:id", flights.Update)
	g.DELETE("/shows/:showId/flights/:id", flights.Delete)

	g.GET("/shows/:showId/hotel", hotels.List)
	g.POST("/shows/:showId/hotel", hotels.Create)
	g.PUT("/shows/:showId/hotel/:id", hotels.Update)
	g.DELETE("/shows/:showId/hotel/:id", hotels.Delete)
	g.GET("/shows/:showId/hotel/:id/score", hotels.Score)

	g.GET("/shows/:showId/transport", transports.List)
	g.POST("/shows/:showId/transport", transports.Create)
	g.PUT("/shows/:showId/transport/:id", transports.Update)
	g.DELETE("/shows/:showId/transport/:id", transports.Delete)
}
