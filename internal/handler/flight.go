package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// FlightHandler serves the flight routes nested under a show.
type FlightHandler struct {
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Transports *repository.TransportRepo
}

// NewFlightHandler constructs a FlightHandler and panics if a dependency is nil.
func NewFlightHandler(shows *repository.ShowRepo, flights *repository.FlightRepo, transports *repository.TransportRepo) *FlightHandler {
	if shows == nil || flights == nil || transports == nil {
		panic("nil repository passed to NewFlightHandler")
	}
	return &FlightHandler{Shows: shows, Flights: flights, Transports: transports}
}

func (h *FlightHandler) sources() riskSources {
	return riskSources{Shows: h.Shows, Flights: h.Flights, Transports: h.Transports}
}

// flightBody is the JSON shape accepted by flight create and update.
// Datetimes arrive as RFC 3339 strings.
type flightBody struct {
	OriginAirport      string   `json:"origin_airport"`
	DestinationAirport string   `json:"destination_airport"`
	OptionNumber       *int     `json:"option_number"`
	Airline            *string  `json:"airline"`
	FlightNumber       *string  `json:"flight_number"`
	DepartureDatetime  *string  `json:"departure_datetime"`
	ArrivalDatetime    *string  `json:"arrival_datetime"`
	IsPrimary          *bool    `json:"is_primary"`
	IsBackup           *bool    `json:"is_backup"`
	ConfirmationNumber *string  `json:"confirmation_number"`
	AirlinePhone       *string  `json:"airline_phone"`
	Price              *float64 `json:"price"`
	Status             *string  `json:"status"`
	Notes              *string  `json:"notes"`
}

var bookingStatuses = map[string]bool{
	model.BookingNotBooked: true,
	model.BookingBooked:    true,
	model.BookingConfirmed: true,
	model.BookingCancelled: true,
}

func parseAirport(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) < 3 || len(code) > 4 {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", false
		}
	}
	return code, true
}

func parseDatetime(s *string) (*time.Time, string) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, ""
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*s))
	if err != nil {
		return nil, "invalid datetime " + *s + ", want RFC 3339"
	}
	return &t, ""
}

func (b *flightBody) apply(f *model.Flight) (string, bool) {
	origin, ok := parseAirport(b.OriginAirport)
	if !ok {
		return "invalid origin_airport, want a 3-4 letter code", false
	}
	dest, ok := parseAirport(b.DestinationAirport)
	if !ok {
		return "invalid destination_airport, want a 3-4 letter code", false
	}
	dep, msg := parseDatetime(b.DepartureDatetime)
	if msg != "" {
		return msg, false
	}
	arr, msg := parseDatetime(b.ArrivalDatetime)
	if msg != "" {
		return msg, false
	}
	if dep != nil && arr != nil && !arr.After(*dep) {
		return "arrival_datetime must be after departure_datetime", false
	}
	if b.OptionNumber != nil && (*b.OptionNumber < 1 || *b.OptionNumber > 3) {
		return "option_number must be between 1 and 3", false
	}
	if b.Status != nil && !bookingStatuses[*b.Status] {
		return "invalid status", false
	}

	f.OriginAirport = origin
	f.DestinationAirport = dest
	if b.OptionNumber != nil {
		f.OptionNumber = *b.OptionNumber
	} else if f.OptionNumber == 0 {
		f.OptionNumber = 1
	}
	f.Airline = b.Airline
	f.FlightNumber = b.FlightNumber
	f.DepartureDatetime = dep
	f.ArrivalDatetime = arr
	if b.IsPrimary != nil {
		f.IsPrimary = *b.IsPrimary
	}
	if b.IsBackup != nil {
		f.IsBackup = *b.IsBackup
	}
	f.ConfirmationNumber = b.ConfirmationNumber
	f.AirlinePhone = b.AirlinePhone
	f.Price = b.Price
	if b.Status != nil {
		f.Status = *b.Status
	} else if f.Status == "" {
		f.Status = model.BookingNotBooked
	}
	f.Notes = b.Notes
	return "", true
}

// List handles GET /v1/shows/:showId/flights.
func (h *FlightHandler) List(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	flights, err := h.Flights.ListByShow(ctx, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load flights"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": flights})
}

// Create handles POST /v1/shows/:showId/flights. Setting is_primary on
// the new option clears the flag on its siblings, then the show's risk
// is recalculated.
func (h *FlightHandler) Create(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body flightBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	flight := model.Flight{ShowID: showID}
	if msg, ok := body.apply(&flight); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Flights.Create(ctx, &flight); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create flight"})
	}
	if flight.IsPrimary {
		if err := h.Flights.ClearPrimary(ctx, showID, flight.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not set primary flight"})
		}
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionFlightChanged,
		"Flight added for "+show.City+": "+flight.OriginAirport+" to "+flight.DestinationAirport)
	return c.JSON(http.StatusCreated, flight)
}

// Update handles PUT /v1/shows/:showId/flights/:id.
func (h *FlightHandler) Update(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid flight id"})
	}
	var body flightBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	flight, err := h.Flights.GetByID(ctx, showID, id)
	if err != nil {
		return repoError(c, err, "failed to load flight")
	}
	if msg, ok := body.apply(flight); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Flights.Update(ctx, flight); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update flight")
	}
	if flight.IsPrimary {
		if err := h.Flights.ClearPrimary(ctx, showID, flight.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not set primary flight"})
		}
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionFlightChanged,
		"Flight updated for "+show.City+": "+flight.OriginAirport+" to "+flight.DestinationAirport)
	return c.JSON(http.StatusOK, flight)
}

// Delete handles DELETE /v1/shows/:showId/flights/:id.
func (h *FlightHandler) Delete(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid flight id"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	if err := h.Flights.Delete(ctx, showID, id); err != nil {
		return repoError(c, err, "could not delete flight")
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionFlightChanged, "Flight removed for "+show.City)
	return c.NoContent(http.StatusNoContent)
}
