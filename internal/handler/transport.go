package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// TransportHandler serves the ground transport routes nested under a show.
type TransportHandler struct {
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Transports *repository.TransportRepo
}

// NewTransportHandler constructs a TransportHandler and panics if a dependency is nil.
func NewTransportHandler(shows *repository.ShowRepo, flights *repository.FlightRepo, transports *repository.TransportRepo) *TransportHandler {
	if shows == nil || flights == nil || transports == nil {
		panic("nil repository passed to NewTransportHandler")
	}
	return &TransportHandler{Shows: shows, Flights: flights, Transports: transports}
}

func (h *TransportHandler) sources() riskSources {
	return riskSources{Shows: h.Shows, Flights: h.Flights, Transports: h.Transports}
}

// transportBody is the JSON shape accepted by transport create and update.
type transportBody struct {
	TransportType         *string  `json:"transport_type"`
	DriverName            *string  `json:"driver_name"`
	DriverPhone           *string  `json:"driver_phone"`
	DriverCompany         *string  `json:"driver_company"`
	ConfirmationNumber    *string  `json:"confirmation_number"`
	PickupLocation        *string  `json:"pickup_location"`
	PickupDatetime        *string  `json:"pickup_datetime"`
	VehicleType           *string  `json:"vehicle_type"`
	AirportToVenueMinutes *int     `json:"airport_to_venue_minutes"`
	Price                 *float64 `json:"price"`
	Notes                 *string  `json:"notes"`
	Status                *string  `json:"status"`
}

func (b *transportBody) apply(t *model.GroundTransport) (string, bool) {
	pickup, msg := parseDatetime(b.PickupDatetime)
	if msg != "" {
		return msg, false
	}
	if b.AirportToVenueMinutes != nil && *b.AirportToVenueMinutes < 0 {
		return "airport_to_venue_minutes must not be negative", false
	}
	if b.Status != nil && !bookingStatuses[*b.Status] {
		return "invalid status", false
	}

	t.TransportType = b.TransportType
	t.DriverName = b.DriverName
	t.DriverPhone = b.DriverPhone
	t.DriverCompany = b.DriverCompany
	t.ConfirmationNumber = b.ConfirmationNumber
	t.PickupLocation = b.PickupLocation
	t.PickupDatetime = pickup
	t.VehicleType = b.VehicleType
	t.AirportToVenueMinutes = b.AirportToVenueMinutes
	t.Price = b.Price
	t.Notes = b.Notes
	if b.Status != nil {
		t.Status = *b.Status
	} else if t.Status == "" {
		t.Status = model.BookingNotBooked
	}
	return "", true
}

// List handles GET /v1/shows/:showId/transport.
func (h *TransportHandler) List(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	transports, err := h.Transports.ListByShow(ctx, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load transport"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": transports})
}

// Create handles POST /v1/shows/:showId/transport and recalculates risk,
// since the drive time feeds the arrival buffer.
func (h *TransportHandler) Create(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body transportBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	transport := model.GroundTransport{ShowID: showID}
	if msg, ok := body.apply(&transport); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Transports.Create(ctx, &transport); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create transport"})
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionTransportChanged, "Transport added for "+show.City)
	return c.JSON(http.StatusCreated, transport)
}

// Update handles PUT /v1/shows/:showId/transport/:id.
func (h *TransportHandler) Update(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid transport id"})
	}
	var body transportBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	transport, err := h.Transports.GetByID(ctx, showID, id)
	if err != nil {
		return repoError(c, err, "failed to load transport")
	}
	if msg, ok := body.apply(transport); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Transports.Update(ctx, transport); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update transport")
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionTransportChanged, "Transport updated for "+show.City)
	return c.JSON(http.StatusOK, transport)
}

// Delete handles DELETE /v1/shows/:showId/transport/:id.
func (h *TransportHandler) Delete(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid transport id"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, showID)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	if err := h.Transports.Delete(ctx, showID, id); err != nil {
		return repoError(c, err, "could not delete transport")
	}
	recalcShowRisk(ctx, h.sources(), show)
	publishActivity(show.TourID, &show.ID, model.ActionTransportChanged, "Transport removed for "+show.City)
	return c.NoContent(http.StatusNoContent)
}
