package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// HotelHandler serves the hotel routes nested under a show.
type HotelHandler struct {
	Shows  *repository.ShowRepo
	Hotels *repository.HotelRepo
}

// NewHotelHandler constructs a HotelHandler and panics if a dependency is nil.
func NewHotelHandler(shows *repository.ShowRepo, hotels *repository.HotelRepo) *HotelHandler {
	if shows == nil || hotels == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Shows: shows, Hotels: hotels}
}

// HotelScoreMax is the ceiling of the convenience score.
const HotelScoreMax = 25

// ScoreHotel rates a hotel's convenience for show day: proximity to the
// venue (within 20 minutes scores double what within 30 does), proximity
// to the airport, and check-in/out flexibility. A missing or zero
// distance earns nothing.
func ScoreHotel(h *model.Hotel) (int, map[string]int) {
	score := 0
	breakdown := map[string]int{}

	if h.DistanceToVenueMinutes != nil && *h.DistanceToVenueMinutes != 0 {
		switch {
		case *h.DistanceToVenueMinutes <= 20:
			score += 10
			breakdown["closeToVenue"] = 10
		case *h.DistanceToVenueMinutes <= 30:
			score += 5
			breakdown["closeToVenue"] = 5
		}
	}
	if h.DistanceToAirportMinutes != nil && *h.DistanceToAirportMinutes != 0 &&
		*h.DistanceToAirportMinutes <= 30 {
		score += 5
		breakdown["closeToAirport"] = 5
	}
	if h.EarlyCheckinAvailable {
		score += 5
		breakdown["earlyCheckin"] = 5
	}
	if h.LateCheckoutAvailable {
		score += 5
		breakdown["lateCheckout"] = 5
	}
	return score, breakdown
}

// hotelBody is the JSON shape accepted by hotel create and update.
type hotelBody struct {
	HotelName                string   `json:"hotel_name"`
	HotelAddress             *string  `json:"hotel_address"`
	HotelPhone               *string  `json:"hotel_phone"`
	ConfirmationNumber       *string  `json:"confirmation_number"`
	CheckInDate              *string  `json:"check_in_date"`
	CheckInTime              *string  `json:"check_in_time"`
	CheckOutDate             *string  `json:"check_out_date"`
	CheckOutTime             *string  `json:"check_out_time"`
	RoomType                 *string  `json:"room_type"`
	DistanceToVenueMinutes   *int     `json:"distance_to_venue_minutes"`
	DistanceToAirportMinutes *int     `json:"distance_to_airport_minutes"`
	PricePerNight            *float64 `json:"price_per_night"`
	EarlyCheckinAvailable    *bool    `json:"early_checkin_available"`
	LateCheckoutAvailable    *bool    `json:"late_checkout_available"`
	Notes                    *string  `json:"notes"`
	Status                   *string  `json:"status"`
}

func parseDate(s *string) (*time.Time, string) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, ""
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, "invalid date " + *s + ", want YYYY-MM-DD"
	}
	return &t, ""
}

func (b *hotelBody) apply(h *model.Hotel) (string, bool) {
	name := strings.TrimSpace(b.HotelName)
	if name == "" {
		return "hotel_name is required", false
	}
	in, msg := parseDate(b.CheckInDate)
	if msg != "" {
		return msg, false
	}
	out, msg := parseDate(b.CheckOutDate)
	if msg != "" {
		return msg, false
	}
	if in != nil && out != nil && out.Before(*in) {
		return "check_out_date must not be before check_in_date", false
	}
	if b.Status != nil && !bookingStatuses[*b.Status] {
		return "invalid status", false
	}

	h.HotelName = name
	h.HotelAddress = b.HotelAddress
	h.HotelPhone = b.HotelPhone
	h.ConfirmationNumber = b.ConfirmationNumber
	h.CheckInDate = in
	h.CheckInTime = b.CheckInTime
	h.CheckOutDate = out
	h.CheckOutTime = b.CheckOutTime
	h.RoomType = b.RoomType
	h.DistanceToVenueMinutes = b.DistanceToVenueMinutes
	h.DistanceToAirportMinutes = b.DistanceToAirportMinutes
	h.PricePerNight = b.PricePerNight
	if b.EarlyCheckinAvailable != nil {
		h.EarlyCheckinAvailable = *b.EarlyCheckinAvailable
	}
	if b.LateCheckoutAvailable != nil {
		h.LateCheckoutAvailable = *b.LateCheckoutAvailable
	}
	h.Notes = b.Notes
	if b.Status != nil {
		h.Status = *b.Status
	} else if h.Status == "" {
		h.Status = model.BookingNotBooked
	}
	return "", true
}

// List handles GET /v1/shows/:showId/hotel.
func (h *HotelHandler) List(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	hotels, err := h.Hotels.ListByShow(ctx, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load hotels"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": hotels})
}

// Create handles POST /v1/shows/:showId/hotel.
func (h *HotelHandler) Create(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body hotelBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	hotel := model.Hotel{ShowID: showID}
	if msg, ok := body.apply(&hotel); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Hotels.Create(ctx, &hotel); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create hotel"})
	}
	return c.JSON(http.StatusCreated, hotel)
}

// Update handles PUT /v1/shows/:showId/hotel/:id.
func (h *HotelHandler) Update(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid hotel id"})
	}
	var body hotelBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	hotel, err := h.Hotels.GetByID(ctx, showID, id)
	if err != nil {
		return repoError(c, err, "failed to load hotel")
	}
	if msg, ok := body.apply(hotel); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Hotels.Update(ctx, hotel); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update hotel")
	}
	return c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /v1/shows/:showId/hotel/:id.
func (h *HotelHandler) Delete(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid hotel id"})
	}
	if err := h.Hotels.Delete(c.Request().Context(), showID, id); err != nil {
		return repoError(c, err, "could not delete hotel")
	}
	return c.NoContent(http.StatusNoContent)
}

// Score handles GET /v1/shows/:showId/hotel/:id/score.
func (h *HotelHandler) Score(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid hotel id"})
	}
	hotel, err := h.Hotels.GetByID(c.Request().Context(), showID, id)
	if err != nil {
		return repoError(c, err, "failed to load hotel")
	}
	score, breakdown := ScoreHotel(hotel)
	return c.JSON(http.StatusOK, map[string]any{
		"score":     score,
		"max_score": HotelScoreMax,
		"breakdown": breakdown,
	})
}
