package handler

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
	"github.com/tourops/tour-logistics/internal/utils"
)

// ExportHandler assembles the JSON payloads behind the export endpoints.
// Rendering those payloads into files happens client-side; these routes
// only do the joins.
type ExportHandler struct {
	Tours      *repository.TourRepo
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Hotels     *repository.HotelRepo
	Transports *repository.TransportRepo
	Team       *repository.TeamRepo
}

// NewExportHandler constructs an ExportHandler and panics if a dependency is nil.
func NewExportHandler(tours *repository.TourRepo, shows *repository.ShowRepo, flights *repository.FlightRepo,
	hotels *repository.HotelRepo, transports *repository.TransportRepo, team *repository.TeamRepo) *ExportHandler {
	if tours == nil || shows == nil || flights == nil || hotels == nil || transports == nil || team == nil {
		panic("nil repository passed to NewExportHandler")
	}
	return &ExportHandler{
		Tours:      tours,
		Shows:      shows,
		Flights:    flights,
		Hotels:     hotels,
		Transports: transports,
		Team:       team,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// TimelineEntry is one row in the run-of-show schedule.
type TimelineEntry struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Notes    string `json:"notes,omitempty"`
}

// SortTimeline orders entries by their HH:MM clock. Entries whose clock
// does not parse sink to the end, keeping their relative order.
func SortTimeline(entries []TimelineEntry) {
	key := func(e TimelineEntry) int {
		h, m, err := utils.ParseClock(e.Time)
		if err != nil {
			return 1 << 20
		}
		return h*60 + m
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return key(entries[i]) < key(entries[j])
	})
}

// Grid handles GET /v1/tours/:id/export/grid: one row per show with the
// booking status of each travel leg, for the tour book spreadsheet.
func (h *ExportHandler) Grid(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	tour, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "failed to load tour")
	}
	shows, err := h.Shows.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}

	type gridRow struct {
		ShowNumber      int    `json:"show_number"`
		City            string `json:"city"`
		StateCountry    string `json:"state_country"`
		Venue           string `json:"venue"`
		Date            string `json:"date"`
		Day             string `json:"day"`
		OnStageTime     string `json:"on_stage_time"`
		RequiredArrival string `json:"required_arrival"`
		Soundcheck      string `json:"soundcheck"`
		VenueContact    string `json:"venue_contact"`
		VenuePhone      string `json:"venue_phone"`
		FlightStatus    string `json:"flight_status"`
		FlightInfo      string `json:"flight_info"`
		HotelStatus     string `json:"hotel_status"`
		HotelName       string `json:"hotel_name"`
		TransportStatus string `json:"transport_status"`
		OverallStatus   string `json:"overall_status"`
		RiskLevel       string `json:"risk_level"`
	}

	rows := make([]gridRow, 0, len(shows))
	for i := range shows {
		s := &shows[i]
		flights, err := h.Flights.ListByShow(ctx, s.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load flights"})
		}
		hotels, err := h.Hotels.ListByShow(ctx, s.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load hotels"})
		}
		transports, err := h.Transports.ListByShow(ctx, s.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load transport"})
		}

		row := gridRow{
			ShowNumber:      s.ShowNumber,
			City:            s.City,
			StateCountry:    strOrEmpty(s.StateCountry),
			Venue:           s.VenueName,
			Date:            s.ShowDate.Format("01/02/2006"),
			Day:             s.ShowDate.Format("Monday"),
			OnStageTime:     strOrEmpty(s.OnStageTime),
			RequiredArrival: s.RequiredOnSiteTime,
			Soundcheck:      strOrEmpty(s.SoundcheckTime),
			VenueContact:    strOrEmpty(s.VenueContactName),
			VenuePhone:      strOrEmpty(s.VenueContactPhone),
			FlightStatus:    "No Flight",
			HotelStatus:     "No Hotel",
			TransportStatus: "No Transport",
			OverallStatus:   s.OverallStatus,
			RiskLevel:       s.RiskLevel,
		}
		for j := range flights {
			if flights[j].IsPrimary {
				row.FlightStatus = flights[j].Status
				row.FlightInfo = strOrEmpty(flights[j].Airline) + " " + strOrEmpty(flights[j].FlightNumber)
				break
			}
		}
		if len(hotels) > 0 {
			row.HotelStatus = hotels[0].Status
			row.HotelName = hotels[0].HotelName
		}
		if len(transports) > 0 {
			row.TransportStatus = transports[0].Status
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"tour_name":   tour.Name,
		"artist_name": tour.ArtistName,
		"date_range":  tour.StartDate.Format("Jan 2") + " - " + tour.EndDate.Format("Jan 2, 2006"),
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"shows":       rows,
	})
}

// RunOfShow handles GET /v1/shows/:id/export/run-of-show: the day sheet
// for one show, with the schedule assembled from every timed field and
// sorted by clock.
func (h *ExportHandler) RunOfShow(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "failed to load show")
	}
	tour, err := h.Tours.GetByID(ctx, show.TourID)
	if err != nil {
		return repoError(c, err, "failed to load tour")
	}
	flights, err := h.Flights.ListByShow(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load flights"})
	}
	hotels, err := h.Hotels.ListByShow(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load hotels"})
	}
	transports, err := h.Transports.ListByShow(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load transport"})
	}

	var primary *model.Flight
	for i := range flights {
		if flights[i].IsPrimary {
			primary = &flights[i]
			break
		}
	}
	var hotel *model.Hotel
	if len(hotels) > 0 {
		hotel = &hotels[0]
	}
	var transport *model.GroundTransport
	if len(transports) > 0 {
		transport = &transports[0]
	}

	timeline := BuildTimeline(show, primary, hotel, transport)

	city := show.City
	if show.StateCountry != nil && *show.StateCountry != "" {
		city += ", " + *show.StateCountry
	}

	var flightOut, transportOut, hotelOut any
	if primary != nil {
		f := map[string]any{
			"airline":       primary.Airline,
			"flight_number": primary.FlightNumber,
			"confirmation":  primary.ConfirmationNumber,
		}
		if primary.DepartureDatetime != nil {
			f["departure"] = utils.FormatClock(*primary.DepartureDatetime)
		}
		if primary.ArrivalDatetime != nil {
			f["arrival"] = utils.FormatClock(*primary.ArrivalDatetime)
		}
		flightOut = f
	}
	if transport != nil {
		transportOut = map[string]any{
			"type":         transport.TransportType,
			"driver":       transport.DriverName,
			"phone":        transport.DriverPhone,
			"company":      transport.DriverCompany,
			"confirmation": transport.ConfirmationNumber,
			"pickup":       transport.PickupLocation,
		}
	}
	if hotel != nil {
		hotelOut = map[string]any{
			"name":         hotel.HotelName,
			"address":      hotel.HotelAddress,
			"phone":        hotel.HotelPhone,
			"confirmation": hotel.ConfirmationNumber,
			"check_in":     hotel.CheckInTime,
			"check_out":    hotel.CheckOutTime,
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"header": map[string]any{
			"tour_name":   tour.Name,
			"artist_name": tour.ArtistName,
			"show_date":   show.ShowDate.Format("Monday, January 2, 2006"),
			"city":        city,
			"venue":       show.VenueName,
			"show_number": show.ShowNumber,
		},
		"venue": map[string]any{
			"name":            show.VenueName,
			"address":         show.VenueAddress,
			"capacity":        show.VenueCapacity,
			"age_restriction": show.AgeRestriction,
			"parking":         show.ParkingInstructions,
			"credentials":     show.CredentialsProcess,
			"green_room":      show.GreenRoomInfo,
			"catering":        show.CateringInfo,
			"wifi":            show.WifiInfo,
		},
		"contacts": map[string]any{
			"venue_contact": map[string]any{
				"name":  show.VenueContactName,
				"phone": show.VenueContactPhone,
				"email": show.VenueContactEmail,
			},
			"day_of_contact": map[string]any{
				"name":  show.DayOfContactName,
				"phone": show.DayOfContactPhone,
			},
			"production_contact": map[string]any{
				"name":  show.ProductionContactName,
				"phone": show.ProductionContactPhone,
			},
			"tour_manager": map[string]any{
				"name":  tour.TourManagerName,
				"phone": tour.TourManagerPhone,
				"email": tour.TourManagerEmail,
			},
		},
		"travel": map[string]any{
			"flight":    flightOut,
			"transport": transportOut,
			"hotel":     hotelOut,
		},
		"timeline": timeline,
		"notes": map[string]any{
			"special": show.SpecialNotes,
			"backup":  show.BackupPlan,
			"risk":    show.RiskNotes,
		},
		"risk_level":   show.RiskLevel,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// BuildTimeline assembles the run-of-show schedule rows from whatever
// timed fields are present, sorted by clock. The required on-site row is
// always emitted.
func BuildTimeline(show *model.Show, primary *model.Flight, hotel *model.Hotel, transport *model.GroundTransport) []TimelineEntry {
	var timeline []TimelineEntry

	if primary != nil && primary.ArrivalDatetime != nil {
		notes := strOrEmpty(primary.Airline) + " " + strOrEmpty(primary.FlightNumber) +
			" at " + primary.DestinationAirport
		timeline = append(timeline, TimelineEntry{
			Time:     utils.FormatClock(*primary.ArrivalDatetime),
			Activity: "Flight Arrives",
			Notes:    notes,
		})
	}
	if transport != nil && transport.PickupDatetime != nil {
		e := TimelineEntry{
			Time:     utils.FormatClock(*transport.PickupDatetime),
			Activity: "Ground Transport Pickup",
		}
		if transport.DriverName != nil {
			e.Notes = "Driver: " + *transport.DriverName + " - " + strOrEmpty(transport.DriverPhone)
		}
		timeline = append(timeline, e)
	}
	if hotel != nil && show.RequiredOnSiteTime != "" {
		checkIn := "14:00"
		if hotel.CheckInTime != nil && *hotel.CheckInTime != "" {
			checkIn = *hotel.CheckInTime
		}
		timeline = append(timeline, TimelineEntry{
			Time:     checkIn,
			Activity: "Hotel Check-in Available",
			Notes:    hotel.HotelName,
		})
	}
	if show.LoadInTime != nil && *show.LoadInTime != "" {
		timeline = append(timeline, TimelineEntry{Time: *show.LoadInTime, Activity: "Load In"})
	}
	if show.SoundcheckTime != nil && *show.SoundcheckTime != "" {
		e := TimelineEntry{Time: *show.SoundcheckTime, Activity: "Soundcheck"}
		if show.SoundcheckDurationMinutes != nil {
			e.Notes = strconv.Itoa(*show.SoundcheckDurationMinutes) + " minutes"
		}
		timeline = append(timeline, e)
	}
	timeline = append(timeline, TimelineEntry{
		Time:     show.RequiredOnSiteTime,
		Activity: "REQUIRED ON SITE",
		Notes:    "Artist must be at venue",
	})
	if show.DoorsTime != nil && *show.DoorsTime != "" {
		timeline = append(timeline, TimelineEntry{Time: *show.DoorsTime, Activity: "Doors Open"})
	}
	if show.OnStageTime != nil && *show.OnStageTime != "" {
		e := TimelineEntry{Time: *show.OnStageTime, Activity: "ON STAGE"}
		if show.SetLengthMinutes != nil {
			e.Notes = strconv.Itoa(*show.SetLengthMinutes) + " minute set"
		}
		timeline = append(timeline, e)
	}
	if show.CurfewTime != nil && *show.CurfewTime != "" {
		timeline = append(timeline, TimelineEntry{Time: *show.CurfewTime, Activity: "Curfew"})
	}

	SortTimeline(timeline)
	return timeline
}

// Contacts handles GET /v1/tours/:id/export/contacts: the tour's contact
// sheet, combining tour-level contacts, the team and per-venue contacts.
func (h *ExportHandler) Contacts(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	tour, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "failed to load tour")
	}
	team, err := h.Team.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load team"})
	}
	shows, err := h.Shows.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}

	teamOut := make([]map[string]any, 0, len(team))
	for _, m := range team {
		teamOut = append(teamOut, map[string]any{
			"name":              m.Name,
			"role":              m.Role,
			"phone":             m.Phone,
			"email":             m.Email,
			"emergency_contact": m.EmergencyContactName,
			"emergency_phone":   m.EmergencyContactPhone,
		})
	}
	venueOut := make([]map[string]any, 0, len(shows))
	for i := range shows {
		s := &shows[i]
		venueOut = append(venueOut, map[string]any{
			"city":             s.City,
			"venue":            s.VenueName,
			"date":             s.ShowDate.Format("01/02/2006"),
			"venue_contact":    s.VenueContactName,
			"venue_phone":      s.VenueContactPhone,
			"venue_email":      s.VenueContactEmail,
			"day_of_contact":   s.DayOfContactName,
			"day_of_phone":     s.DayOfContactPhone,
			"production":       s.ProductionContactName,
			"production_phone": s.ProductionContactPhone,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"tour_contacts": map[string]any{
			"tour_manager": map[string]any{
				"name":  tour.TourManagerName,
				"phone": tour.TourManagerPhone,
				"email": tour.TourManagerEmail,
			},
			"production": map[string]any{
				"name":  tour.ProductionContactName,
				"phone": tour.ProductionContactPhone,
			},
			"agent": map[string]any{
				"name":  tour.AgentName,
				"phone": tour.AgentPhone,
			},
			"management": map[string]any{
				"name":  tour.ManagementName,
				"phone": tour.ManagementPhone,
			},
		},
		"team_members":   teamOut,
		"venue_contacts": venueOut,
	})
}
