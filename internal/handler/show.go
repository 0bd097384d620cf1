package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
	"github.com/tourops/tour-logistics/internal/utils"
)

// ShowHandler serves the show routes nested under a tour.
type ShowHandler struct {
	Tours      *repository.TourRepo
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Hotels     *repository.HotelRepo
	Transports *repository.TransportRepo
	Activity   *repository.ActivityRepo
}

// NewShowHandler constructs a ShowHandler and panics if a dependency is nil.
func NewShowHandler(tours *repository.TourRepo, shows *repository.ShowRepo, flights *repository.FlightRepo,
	hotels *repository.HotelRepo, transports *repository.TransportRepo, activity *repository.ActivityRepo) *ShowHandler {
	if tours == nil || shows == nil || flights == nil || hotels == nil || transports == nil || activity == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{
		Tours:      tours,
		Shows:      shows,
		Flights:    flights,
		Hotels:     hotels,
		Transports: transports,
		Activity:   activity,
	}
}

func (h *ShowHandler) sources() riskSources {
	return riskSources{Shows: h.Shows, Flights: h.Flights, Transports: h.Transports}
}

// showLabel names a show in activity descriptions.
func showLabel(s *model.Show) string {
	return s.City + " - " + s.VenueName
}

// showBody is the JSON shape accepted by show create and update. The
// clock fields are HH:MM strings; show_date is YYYY-MM-DD.
type showBody struct {
	City                      string   `json:"city"`
	StateCountry              *string  `json:"state_country"`
	VenueName                 string   `json:"venue_name"`
	VenueAddress              *string  `json:"venue_address"`
	ShowDate                  string   `json:"show_date"`
	OnStageTime               *string  `json:"on_stage_time"`
	SetLengthMinutes          *int     `json:"set_length_minutes"`
	DoorsTime                 *string  `json:"doors_time"`
	CurfewTime                *string  `json:"curfew_time"`
	RequiredOnSiteTime        string   `json:"required_on_site_time"`
	SoundcheckTime            *string  `json:"soundcheck_time"`
	SoundcheckDurationMinutes *int     `json:"soundcheck_duration_minutes"`
	LoadInTime                *string  `json:"load_in_time"`
	VenueContactName          *string  `json:"venue_contact_name"`
	VenueContactEmail         *string  `json:"venue_contact_email"`
	VenueContactPhone         *string  `json:"venue_contact_phone"`
	DayOfContactName          *string  `json:"day_of_contact_name"`
	DayOfContactPhone         *string  `json:"day_of_contact_phone"`
	ProductionContactName     *string  `json:"production_contact_name"`
	ProductionContactPhone    *string  `json:"production_contact_phone"`
	ParkingInstructions       *string  `json:"parking_instructions"`
	CredentialsProcess        *string  `json:"credentials_process"`
	GreenRoomInfo             *string  `json:"green_room_info"`
	CateringInfo              *string  `json:"catering_info"`
	WifiInfo                  *string  `json:"wifi_info"`
	VenueCapacity             *int     `json:"venue_capacity"`
	AgeRestriction            *string  `json:"age_restriction"`
	Guarantee                 *float64 `json:"guarantee"`
	DoorSplit                 *string  `json:"door_split"`
	MerchSplit                *string  `json:"merch_split"`
	SettlementTime            *string  `json:"settlement_time"`
	DepositReceived           *bool    `json:"deposit_received"`
	DepositAmount             *float64 `json:"deposit_amount"`
	OverallStatus             *string  `json:"overall_status"`
	VenueStatus               *string  `json:"venue_status"`
	RiskNotes                 *string  `json:"risk_notes"`
	BackupPlan                *string  `json:"backup_plan"`
	SpecialNotes              *string  `json:"special_notes"`
	PostShowNotes             *string  `json:"post_show_notes"`
}

var overallStatuses = map[string]bool{
	model.OverallNotStarted: true,
	model.OverallInProgress: true,
	model.OverallConfirmed:  true,
	model.OverallCompleted:  true,
}

var venueStatuses = map[string]bool{
	model.VenuePending:     true,
	model.VenueConfirmed:   true,
	model.VenueUnconfirmed: true,
}

func (b *showBody) apply(s *model.Show) (string, bool) {
	city := strings.TrimSpace(b.City)
	venue := strings.TrimSpace(b.VenueName)
	if city == "" || venue == "" {
		return "city and venue_name are required", false
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(b.ShowDate))
	if err != nil {
		return "invalid show_date format, want YYYY-MM-DD", false
	}
	onSite := strings.TrimSpace(b.RequiredOnSiteTime)
	if _, _, err := utils.ParseClock(onSite); err != nil {
		return "invalid required_on_site_time, want HH:MM", false
	}
	for _, clk := range []*string{b.OnStageTime, b.DoorsTime, b.CurfewTime, b.SoundcheckTime, b.LoadInTime} {
		if clk == nil || strings.TrimSpace(*clk) == "" {
			continue
		}
		if _, _, err := utils.ParseClock(*clk); err != nil {
			return "invalid clock value " + *clk + ", want HH:MM", false
		}
	}
	if b.OverallStatus != nil && !overallStatuses[*b.OverallStatus] {
		return "invalid overall_status", false
	}
	if b.VenueStatus != nil && !venueStatuses[*b.VenueStatus] {
		return "invalid venue_status", false
	}

	s.City = city
	s.StateCountry = b.StateCountry
	s.VenueName = venue
	s.VenueAddress = b.VenueAddress
	s.ShowDate = date
	s.OnStageTime = b.OnStageTime
	s.SetLengthMinutes = b.SetLengthMinutes
	s.DoorsTime = b.DoorsTime
	s.CurfewTime = b.CurfewTime
	s.RequiredOnSiteTime = onSite
	s.SoundcheckTime = b.SoundcheckTime
	s.SoundcheckDurationMinutes = b.SoundcheckDurationMinutes
	s.LoadInTime = b.LoadInTime
	s.VenueContactName = b.VenueContactName
	s.VenueContactEmail = b.VenueContactEmail
	s.VenueContactPhone = b.VenueContactPhone
	s.DayOfContactName = b.DayOfContactName
	s.DayOfContactPhone = b.DayOfContactPhone
	s.ProductionContactName = b.ProductionContactName
	s.ProductionContactPhone = b.ProductionContactPhone
	s.ParkingInstructions = b.ParkingInstructions
	s.CredentialsProcess = b.CredentialsProcess
	s.GreenRoomInfo = b.GreenRoomInfo
	s.CateringInfo = b.CateringInfo
	s.WifiInfo = b.WifiInfo
	s.VenueCapacity = b.VenueCapacity
	s.AgeRestriction = b.AgeRestriction
	s.Guarantee = b.Guarantee
	s.DoorSplit = b.DoorSplit
	s.MerchSplit = b.MerchSplit
	s.SettlementTime = b.SettlementTime
	if b.DepositReceived != nil {
		s.DepositReceived = *b.DepositReceived
	}
	s.DepositAmount = b.DepositAmount
	if b.OverallStatus != nil {
		s.OverallStatus = *b.OverallStatus
	}
	if b.VenueStatus != nil {
		s.VenueStatus = *b.VenueStatus
	}
	s.RiskNotes = b.RiskNotes
	s.BackupPlan = b.BackupPlan
	s.SpecialNotes = b.SpecialNotes
	s.PostShowNotes = b.PostShowNotes
	return "", true
}

// List handles GET /v1/tours/:tourId/shows. Each show carries its freshly
// computed risk alongside the stored level.
func (h *ShowHandler) List(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, tourID); err != nil {
		return repoError(c, err, "failed to load tour")
	}
	shows, err := h.Shows.ListByTour(ctx, tourID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load shows"})
	}
	type item struct {
		model.Show
		CalculatedRiskLevel string `json:"calculated_risk_level"`
	}
	items := make([]item, 0, len(shows))
	for i := range shows {
		s := &shows[i]
		flights, err := h.Flights.ListByShow(ctx, s.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load flights"})
		}
		transports, err := h.Transports.ListByShow(ctx, s.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load transport"})
		}
		var first *model.GroundTransport
		if len(transports) > 0 {
			first = &transports[0]
		}
		items = append(items, item{Show: *s, CalculatedRiskLevel: calculatedRisk(s, flights, first)})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Create handles POST /v1/tours/:tourId/shows. The show number is
// assigned from the tour's current count.
func (h *ShowHandler) Create(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	var body showBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, tourID); err != nil {
		return repoError(c, err, "failed to load tour")
	}
	show := model.Show{
		TourID:        tourID,
		OverallStatus: model.OverallNotStarted,
		VenueStatus:   model.VenuePending,
		RiskLevel:     string(riskDefault),
	}
	if msg, ok := body.apply(&show); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	count, err := h.Shows.CountByTour(ctx, tourID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to number show"})
	}
	show.ShowNumber = count + 1
	if err := h.Shows.Create(ctx, &show); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create show"})
	}
	recalcShowRisk(ctx, h.sources(), &show)
	publishActivity(tourID, &show.ID, model.ActionShowCreated,
		"Show created: "+showLabel(&show))
	return c.JSON(http.StatusCreated, show)
}

// Get handles GET /v1/tours/:tourId/shows/:id: the full show, its travel
// records, fresh risk, and its recent activity slice.
func (h *ShowHandler) Get(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, id)
	if err != nil || show.TourID != tourID {
		if err == nil {
			err = repository.ErrShowNotFound
		}
		return repoError(c, err, "failed to load show")
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
	activity, err := h.Activity.ListByShow(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load activity"})
	}
	var first *model.GroundTransport
	if len(transports) > 0 {
		first = &transports[0]
	}
	return c.JSON(http.StatusOK, map[string]any{
		"show":                  show,
		"calculated_risk_level": calculatedRisk(show, flights, first),
		"flights":               flights,
		"hotels":                hotels,
		"ground_transport":      transports,
		"activity":              activity,
	})
}

// Update handles PUT /v1/tours/:tourId/shows/:id. The risk level is
// recalculated and persisted after the write.
func (h *ShowHandler) Update(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body showBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, id)
	if err != nil || show.TourID != tourID {
		if err == nil {
			err = repository.ErrShowNotFound
		}
		return repoError(c, err, "failed to load show")
	}
	if msg, ok := body.apply(show); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Shows.Update(ctx, show); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update show")
	}
	level := recalcShowRisk(ctx, h.sources(), show)
	publishActivity(tourID, &show.ID, model.ActionShowUpdated,
		"Show updated: "+showLabel(show))
	return c.JSON(http.StatusOK, map[string]any{
		"show":                  show,
		"calculated_risk_level": level,
	})
}

// PatchStatus handles PATCH /v1/tours/:tourId/shows/:id/status, the quick
// status flip used from the tour grid.
func (h *ShowHandler) PatchStatus(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body struct {
		OverallStatus *string `json:"overall_status"`
		VenueStatus   *string `json:"venue_status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.OverallStatus == nil && body.VenueStatus == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no status fields provided"})
	}
	if body.OverallStatus != nil && !overallStatuses[*body.OverallStatus] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid overall_status"})
	}
	if body.VenueStatus != nil && !venueStatuses[*body.VenueStatus] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid venue_status"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, id)
	if err != nil || show.TourID != tourID {
		if err == nil {
			err = repository.ErrShowNotFound
		}
		return repoError(c, err, "failed to load show")
	}
	if err := h.Shows.UpdateStatus(ctx, id, body.OverallStatus, body.VenueStatus, nil); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update status")
	}
	if body.OverallStatus != nil {
		show.OverallStatus = *body.OverallStatus
	}
	if body.VenueStatus != nil {
		show.VenueStatus = *body.VenueStatus
	}
	level := recalcShowRisk(ctx, h.sources(), show)
	publishActivity(tourID, &show.ID, model.ActionStatusUpdated,
		"Status updated for "+show.City+": "+show.OverallStatus+" / "+show.VenueStatus)
	return c.JSON(http.StatusOK, map[string]any{
		"show":                  show,
		"calculated_risk_level": level,
	})
}

// Delete handles DELETE /v1/tours/:tourId/shows/:id.
func (h *ShowHandler) Delete(c echo.Context) error {
	tourID, err := pathID(c, "tourId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	show, err := h.Shows.GetByID(ctx, id)
	if err != nil || show.TourID != tourID {
		if err == nil {
			err = repository.ErrShowNotFound
		}
		return repoError(c, err, "failed to load show")
	}
	if err := h.Shows.Delete(ctx, id); err != nil {
		return repoError(c, err, "could not delete show")
	}
	return c.NoContent(http.StatusNoContent)
}
