package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// TourHandler bundles the repositories behind the /v1/tours routes.
type TourHandler struct {
	Tours      *repository.TourRepo
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Hotels     *repository.HotelRepo
	Transports *repository.TransportRepo
	Team       *repository.TeamRepo
	Activity   *repository.ActivityRepo
}

// NewTourHandler constructs a TourHandler and panics if a dependency is nil.
func NewTourHandler(tours *repository.TourRepo, shows *repository.ShowRepo, flights *repository.FlightRepo,
	hotels *repository.HotelRepo, transports *repository.TransportRepo,
	team *repository.TeamRepo, activity *repository.ActivityRepo) *TourHandler {
	if tours == nil || shows == nil || flights == nil || hotels == nil ||
		transports == nil || team == nil || activity == nil {
		panic("nil repository passed to NewTourHandler")
	}
	return &TourHandler{
		Tours:      tours,
		Shows:      shows,
		Flights:    flights,
		Hotels:     hotels,
		Transports: transports,
		Team:       team,
		Activity:   activity,
	}
}

// tourSummary is the list-view projection: the tour plus counts the
// dashboard renders without loading every show.
type tourSummary struct {
	model.Tour
	ShowCount    int            `json:"show_count"`
	StatusCounts map[string]int `json:"status_counts"`
	RiskCounts   map[string]int `json:"risk_counts"`
}

// List handles GET /v1/tours.
func (h *TourHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	tours, err := h.Tours.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load tours"})
	}
	items := make([]tourSummary, 0, len(tours))
	for _, t := range tours {
		summaries, err := h.Shows.StatusSummaries(ctx, t.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load show summaries"})
		}
		s := tourSummary{
			Tour:         t,
			ShowCount:    len(summaries),
			StatusCounts: map[string]int{},
			RiskCounts:   map[string]int{},
		}
		for _, sum := range summaries {
			s.StatusCounts[sum.OverallStatus]++
			s.RiskCounts[sum.RiskLevel]++
		}
		items = append(items, s)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// tourBody is the JSON shape accepted by create and update. Dates arrive
// as YYYY-MM-DD strings.
type tourBody struct {
	Name                   string   `json:"name"`
	ArtistName             string   `json:"artist_name"`
	StartDate              string   `json:"start_date"`
	EndDate                string   `json:"end_date"`
	TourManagerName        *string  `json:"tour_manager_name"`
	TourManagerPhone       *string  `json:"tour_manager_phone"`
	TourManagerEmail       *string  `json:"tour_manager_email"`
	ProductionContactName  *string  `json:"production_contact_name"`
	ProductionContactPhone *string  `json:"production_contact_phone"`
	AgentName              *string  `json:"agent_name"`
	AgentPhone             *string  `json:"agent_phone"`
	ManagementName         *string  `json:"management_name"`
	ManagementPhone        *string  `json:"management_phone"`
	Notes                  *string  `json:"notes"`
}

func (b *tourBody) apply(t *model.Tour) (string, bool) {
	name := strings.TrimSpace(b.Name)
	artist := strings.TrimSpace(b.ArtistName)
	if name == "" || artist == "" {
		return "name and artist_name are required", false
	}
	start, err := time.Parse("2006-01-02", strings.TrimSpace(b.StartDate))
	if err != nil {
		return "invalid start_date format, want YYYY-MM-DD", false
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(b.EndDate))
	if err != nil {
		return "invalid end_date format, want YYYY-MM-DD", false
	}
	if end.Before(start) {
		return "end_date must not be before start_date", false
	}
	t.Name = name
	t.ArtistName = artist
	t.StartDate = start
	t.EndDate = end
	t.TourManagerName = b.TourManagerName
	t.TourManagerPhone = b.TourManagerPhone
	t.TourManagerEmail = b.TourManagerEmail
	t.ProductionContactName = b.ProductionContactName
	t.ProductionContactPhone = b.ProductionContactPhone
	t.AgentName = b.AgentName
	t.AgentPhone = b.AgentPhone
	t.ManagementName = b.ManagementName
	t.ManagementPhone = b.ManagementPhone
	t.Notes = b.Notes
	return "", true
}

// Create handles POST /v1/tours.
func (h *TourHandler) Create(c echo.Context) error {
	var body tourBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	var tour model.Tour
	if msg, ok := body.apply(&tour); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Tours.Create(c.Request().Context(), &tour); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create tour"})
	}
	publishActivity(tour.ID, nil, model.ActionTourCreated, "Tour created: "+tour.Name)
	return c.JSON(http.StatusCreated, tour)
}

// showWithTravel nests a show's travel records for the tour detail view.
type showWithTravel struct {
	model.Show
	CalculatedRiskLevel string                  `json:"calculated_risk_level"`
	Flights             []model.Flight          `json:"flights"`
	Hotels              []model.Hotel           `json:"hotels"`
	Transport           []model.GroundTransport `json:"ground_transport"`
}

// Get handles GET /v1/tours/:id. The response carries every show with its
// travel records plus the team, which is what the tour page renders.
func (h *TourHandler) Get(c echo.Context) error {
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
	detailed := make([]showWithTravel, 0, len(shows))
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
		var first *model.GroundTransport
		if len(transports) > 0 {
			first = &transports[0]
		}
		detailed = append(detailed, showWithTravel{
			Show:                *s,
			CalculatedRiskLevel: calculatedRisk(s, flights, first),
			Flights:             flights,
			Hotels:              hotels,
			Transport:           transports,
		})
	}
	team, err := h.Team.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load team"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"tour":  tour,
		"shows": detailed,
		"team":  team,
	})
}

// Update handles PUT /v1/tours/:id.
func (h *TourHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	var body tourBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	ctx := c.Request().Context()
	tour, err := h.Tours.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "failed to load tour")
	}
	if msg, ok := body.apply(tour); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	if err := h.Tours.Update(ctx, tour); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update tour")
	}
	publishActivity(tour.ID, nil, model.ActionTourUpdated, "Tour updated: "+tour.Name)
	return c.JSON(http.StatusOK, tour)
}

// Delete handles DELETE /v1/tours/:id. The repository cascades over the
// tour's shows and their travel records.
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	if err := h.Tours.Delete(c.Request().Context(), id); err != nil {
		return repoError(c, err, "could not delete tour")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListTeam handles GET /v1/tours/:id/team.
func (h *TourHandler) ListTeam(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, id); err != nil {
		return repoError(c, err, "failed to load tour")
	}
	team, err := h.Team.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load team"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": team})
}

// AddTeamMember handles POST /v1/tours/:id/team.
func (h *TourHandler) AddTeamMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	var body struct {
		Name                  string  `json:"name"`
		Role                  *string `json:"role"`
		Email                 *string `json:"email"`
		Phone                 *string `json:"phone"`
		EmergencyContactName  *string `json:"emergency_contact_name"`
		EmergencyContactPhone *string `json:"emergency_contact_phone"`
		Notes                 *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, id); err != nil {
		return repoError(c, err, "failed to load tour")
	}
	member := model.TeamMember{
		TourID:                id,
		Name:                  strings.TrimSpace(body.Name),
		Role:                  body.Role,
		Email:                 body.Email,
		Phone:                 body.Phone,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
		Notes:                 body.Notes,
	}
	if err := h.Team.Create(ctx, &member); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not add team member"})
	}
	return c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /v1/tours/:id/team/:memberId.
func (h *TourHandler) UpdateTeamMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	memberID, err := pathID(c, "memberId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid member id"})
	}
	var body struct {
		Name                  string  `json:"name"`
		Role                  *string `json:"role"`
		Email                 *string `json:"email"`
		Phone                 *string `json:"phone"`
		EmergencyContactName  *string `json:"emergency_contact_name"`
		EmergencyContactPhone *string `json:"emergency_contact_phone"`
		Notes                 *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	member := model.TeamMember{
		ID:                    memberID,
		TourID:                id,
		Name:                  strings.TrimSpace(body.Name),
		Role:                  body.Role,
		Email:                 body.Email,
		Phone:                 body.Phone,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
		Notes:                 body.Notes,
	}
	if err := h.Team.Update(c.Request().Context(), &member); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update team member")
	}
	return c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /v1/tours/:id/team/:memberId.
func (h *TourHandler) DeleteTeamMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	memberID, err := pathID(c, "memberId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid member id"})
	}
	if err := h.Team.Delete(c.Request().Context(), id, memberID); err != nil {
		return repoError(c, err, "could not delete team member")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListActivity handles GET /v1/tours/:id/activity (latest 50 entries).
func (h *TourHandler) ListActivity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tour id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Tours.GetByID(ctx, id); err != nil {
		return repoError(c, err, "failed to load tour")
	}
	entries, err := h.Activity.ListByTour(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load activity"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": entries})
}
