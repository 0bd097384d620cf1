// Package handler defines the HTTP handlers for the tour-logistics API.
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/queue"
	"github.com/tourops/tour-logistics/internal/repository"
	"github.com/tourops/tour-logistics/internal/risk"
	queue_publisher "github.com/tourops/tour-logistics/internal/service"
)

// riskDefault is the level a show starts at before its first evaluation.
const riskDefault = risk.LevelGreen

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// repoError translates repository sentinels into JSON error responses.
// Unknown errors become an opaque 500 with the given message.
func repoError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrTourNotFound),
		errors.Is(err, repository.ErrShowNotFound),
		errors.Is(err, repository.ErrFlightNotFound),
		errors.Is(err, repository.ErrHotelNotFound),
		errors.Is(err, repository.ErrTransportNotFound),
		errors.Is(err, repository.ErrTemplateNotFound),
		errors.Is(err, repository.ErrChecklistNotFound),
		errors.Is(err, repository.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": fallback})
}

// publishActivity fires an activity event without blocking the request.
// Publish failures are logged inside the publisher and otherwise ignored;
// the trail is best-effort by design of the queue path.
func publishActivity(tourID uint64, showID *uint64, action, description string) {
	ev := queue.ActivityEvent{
		TourID:      tourID,
		ShowID:      showID,
		ActionType:  action,
		Description: description,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishActivity(ctx, ev)
	}()
}

// riskSources bundles the repositories every risk recalculation needs.
type riskSources struct {
	Shows      *repository.ShowRepo
	Flights    *repository.FlightRepo
	Transports *repository.TransportRepo
}

// recalcShowRisk reloads a show's flights and first transport, evaluates
// the risk level and persists it when it changed, emitting a RISK_CHANGED
// event. Evaluation errors (bad on-site clock, zero date) are logged and
// leave the stored level untouched.
func recalcShowRisk(ctx context.Context, src riskSources, show *model.Show) string {
	flights, err := src.Flights.ListByShow(ctx, show.ID)
	if err != nil {
		log.Printf("risk: load flights for show %d failed: %v", show.ID, err)
		return show.RiskLevel
	}
	var transport *model.GroundTransport
	transports, err := src.Transports.ListByShow(ctx, show.ID)
	if err != nil {
		log.Printf("risk: load transport for show %d failed: %v", show.ID, err)
		return show.RiskLevel
	}
	if len(transports) > 0 {
		transport = &transports[0]
	}

	level, err := risk.Evaluate(show, flights, transport)
	if err != nil {
		log.Printf("risk: evaluate show %d failed: %v", show.ID, err)
		return show.RiskLevel
	}

	if string(level) != show.RiskLevel {
		if err := src.Shows.UpdateRiskLevel(ctx, show.ID, string(level)); err != nil {
			log.Printf("risk: persist level for show %d failed: %v", show.ID, err)
			return show.RiskLevel
		}
		publishActivity(show.TourID, &show.ID, model.ActionRiskChanged,
			"Risk level changed from "+show.RiskLevel+" to "+string(level)+" for "+show.City)
		show.RiskLevel = string(level)
	}
	return string(level)
}

// calculatedRisk evaluates without persisting, for read endpoints. Falls
// back to the stored level when the show cannot be evaluated.
func calculatedRisk(show *model.Show, flights []model.Flight, transport *model.GroundTransport) string {
	level, err := risk.Evaluate(show, flights, transport)
	if err != nil {
		return show.RiskLevel
	}
	return string(level)
}
