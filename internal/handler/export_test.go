package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourops/tour-logistics/internal/model"
)

func strp(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func timelineShow() *model.Show {
	return &model.Show{
		City:               "Chicago",
		VenueName:          "Metro",
		ShowDate:           time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		RequiredOnSiteTime: "16:00",
		LoadInTime:         strp("13:00"),
		SoundcheckTime:     strp("16:30"),
		DoorsTime:          strp("19:00"),
		OnStageTime:        strp("21:00"),
		CurfewTime:         strp("23:00"),
	}
}

func TestBuildTimelineOrdering(t *testing.T) {
	show := timelineShow()
	primary := &model.Flight{
		OriginAirport:      "LAX",
		DestinationAirport: "ORD",
		IsPrimary:          true,
		Airline:            strp("United"),
		FlightNumber:       strp("UA 512"),
		ArrivalDatetime:    timePtr(time.Date(2026, 9, 12, 11, 45, 0, 0, time.UTC)),
	}
	transport := &model.GroundTransport{
		DriverName:     strp("Marcus"),
		DriverPhone:    strp("312-555-0114"),
		PickupDatetime: timePtr(time.Date(2026, 9, 12, 12, 15, 0, 0, time.UTC)),
	}
	hotel := &model.Hotel{HotelName: "Hotel Lincoln", CheckInTime: strp("15:00")}

	timeline := BuildTimeline(show, primary, hotel, transport)

	var activities []string
	for _, e := range timeline {
		activities = append(activities, e.Activity)
	}
	require.Equal(t, []string{
		"Flight Arrives",
		"Ground Transport Pickup",
		"Load In",
		"Hotel Check-in Available",
		"REQUIRED ON SITE",
		"Soundcheck",
		"Doors Open",
		"ON STAGE",
		"Curfew",
	}, activities)

	// Clocks must be non-decreasing after the sort.
	for i := 1; i < len(timeline); i++ {
		assert.LessOrEqual(t, timeline[i-1].Time, timeline[i].Time)
	}
}

func TestBuildTimelineMinimalShow(t *testing.T) {
	show := &model.Show{
		City:               "Austin",
		VenueName:          "Mohawk",
		ShowDate:           time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		RequiredOnSiteTime: "17:30",
	}
	timeline := BuildTimeline(show, nil, nil, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, "REQUIRED ON SITE", timeline[0].Activity)
	assert.Equal(t, "17:30", timeline[0].Time)
}

func TestBuildTimelineDefaultsHotelCheckIn(t *testing.T) {
	show := timelineShow()
	hotel := &model.Hotel{HotelName: "The Drake"}
	timeline := BuildTimeline(show, nil, hotel, nil)
	var hotelEntry *TimelineEntry
	for i := range timeline {
		if timeline[i].Activity == "Hotel Check-in Available" {
			hotelEntry = &timeline[i]
		}
	}
	require.NotNil(t, hotelEntry)
	assert.Equal(t, "14:00", hotelEntry.Time)
	assert.Equal(t, "The Drake", hotelEntry.Notes)
}

func TestSortTimelineUnparsableSinks(t *testing.T) {
	entries := []TimelineEntry{
		{Time: "TBD", Activity: "Settlement"},
		{Time: "09:00", Activity: "Lobby Call"},
		{Time: "08:00", Activity: "Breakfast"},
	}
	SortTimeline(entries)
	assert.Equal(t, "Breakfast", entries[0].Activity)
	assert.Equal(t, "Lobby Call", entries[1].Activity)
	assert.Equal(t, "Settlement", entries[2].Activity)
}
