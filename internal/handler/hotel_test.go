package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourops/tour-logistics/internal/model"
)

func intp(v int) *int { return &v }

func TestScoreHotelFullMarks(t *testing.T) {
	h := &model.Hotel{
		DistanceToVenueMinutes:   intp(15),
		DistanceToAirportMinutes: intp(25),
		EarlyCheckinAvailable:    true,
		LateCheckoutAvailable:    true,
	}
	score, breakdown := ScoreHotel(h)
	require.Equal(t, HotelScoreMax, score)
	assert.Equal(t, 10, breakdown["closeToVenue"])
	assert.Equal(t, 5, breakdown["closeToAirport"])
	assert.Equal(t, 5, breakdown["earlyCheckin"])
	assert.Equal(t, 5, breakdown["lateCheckout"])
}

func TestScoreHotelVenueDistanceBands(t *testing.T) {
	cases := []struct {
		name    string
		minutes *int
		want    int
	}{
		{"within 20", intp(20), 10},
		{"within 30", intp(30), 5},
		{"beyond 30", intp(31), 0},
		{"unknown", nil, 0},
		{"zero means unknown", intp(0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &model.Hotel{DistanceToVenueMinutes: tc.minutes}
			score, breakdown := ScoreHotel(h)
			assert.Equal(t, tc.want, score)
			assert.Equal(t, tc.want, breakdown["closeToVenue"])
		})
	}
}

func TestScoreHotelAirportCutoff(t *testing.T) {
	near := &model.Hotel{DistanceToAirportMinutes: intp(30)}
	score, _ := ScoreHotel(near)
	assert.Equal(t, 5, score)

	far := &model.Hotel{DistanceToAirportMinutes: intp(45)}
	score, breakdown := ScoreHotel(far)
	assert.Zero(t, score)
	assert.Empty(t, breakdown)
}

func TestScoreHotelNothingBooked(t *testing.T) {
	score, breakdown := ScoreHotel(&model.Hotel{})
	assert.Zero(t, score)
	assert.Empty(t, breakdown)
}
