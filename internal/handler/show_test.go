package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourops/tour-logistics/internal/model"
)

func TestShowBodyApply(t *testing.T) {
	valid := func() showBody {
		return showBody{
			City:               "Chicago",
			VenueName:          "Metro",
			ShowDate:           "2026-06-10",
			RequiredOnSiteTime: "16:00",
		}
	}

	t.Run("valid body populates the show", func(t *testing.T) {
		b := valid()
		b.DoorsTime = strp("19:00")
		b.OverallStatus = strp(model.OverallConfirmed)

		var s model.Show
		msg, ok := b.apply(&s)
		require.True(t, ok, msg)
		assert.Equal(t, "Chicago", s.City)
		assert.Equal(t, "Metro", s.VenueName)
		assert.Equal(t, "16:00", s.RequiredOnSiteTime)
		assert.Equal(t, model.OverallConfirmed, s.OverallStatus)
		assert.Equal(t, 2026, s.ShowDate.Year())
	})

	cases := []struct {
		name   string
		mutate func(*showBody)
	}{
		{"missing city", func(b *showBody) { b.City = "  " }},
		{"missing venue", func(b *showBody) { b.VenueName = "" }},
		{"bad show date", func(b *showBody) { b.ShowDate = "06/10/2026" }},
		{"bad on-site clock", func(b *showBody) { b.RequiredOnSiteTime = "4pm" }},
		{"bad optional clock", func(b *showBody) { b.CurfewTime = strp("25:00") }},
		{"unknown overall status", func(b *showBody) { b.OverallStatus = strp("DONE") }},
		{"unknown venue status", func(b *showBody) { b.VenueStatus = strp("MAYBE") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := valid()
			tc.mutate(&b)
			msg, ok := b.apply(&model.Show{})
			assert.False(t, ok)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestShowLabelIsPlainASCII(t *testing.T) {
	s := &model.Show{City: "Chicago", VenueName: "Metro"}
	label := showLabel(s)
	assert.Equal(t, "Chicago - Metro", label)
	for _, r := range label {
		assert.Less(t, r, rune(128))
	}
}
