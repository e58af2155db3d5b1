package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagebook/internal/pricing"
)

func TestBookingSpan(t *testing.T) {
	slots := []pricing.TimeSlot{
		{Date: "2026-06-11", StartTime: "18:00", EndTime: "21:00"},
		{Date: "2026-06-10", StartTime: "19:00", EndTime: "23:00"},
		{Date: "2026-06-12", StartTime: "12:00", EndTime: "14:00"},
	}

	start, end, err := bookingSpan(slots)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 6, 10, 19, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 6, 12, 14, 0, 0, 0, time.UTC), end)
}

func TestBookingSpan_EmptySlots(t *testing.T) {
	_, _, err := bookingSpan(nil)
	require.ErrorIs(t, err, pricing.ErrEmptySlotSet)
}

func TestBookingSpan_BadSlot(t *testing.T) {
	_, _, err := bookingSpan([]pricing.TimeSlot{{Date: "whenever", StartTime: "18:00", EndTime: "21:00"}})
	require.Error(t, err)
}

func TestStatusTranslation(t *testing.T) {
	assert.Equal(t, "confirmada", StatusTranslation("confirmed", "es"))
	assert.Equal(t, "cancelada", StatusTranslation("canceled", "es"))
	assert.Equal(t, "confirmed", StatusTranslation("confirmed", "en"))
	// Unknown statuses pass through untranslated.
	assert.Equal(t, "archived", StatusTranslation("archived", "es"))
}
