package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotHours(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlot
		want int
	}{
		{"evening set", slot("2026-06-10", "18:00", "21:00"), 3},
		{"minutes ignored", slot("2026-06-10", "18:30", "21:15"), 3},
		{"inverted window clamps to zero", slot("2026-06-10", "21:00", "18:00"), 0},
		{"zero-length window", slot("2026-06-10", "18:00", "18:00"), 0},
		{"unparsable clock", slot("2026-06-10", "late", "21:00"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Hours())
		})
	}
}

func TestTimeSlotValidate(t *testing.T) {
	require.NoError(t, slot("2026-06-10", "18:00", "21:00").Validate())

	err := slot("2026-06-10", "21:00", "18:00").Validate()
	require.ErrorIs(t, err, ErrInvalidWindow)

	err = slot("not-a-date", "18:00", "21:00").Validate()
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestScheduleHours(t *testing.T) {
	single := SingleDay(slot("2026-06-10", "18:00", "21:00"))
	assert.False(t, single.IsMultiDay())
	assert.Equal(t, 3, single.Hours())

	multi := MultiDay([]TimeSlot{
		slot("2026-06-10", "18:00", "20:00"),
		slot("2026-06-11", "19:00", "23:00"),
	})
	assert.True(t, multi.IsMultiDay())
	assert.Equal(t, 6, multi.Hours())

	assert.Equal(t, 0, MultiDay(nil).Hours())
}

func TestScheduleValidate(t *testing.T) {
	require.ErrorIs(t, MultiDay(nil).Validate(), ErrEmptySlotSet)

	bad := MultiDay([]TimeSlot{
		slot("2026-06-10", "18:00", "20:00"),
		slot("2026-06-11", "22:00", "20:00"),
	})
	require.ErrorIs(t, bad.Validate(), ErrInvalidWindow)
}

func TestTimeSlotTimestamps(t *testing.T) {
	s := slot("2026-06-10", "18:00", "21:00")

	start, err := s.StartsAt()
	require.NoError(t, err)
	end, err := s.EndsAt()
	require.NoError(t, err)

	assert.True(t, end.After(start))
	assert.Equal(t, 18, start.Hour())
	assert.Equal(t, 18, s.StartHour())
}
