package pricing

import (
	"fmt"
	"time"
)

// TimeSlot is one contiguous performance or rental window: a calendar date
// plus start/end clock times. Duration math is integer-hour only; minutes on
// the clock times are ignored.
type TimeSlot struct {
	Date      string `json:"date"`       // "2006-01-02"
	StartTime string `json:"start_time"` // "15:04"
	EndTime   string `json:"end_time"`   // "15:04"
}

// Hours returns EndTime.hour - StartTime.hour, clamped to a minimum of 0.
// An inverted or unparsable window yields 0; it does not error here, the
// caller rejects it through Validate before quoting.
func (s TimeSlot) Hours() int {
	start, err := clockHour(s.StartTime)
	if err != nil {
		return 0
	}
	end, err := clockHour(s.EndTime)
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

// StartHour returns the hour component of StartTime, or -1 if unparsable.
func (s TimeSlot) StartHour() int {
	h, err := clockHour(s.StartTime)
	if err != nil {
		return -1
	}
	return h
}

// Validate checks that the slot parses and that the window is not inverted.
func (s TimeSlot) Validate() error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidWindow, s.Date)
	}
	start, err := clockHour(s.StartTime)
	if err != nil {
		return fmt.Errorf("%w: bad start time %q", ErrInvalidWindow, s.StartTime)
	}
	end, err := clockHour(s.EndTime)
	if err != nil {
		return fmt.Errorf("%w: bad end time %q", ErrInvalidWindow, s.EndTime)
	}
	if end <= start {
		return fmt.Errorf("%w: %s %s-%s", ErrInvalidWindow, s.Date, s.StartTime, s.EndTime)
	}
	return nil
}

// StartsAt returns the slot start as a UTC timestamp.
func (s TimeSlot) StartsAt() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", s.Date+" "+s.StartTime)
}

// EndsAt returns the slot end as a UTC timestamp.
func (s TimeSlot) EndsAt() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", s.Date+" "+s.EndTime)
}

func clockHour(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}
