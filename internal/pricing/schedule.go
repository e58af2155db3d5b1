package pricing

// Schedule is the artist's performance schedule: either a single slot or an
// ordered multi-day slot list. The two variants are modeled as one tagged
// value so that a request can never carry both a legacy single-day window
// and a multi-day array at the same time.
type Schedule struct {
	multiDay bool
	slots    []TimeSlot
}

// SingleDay builds a single-slot schedule.
func SingleDay(slot TimeSlot) Schedule {
	return Schedule{slots: []TimeSlot{slot}}
}

// MultiDay builds a multi-day schedule from an ordered slot list. Slots are
// not deduplicated or sorted; the availability check upstream is responsible
// for supplying a non-overlapping set.
func MultiDay(slots []TimeSlot) Schedule {
	return Schedule{multiDay: true, slots: slots}
}

func (s Schedule) IsMultiDay() bool { return s.multiDay }

func (s Schedule) Slots() []TimeSlot { return s.slots }

// Hours is the total performance duration: the sum of every slot's hour
// count. A multi-day schedule with an empty slot list totals 0.
func (s Schedule) Hours() int {
	total := 0
	for _, slot := range s.slots {
		total += slot.Hours()
	}
	return total
}

// First returns the first slot, if any.
func (s Schedule) First() (TimeSlot, bool) {
	if len(s.slots) == 0 {
		return TimeSlot{}, false
	}
	return s.slots[0], true
}

// Validate rejects empty multi-day schedules and any inverted slot window.
func (s Schedule) Validate() error {
	if len(s.slots) == 0 {
		return ErrEmptySlotSet
	}
	for _, slot := range s.slots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	return nil
}
