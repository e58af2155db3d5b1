package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubmissionPayload_SingleDay(t *testing.T) {
	req := BookingRequest{
		ArtistID:  "a1",
		EventType: "private",
		Artist:    SingleDay(slot("2026-06-10", "18:00", "21:00")),
		Packages:  []ProviderPackage{{ID: "pa-1", TotalPrice: 100}},
	}
	breakdown := CostBreakdown{ArtistFee: 300, EquipmentFee: 100, TotalAmount: 400, TotalHours: 3, FeeSource: FeeSourceQuoted}
	contact := Contact{Name: "Dana", Email: "dana@example.com", Phone: "+14155550100"}

	p := BuildSubmissionPayload(req, breakdown, contact)

	assert.Equal(t, "2026-06-10", p.EventDate)
	assert.Equal(t, "18:00", p.StartTime)
	assert.Equal(t, "21:00", p.EndTime)
	assert.Empty(t, p.ArtistEventDates)
	// Single-day artist with no independent equipment schedule: no
	// equipment dates at all.
	assert.Empty(t, p.EquipmentEventDates)
	assert.Equal(t, []string{"pa-1"}, p.PackageIDs)
	assert.Equal(t, 400, p.TotalAmount)
	assert.Equal(t, contact, p.Contact)
}

func TestBuildSubmissionPayload_MultiDayMirrorsEquipmentDates(t *testing.T) {
	slots := []TimeSlot{
		slot("2026-06-10", "18:00", "21:00"),
		slot("2026-06-11", "18:00", "21:00"),
	}
	req := BookingRequest{
		ArtistID: "a1",
		Artist:   MultiDay(slots),
	}
	p := BuildSubmissionPayload(req, CostBreakdown{}, Contact{})

	assert.Equal(t, slots, p.ArtistEventDates)
	// Legacy single-day fields stay empty for older consumers.
	assert.Empty(t, p.EventDate)
	assert.Empty(t, p.StartTime)
	assert.Empty(t, p.EndTime)
	// Combined single-schedule booking: equipment mirrors the artist dates.
	assert.Equal(t, slots, p.EquipmentEventDates)
}

func TestBuildSubmissionPayload_IndependentEquipmentSchedule(t *testing.T) {
	artistSlots := []TimeSlot{slot("2026-06-10", "18:00", "21:00")}
	equipmentSlots := []TimeSlot{
		slot("2026-06-09", "08:00", "20:00"),
		slot("2026-06-10", "08:00", "20:00"),
	}
	req := BookingRequest{
		ArtistID:          "a1",
		Artist:            MultiDay(artistSlots),
		EquipmentMultiDay: true,
		EquipmentSlots:    equipmentSlots,
		CustomPackages:    []CustomPackage{{ID: "cp-9", PricePerDay: 10}},
	}
	p := BuildSubmissionPayload(req, CostBreakdown{}, Contact{})

	assert.Equal(t, equipmentSlots, p.EquipmentEventDates)
	assert.Equal(t, []string{"cp-9"}, p.CustomPackageIDs)
}
