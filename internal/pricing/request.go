package pricing

import "fmt"

// ProviderPackage is a fixed equipment bundle offered by a provider. Its
// price is flat per rental unit.
type ProviderPackage struct {
	ID         string
	TotalPrice int
}

// CustomPackage is a user-assembled equipment bundle priced per rental day.
type CustomPackage struct {
	ID          string
	PricePerDay int
}

// BookingRequest is the immutable unit submitted for pricing. It is built
// once per quote or submission attempt; nothing mutates it afterwards, so
// concurrent aggregations need no coordination.
type BookingRequest struct {
	ArtistID  string
	EventType string

	Artist Schedule

	// EquipmentMultiDay opts equipment into its own day-by-day schedule,
	// independent of the artist flag. When false, equipment is billed as a
	// single rental unit even if the artist performs across several days.
	EquipmentMultiDay bool
	EquipmentSlots    []TimeSlot

	Packages       []ProviderPackage
	CustomPackages []CustomPackage

	// HourlyRate is the artist's static advertised rate, used only as the
	// degraded fallback when the pricing oracle is unavailable.
	HourlyRate int
}

// Validate rejects the request shapes the aggregator itself tolerates but a
// caller must never submit: inverted windows and empty slot sets.
func (r BookingRequest) Validate() error {
	if r.ArtistID == "" {
		return fmt.Errorf("artist id is required")
	}
	if err := r.Artist.Validate(); err != nil {
		return err
	}
	if r.EquipmentMultiDay && len(r.EquipmentSlots) == 0 {
		return ErrEmptySlotSet
	}
	for _, slot := range r.EquipmentSlots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	return nil
}
