package pricing

// Contact identifies the person booking. Phone is expected in canonical
// E.164 form; the normalization policy itself lives with the caller.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingPayload is the normalized shape submitted to the booking-creation
// API. Single-day bookings use the legacy date fields; multi-day bookings
// use the slot arrays and leave the legacy fields empty for older consumers.
type BookingPayload struct {
	ArtistID  string `json:"artist_id"`
	EventType string `json:"event_type"`

	EventDate string `json:"event_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	ArtistEventDates    []TimeSlot `json:"artist_event_dates,omitempty"`
	EquipmentEventDates []TimeSlot `json:"equipment_event_dates,omitempty"`

	PackageIDs       []string `json:"package_ids,omitempty"`
	CustomPackageIDs []string `json:"custom_package_ids,omitempty"`

	ArtistFee    int       `json:"artist_fee"`
	EquipmentFee int       `json:"equipment_fee"`
	TotalAmount  int       `json:"total_amount"`
	TotalHours   int       `json:"total_hours"`
	FeeSource    FeeSource `json:"fee_source"`

	Contact Contact `json:"contact"`
}

// BuildSubmissionPayload flattens a request and its breakdown into the
// booking-creation shape. Equipment dates are carried only when equipment
// has its own schedule; otherwise they mirror the artist's dates for
// combined multi-day bookings, and are omitted for single-day ones.
func BuildSubmissionPayload(req BookingRequest, breakdown CostBreakdown, contact Contact) BookingPayload {
	p := BookingPayload{
		ArtistID:     req.ArtistID,
		EventType:    req.EventType,
		ArtistFee:    breakdown.ArtistFee,
		EquipmentFee: breakdown.EquipmentFee,
		TotalAmount:  breakdown.TotalAmount,
		TotalHours:   breakdown.TotalHours,
		FeeSource:    breakdown.FeeSource,
		Contact:      contact,
	}

	if req.Artist.IsMultiDay() {
		p.ArtistEventDates = req.Artist.Slots()
	} else if slot, ok := req.Artist.First(); ok {
		p.EventDate = slot.Date
		p.StartTime = slot.StartTime
		p.EndTime = slot.EndTime
	}

	switch {
	case req.EquipmentMultiDay && len(req.EquipmentSlots) > 0:
		p.EquipmentEventDates = req.EquipmentSlots
	case req.Artist.IsMultiDay():
		p.EquipmentEventDates = req.Artist.Slots()
	}

	for _, pkg := range req.Packages {
		p.PackageIDs = append(p.PackageIDs, pkg.ID)
	}
	for _, pkg := range req.CustomPackages {
		p.CustomPackageIDs = append(p.CustomPackageIDs, pkg.ID)
	}

	return p
}
