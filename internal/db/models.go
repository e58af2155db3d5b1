package db

import "time"

type Artist struct {
	ID         string
	Name       string
	Genre      string
	HourlyRate int
	Active     bool
}

// RateTier is one row of an artist's tiered rate table. The pricing oracle
// reads these; nothing else does.
type RateTier struct {
	ArtistID  string
	EventType string
	StartHour int
	EndHour   int
	Rate      int
}

type EquipmentPackage struct {
	ID         string
	ProviderID string
	Name       string
	TotalPrice int
	Active     bool
}

type CustomPackage struct {
	ID          string
	Name        string
	PricePerDay int
	Active      bool
}

type Booking struct {
	ID        int
	Code      string
	ArtistID  string
	EventType string

	UserName  string
	UserEmail string
	UserPhone string

	MultiDay          bool
	EquipmentMultiDay bool

	// StartTime/EndTime span the whole booking: first slot start to last
	// slot end. Per-day slots live in booking_event_dates.
	StartTime time.Time
	EndTime   time.Time

	ArtistFee     int
	EquipmentFee  int
	TotalAmount   int
	TotalHours    int
	PricingSource string

	PaymentMethodID int
	Status          string
	PaymentStatus   string
	Language        string

	StripeSessionID       string
	StripePaymentIntentID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingSlot is one per-day window attached to a booking, for either the
// artist schedule or the equipment schedule.
type BookingSlot struct {
	BookingID int
	Kind      string // "artist" or "equipment"
	Date      string
	StartTime string
	EndTime   string
	Position  int
}

type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
