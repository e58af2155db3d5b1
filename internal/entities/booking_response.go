package entities

import (
	"time"

	"stagebook/internal/pricing"
)

type QuoteResponse struct {
	Breakdown        pricing.CostBreakdown `json:"breakdown"`
	IsDynamicPricing bool                  `json:"is_dynamic_pricing"`
}

// CheckoutResponse is returned from a booking creation: the booking code
// plus the Stripe redirect the client must follow to pay.
type CheckoutResponse struct {
	Code      string `json:"code"`
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type BookingResponse struct {
	Code       string `json:"code"`
	ArtistID   string `json:"artist_id"`
	ArtistName string `json:"artist_name,omitempty"`
	EventType  string `json:"event_type"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`

	MultiDay            bool               `json:"is_multi_day"`
	EquipmentMultiDay   bool               `json:"is_equipment_multi_day"`
	StartTime           time.Time          `json:"start_time"`
	EndTime             time.Time          `json:"end_time"`
	ArtistEventDates    []pricing.TimeSlot `json:"artist_event_dates,omitempty"`
	EquipmentEventDates []pricing.TimeSlot `json:"equipment_event_dates,omitempty"`

	ArtistFee     int    `json:"artist_fee"`
	EquipmentFee  int    `json:"equipment_fee"`
	TotalAmount   int    `json:"total_amount"`
	TotalHours    int    `json:"total_hours"`
	PricingSource string `json:"pricing_source"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Language      string `json:"language,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingsList struct {
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Bookings []BookingResponse `json:"bookings"`
}

type PackageCatalog struct {
	Packages       []PackageResponse       `json:"packages"`
	CustomPackages []CustomPackageResponse `json:"custom_packages"`
}

type PackageResponse struct {
	ID         string `json:"id"`
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	TotalPrice int    `json:"total_price"`
}

type CustomPackageResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PricePerDay int    `json:"price_per_day"`
}
