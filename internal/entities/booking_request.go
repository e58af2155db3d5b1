package entities

import "stagebook/internal/pricing"

// CreateBookingRequest is the wire shape of a booking submission. The
// single-day fields and the multi-day arrays are mutually exclusive; the
// handler folds them into a pricing.BookingRequest before anything else
// touches them.
type CreateBookingRequest struct {
	ArtistID  string `json:"artist_id"`
	EventType string `json:"event_type"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
	Language  string `json:"language"`

	IsMultiDay bool   `json:"is_multi_day"`
	EventDate  string `json:"event_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`

	ArtistSlots []pricing.TimeSlot `json:"artist_slots,omitempty"`

	IsEquipmentMultiDay bool               `json:"is_equipment_multi_day"`
	EquipmentSlots      []pricing.TimeSlot `json:"equipment_slots,omitempty"`

	PackageIDs       []string `json:"package_ids,omitempty"`
	CustomPackageIDs []string `json:"custom_package_ids,omitempty"`

	PaymentMethodID int `json:"payment_method_id"` // 1 onsite deposit, 2 online
}

// QuoteRequest prices a booking without creating it. Same scheduling and
// package fields as a create, minus contact and payment.
type QuoteRequest struct {
	ArtistID  string `json:"artist_id"`
	EventType string `json:"event_type"`

	IsMultiDay bool   `json:"is_multi_day"`
	EventDate  string `json:"event_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`

	ArtistSlots []pricing.TimeSlot `json:"artist_slots,omitempty"`

	IsEquipmentMultiDay bool               `json:"is_equipment_multi_day"`
	EquipmentSlots      []pricing.TimeSlot `json:"equipment_slots,omitempty"`

	PackageIDs       []string `json:"package_ids,omitempty"`
	CustomPackageIDs []string `json:"custom_package_ids,omitempty"`
}

type AvailabilityRequest struct {
	ArtistID      string `json:"artist_id"`
	Date          string `json:"date"`       // "2006-01-02"
	StartTime     string `json:"start_time"` // "15:04"
	DurationHours int    `json:"duration_hours"`
}
