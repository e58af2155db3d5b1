package entities

import "time"

type HourAvailability struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

type AvailabilityResponse struct {
	IsAvailable           bool               `json:"is_available"`
	Reason                string             `json:"reason,omitempty"`
	RequestedStartTime    time.Time          `json:"requested_start_time"`
	RequestedEndTime      time.Time          `json:"requested_end_time"`
	HourDetails           []HourAvailability `json:"hour_details,omitempty"`
	FirstUnavailableStart *time.Time         `json:"first_unavailable_start,omitempty"`
}
