package service

import (
	"fmt"
	"log"
	"time"

	"stagebook/internal/entities"
	"stagebook/internal/repository"
)

type AvailabilityService struct {
	Repo *repository.ArtistRepository
}

func NewAvailabilityService(repo *repository.ArtistRepository) *AvailabilityService {
	return &AvailabilityService{Repo: repo}
}

// CheckAvailability walks the requested window hour by hour; an hour is
// unavailable when the artist blocked it or already holds a booking there.
func (s *AvailabilityService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	if req.DurationHours <= 0 {
		return nil, fmt.Errorf("duration_hours must be positive")
	}
	startTime, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid date or start time: %w", err)
	}
	endTime := startTime.Add(time.Duration(req.DurationHours) * time.Hour)

	occupation, err := s.Repo.GetHourlyOccupation(req.ArtistID, startTime, endTime)
	if err != nil {
		log.Printf("Error from GetHourlyOccupation: %v", err)
		return nil, fmt.Errorf("internal error checking availability: %w", err)
	}

	response := &entities.AvailabilityResponse{
		RequestedStartTime: startTime,
		RequestedEndTime:   endTime,
		IsAvailable:        true,
	}

	if len(occupation) == 0 {
		response.IsAvailable = false
		response.Reason = "no availability information for the requested window"
		return response, nil
	}

	var firstUnavailable *time.Time
	for _, hour := range occupation {
		free := !hour.Blocked && hour.Booked == 0

		response.HourDetails = append(response.HourDetails, entities.HourAvailability{
			StartTime:   hour.SlotStart,
			EndTime:     hour.SlotEnd,
			IsAvailable: free,
		})

		if !free {
			response.IsAvailable = false
			if firstUnavailable == nil {
				slotStart := hour.SlotStart
				firstUnavailable = &slotStart
			}
			if hour.Blocked {
				response.Reason = "artist has blocked part of the requested window"
			} else {
				response.Reason = "artist already has a booking in the requested window"
			}
		}
	}
	response.FirstUnavailableStart = firstUnavailable

	return response, nil
}
