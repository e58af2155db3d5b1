package service

import (
	"fmt"
	"log"
	"time"

	"stagebook/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// UpdateFinishedBookings marks confirmed bookings whose end time has passed
// as finished.
func (s *JobService) UpdateFinishedBookings() error {
	log.Println("Cron Job: Checking for bookings to mark as 'finished'...")

	bookingIDs, err := s.Repo.GetConfirmedBookingIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed bookings past end time: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No confirmed bookings found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'finished'. IDs: %v", len(bookingIDs), bookingIDs)

	if err := s.Repo.UpdateBookingStatuses(bookingIDs, "finished"); err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d bookings to 'finished'.", len(bookingIDs))
	return nil
}

// DeleteOldPendingBookings deletes pending bookings created before the given
// time; their checkout was never completed.
func (s *JobService) DeleteOldPendingBookings(before time.Time) (int64, error) {
	return s.Repo.DeletePendingBookingsOlderThan(before)
}
