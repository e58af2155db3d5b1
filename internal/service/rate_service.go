package service

import (
	"context"
	"fmt"

	"stagebook/internal/pricing"
	"stagebook/internal/repository"
)

// RateQuoteService is the pricing oracle: it owns the tiered rate tables
// (time-of-day premiums per artist and event type) and answers with the
// authoritative artist fee. The aggregator never reproduces this logic; when
// this service fails it degrades to the artist's static advertised rate.
type RateQuoteService struct {
	Repo *repository.ArtistRepository
}

func NewRateQuoteService(repo *repository.ArtistRepository) *RateQuoteService {
	return &RateQuoteService{Repo: repo}
}

// Quote prices each slot hour against the artist's rate tiers. Hours not
// covered by any tier bill at the artist's base hourly rate.
func (s *RateQuoteService) Quote(ctx context.Context, artistID, eventType string, slots []pricing.TimeSlot) (pricing.Quote, error) {
	if err := ctx.Err(); err != nil {
		return pricing.Quote{}, err
	}

	artist, err := s.Repo.GetArtist(artistID)
	if err != nil {
		return pricing.Quote{}, err
	}
	if !artist.Active {
		return pricing.Quote{}, fmt.Errorf("artist %s is not bookable", artistID)
	}

	tiers, err := s.Repo.GetRateTiers(artistID, eventType)
	if err != nil {
		return pricing.Quote{}, err
	}
	if len(tiers) == 0 {
		return pricing.Quote{}, fmt.Errorf("no rates configured for artist %s, event type %s", artistID, eventType)
	}

	fee := 0
	totalHours := 0
	for _, slot := range slots {
		start := slot.StartHour()
		if start < 0 {
			continue
		}
		for hour := start; hour < start+slot.Hours(); hour++ {
			rate := artist.HourlyRate
			for _, tier := range tiers {
				if hour >= tier.StartHour && hour < tier.EndHour {
					rate = tier.Rate
					break
				}
			}
			fee += rate
			totalHours++
		}
	}

	return pricing.Quote{ArtistFee: fee, TotalHours: totalHours}, nil
}
