// Package pricing computes the cost breakdown for a marketplace booking:
// one or more artist performance windows, plus optionally equipment packages
// rented either alongside the performance or on their own day-by-day
// schedule. The artist fee comes from a pricing oracle (rate tiers live
// there, not here); equipment fees are computed locally from package prices
// and the resolved rental day count.
//
// Note on package scaling: provider packages multiply by the day count only
// when equipment multi-day mode is explicitly on, while custom packages
// always multiply by the resolved day count. The asymmetry is current
// product behavior, kept as is pending product confirmation; do not "fix"
// it here without a decision.
package pricing

import (
	"context"
	"errors"
)

var (
	// ErrInvalidWindow marks a slot whose end does not come after its start.
	ErrInvalidWindow = errors.New("invalid time window")
	// ErrEmptySlotSet marks a multi-day request with no slots.
	ErrEmptySlotSet = errors.New("empty slot set")
)

// FeeSource tells the caller whether the artist fee is an authoritative
// oracle quote or a static-rate estimate. Callers must not present an
// estimate as a confirmed price.
type FeeSource string

const (
	FeeSourceQuoted    FeeSource = "quoted"
	FeeSourceEstimated FeeSource = "estimated"
)

// Quote is the oracle's answer: the authoritative fee and the hour count it
// was computed against. A non-positive hour count is treated as an invalid
// answer and triggers the static-rate fallback.
type Quote struct {
	ArtistFee  int
	TotalHours int
}

// Oracle is the sole source of truth for artist rate-tier logic, such as
// time-of-day premiums.
type Oracle interface {
	Quote(ctx context.Context, artistID, eventType string, slots []TimeSlot) (Quote, error)
}

// CostBreakdown is the aggregation result. TotalAmount always equals
// ArtistFee + EquipmentFee.
type CostBreakdown struct {
	ArtistFee    int       `json:"artist_fee"`
	EquipmentFee int       `json:"equipment_fee"`
	TotalAmount  int       `json:"total_amount"`
	TotalHours   int       `json:"total_hours"`
	FeeSource    FeeSource `json:"fee_source"`
}

// IsDynamicPricing reports whether the artist fee is a confirmed oracle
// quote rather than an estimate.
func (b CostBreakdown) IsDynamicPricing() bool {
	return b.FeeSource == FeeSourceQuoted
}

type Aggregator struct {
	oracle Oracle
}

func NewAggregator(oracle Oracle) *Aggregator {
	return &Aggregator{oracle: oracle}
}

// Aggregate prices a booking request. The oracle is consulted exactly once;
// if it fails or returns a non-positive hour count, the artist fee degrades
// to HourlyRate * total hours and the breakdown is flagged as estimated.
// Context cancellation is not degraded: a canceled call fails outright and
// the caller re-invokes from scratch.
func (a *Aggregator) Aggregate(ctx context.Context, req BookingRequest) (CostBreakdown, error) {
	totalHours := req.Artist.Hours()

	artistFee, source, err := a.fetchArtistFee(ctx, req, totalHours)
	if err != nil {
		return CostBreakdown{}, err
	}

	equipmentFee := computeEquipmentFee(req)

	return CostBreakdown{
		ArtistFee:    artistFee,
		EquipmentFee: equipmentFee,
		TotalAmount:  artistFee + equipmentFee,
		TotalHours:   totalHours,
		FeeSource:    source,
	}, nil
}

func (a *Aggregator) fetchArtistFee(ctx context.Context, req BookingRequest, totalHours int) (int, FeeSource, error) {
	quote, err := a.oracle.Quote(ctx, req.ArtistID, req.EventType, req.Artist.Slots())
	if err != nil {
		if ctx.Err() != nil {
			return 0, "", ctx.Err()
		}
		return req.HourlyRate * totalHours, FeeSourceEstimated, nil
	}
	if quote.TotalHours <= 0 {
		return req.HourlyRate * totalHours, FeeSourceEstimated, nil
	}
	return quote.ArtistFee, FeeSourceQuoted, nil
}

// resolveEquipmentDayCount picks the number of billable equipment rental
// days. Equipment only bills per day when the renter explicitly opted into
// its own multi-day schedule; a multi-day artist booking on its own leaves
// equipment at a single flat rental unit.
func resolveEquipmentDayCount(req BookingRequest) int {
	if req.EquipmentMultiDay && len(req.EquipmentSlots) > 0 {
		return len(req.EquipmentSlots)
	}
	return 1
}

func computeEquipmentFee(req BookingRequest) int {
	days := resolveEquipmentDayCount(req)

	providerDays := 1
	if req.EquipmentMultiDay {
		providerDays = days
	}

	total := 0
	for _, p := range req.Packages {
		total += p.TotalPrice * providerDays
	}
	for _, c := range req.CustomPackages {
		total += c.PricePerDay * days
	}
	return total
}
