package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOracle answers every quote with a fixed result, or fails.
type stubOracle struct {
	quote Quote
	err   error
	calls int
}

func (s *stubOracle) Quote(_ context.Context, _, _ string, _ []TimeSlot) (Quote, error) {
	s.calls++
	return s.quote, s.err
}

func slot(date, start, end string) TimeSlot {
	return TimeSlot{Date: date, StartTime: start, EndTime: end}
}

func TestAggregate_SingleDayDefault(t *testing.T) {
	oracle := &stubOracle{err: errors.New("oracle down")}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:   "a1",
		Artist:     SingleDay(slot("2026-06-10", "18:00", "21:00")),
		HourlyRate: 40,
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 3, breakdown.TotalHours)
	assert.Equal(t, 120, breakdown.ArtistFee)
	assert.Equal(t, 0, breakdown.EquipmentFee)
	assert.Equal(t, 120, breakdown.TotalAmount)
}

func TestAggregate_MultiDayArtistSingleEquipmentUnit(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 600, TotalHours: 6}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID: "a1",
		Artist: MultiDay([]TimeSlot{
			slot("2026-06-10", "18:00", "20:00"),
			slot("2026-06-11", "18:00", "20:00"),
			slot("2026-06-12", "18:00", "20:00"),
		}),
		Packages: []ProviderPackage{{ID: "pa-1", TotalPrice: 100}},
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 6, breakdown.TotalHours)
	// Equipment stays one flat rental unit: 100, not 300.
	assert.Equal(t, 100, breakdown.EquipmentFee)
	assert.Equal(t, 700, breakdown.TotalAmount)
	assert.True(t, breakdown.IsDynamicPricing())
}

func TestAggregate_IndependentEquipmentMultiDay(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 200, TotalHours: 2}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:          "a1",
		Artist:            SingleDay(slot("2026-06-10", "18:00", "20:00")),
		EquipmentMultiDay: true,
		EquipmentSlots: []TimeSlot{
			slot("2026-06-10", "10:00", "22:00"),
			slot("2026-06-11", "10:00", "22:00"),
			slot("2026-06-12", "10:00", "22:00"),
			slot("2026-06-13", "10:00", "22:00"),
		},
		CustomPackages: []CustomPackage{{ID: "cp-1", PricePerDay: 50}},
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 200, breakdown.EquipmentFee)
}

func TestAggregate_AsymmetricPackageScaling(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 100, TotalHours: 2}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:          "a1",
		Artist:            SingleDay(slot("2026-06-10", "18:00", "20:00")),
		EquipmentMultiDay: true,
		EquipmentSlots: []TimeSlot{
			slot("2026-06-10", "10:00", "22:00"),
			slot("2026-06-11", "10:00", "22:00"),
		},
		Packages:       []ProviderPackage{{ID: "pa-1", TotalPrice: 80}},
		CustomPackages: []CustomPackage{{ID: "cp-1", PricePerDay: 30}},
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	// Current product behavior: both package kinds scale by the day count
	// when equipment multi-day mode is on. 80*2 + 30*2.
	assert.Equal(t, 220, breakdown.EquipmentFee)
}

func TestAggregate_FallbackOnOracleFailure(t *testing.T) {
	oracle := &stubOracle{err: errors.New("timeout")}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID: "a1",
		Artist: MultiDay([]TimeSlot{
			slot("2026-06-10", "18:00", "21:00"),
			slot("2026-06-11", "18:00", "21:00"),
		}),
		HourlyRate: 25,
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 150, breakdown.ArtistFee)
	assert.Equal(t, FeeSourceEstimated, breakdown.FeeSource)
	assert.False(t, breakdown.IsDynamicPricing())
}

func TestAggregate_FallbackOnZeroHourQuote(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 999, TotalHours: 0}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:   "a1",
		Artist:     SingleDay(slot("2026-06-10", "18:00", "22:00")),
		HourlyRate: 30,
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 120, breakdown.ArtistFee)
	assert.Equal(t, FeeSourceEstimated, breakdown.FeeSource)
}

func TestAggregate_CancellationIsNotDegraded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	oracle := &stubOracle{err: context.Canceled}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:   "a1",
		Artist:     SingleDay(slot("2026-06-10", "18:00", "22:00")),
		HourlyRate: 30,
	}

	_, err := agg.Aggregate(ctx, req)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAggregate_OracleCalledExactlyOnce(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 100, TotalHours: 2}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID: "a1",
		Artist:   SingleDay(slot("2026-06-10", "18:00", "20:00")),
	}

	_, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, oracle.calls)
}

func TestAggregate_Additivity(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 375, TotalHours: 5}}
	agg := NewAggregator(oracle)

	requests := []BookingRequest{
		{
			ArtistID: "a1",
			Artist:   SingleDay(slot("2026-06-10", "17:00", "22:00")),
			Packages: []ProviderPackage{{ID: "pa-1", TotalPrice: 120}, {ID: "pa-2", TotalPrice: 45}},
		},
		{
			ArtistID:          "a2",
			Artist:            MultiDay([]TimeSlot{slot("2026-06-10", "17:00", "22:00"), slot("2026-06-11", "12:00", "14:00")}),
			EquipmentMultiDay: true,
			EquipmentSlots:    []TimeSlot{slot("2026-06-10", "09:00", "23:00"), slot("2026-06-11", "09:00", "23:00")},
			Packages:          []ProviderPackage{{ID: "pa-1", TotalPrice: 120}},
			CustomPackages:    []CustomPackage{{ID: "cp-1", PricePerDay: 35}},
		},
		{
			ArtistID: "a3",
			Artist:   SingleDay(slot("2026-06-10", "17:00", "22:00")),
		},
	}

	for _, req := range requests {
		breakdown, err := agg.Aggregate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, breakdown.ArtistFee+breakdown.EquipmentFee, breakdown.TotalAmount)
		assert.GreaterOrEqual(t, breakdown.TotalAmount, 0)
	}
}

func TestAggregate_Idempotence(t *testing.T) {
	oracle := &stubOracle{quote: Quote{ArtistFee: 450, TotalHours: 6}}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:          "a1",
		Artist:            MultiDay([]TimeSlot{slot("2026-06-10", "18:00", "21:00"), slot("2026-06-11", "18:00", "21:00")}),
		EquipmentMultiDay: true,
		EquipmentSlots:    []TimeSlot{slot("2026-06-10", "10:00", "22:00"), slot("2026-06-11", "10:00", "22:00")},
		Packages:          []ProviderPackage{{ID: "pa-1", TotalPrice: 60}},
		CustomPackages:    []CustomPackage{{ID: "cp-1", PricePerDay: 20}},
	}

	first, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)
	second, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_EmptyMultiDaySlotSetYieldsZeroFees(t *testing.T) {
	oracle := &stubOracle{err: errors.New("oracle down")}
	agg := NewAggregator(oracle)

	req := BookingRequest{
		ArtistID:   "a1",
		Artist:     MultiDay(nil),
		HourlyRate: 40,
	}

	breakdown, err := agg.Aggregate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, breakdown.TotalHours)
	assert.Equal(t, 0, breakdown.TotalAmount)
	// The request itself is invalid and must be rejected before submission.
	require.ErrorIs(t, req.Validate(), ErrEmptySlotSet)
}

func TestResolveEquipmentDayCount(t *testing.T) {
	multiDayArtist := MultiDay([]TimeSlot{
		slot("2026-06-10", "18:00", "20:00"),
		slot("2026-06-11", "18:00", "20:00"),
	})

	tests := []struct {
		name string
		req  BookingRequest
		want int
	}{
		{
			name: "default single rental unit",
			req:  BookingRequest{Artist: SingleDay(slot("2026-06-10", "18:00", "20:00"))},
			want: 1,
		},
		{
			name: "explicit equipment multi-day",
			req: BookingRequest{
				Artist:            SingleDay(slot("2026-06-10", "18:00", "20:00")),
				EquipmentMultiDay: true,
				EquipmentSlots:    []TimeSlot{slot("2026-06-10", "10:00", "22:00"), slot("2026-06-11", "10:00", "22:00"), slot("2026-06-12", "10:00", "22:00")},
			},
			want: 3,
		},
		{
			name: "multi-day artist does not drag equipment along",
			req:  BookingRequest{Artist: multiDayArtist},
			want: 1,
		},
		{
			name: "multi-day flag without slots falls back to one unit",
			req:  BookingRequest{Artist: multiDayArtist, EquipmentMultiDay: true},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEquipmentDayCount(tt.req))
		})
	}
}
