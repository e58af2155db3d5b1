package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stagebook/internal/db"
)

// HourOccupation is one hour of an artist's calendar: whether the hour is
// administratively blocked and how many confirmed bookings overlap it.
type HourOccupation struct {
	SlotStart time.Time
	SlotEnd   time.Time
	Blocked   bool
	Booked    int
}

type ArtistRepository struct {
	DB *sql.DB
}

func NewArtistRepository(database *sql.DB) *ArtistRepository {
	return &ArtistRepository{DB: database}
}

func (r *ArtistRepository) GetArtist(artistID string) (*db.Artist, error) {
	var a db.Artist
	err := r.DB.QueryRow(
		`SELECT id, name, genre, hourly_rate, active FROM artists WHERE id = $1`,
		artistID,
	).Scan(&a.ID, &a.Name, &a.Genre, &a.HourlyRate, &a.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("artist %s not found: %w", artistID, err)
		}
		return nil, fmt.Errorf("error querying artist: %w", err)
	}
	return &a, nil
}

// GetRateTiers returns the artist's tiered rate table for an event type,
// ordered by start hour. Empty means the artist has no dynamic rates
// configured for that event type.
func (r *ArtistRepository) GetRateTiers(artistID, eventType string) ([]db.RateTier, error) {
	rows, err := r.DB.Query(`
		SELECT artist_id, event_type, start_hour, end_hour, rate
		FROM artist_rates
		WHERE artist_id = $1 AND event_type = $2
		ORDER BY start_hour`, artistID, eventType)
	if err != nil {
		return nil, fmt.Errorf("error querying artist rates: %w", err)
	}
	defer rows.Close()

	var tiers []db.RateTier
	for rows.Next() {
		var t db.RateTier
		if err := rows.Scan(&t.ArtistID, &t.EventType, &t.StartHour, &t.EndHour, &t.Rate); err != nil {
			return nil, fmt.Errorf("error scanning artist rate: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// GetHourlyOccupation walks the requested window hour by hour, joining
// blocked hours and overlapping non-canceled bookings.
func (r *ArtistRepository) GetHourlyOccupation(artistID string, startTime, endTime time.Time) ([]HourOccupation, error) {
	if !endTime.After(startTime) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	query := `
		WITH requested_slots AS (
			SELECT
				gs.slot_hour_start,
				gs.slot_hour_start + interval '1 hour' AS slot_hour_end
			FROM generate_series(
				$1::timestamptz,
				$2::timestamptz - interval '1 hour',
				interval '1 hour'
			) AS gs(slot_hour_start)
		)
		SELECT
			rs.slot_hour_start,
			rs.slot_hour_end,
			EXISTS (
				SELECT 1 FROM artist_blocked_hours bh
				WHERE bh.artist_id = $3
				  AND bh.start_time < rs.slot_hour_end
				  AND bh.end_time > rs.slot_hour_start
			) AS blocked,
			COUNT(b.id) AS booked
		FROM requested_slots rs
		LEFT JOIN bookings b
			ON b.artist_id = $3
			AND b.status IN ('pending', 'confirmed')
			AND b.start_time < rs.slot_hour_end
			AND b.end_time > rs.slot_hour_start
		GROUP BY rs.slot_hour_start, rs.slot_hour_end
		ORDER BY rs.slot_hour_start;
	`

	rows, err := r.DB.Query(query, startTime, endTime, artistID)
	if err != nil {
		return nil, fmt.Errorf("error querying hourly occupation: %w", err)
	}
	defer rows.Close()

	var results []HourOccupation
	for rows.Next() {
		var ho HourOccupation
		if err := rows.Scan(&ho.SlotStart, &ho.SlotEnd, &ho.Blocked, &ho.Booked); err != nil {
			return nil, fmt.Errorf("error scanning hourly occupation: %w", err)
		}
		results = append(results, ho)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating occupation rows: %w", err)
	}
	return results, nil
}
