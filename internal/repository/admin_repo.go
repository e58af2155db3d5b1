package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"stagebook/internal/db"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(database *sql.DB) *AdminRepository {
	return &AdminRepository{DB: database}
}

// ListBookings filters by event date, artist and status, newest first, with
// limit/offset paging. The total count ignores paging so clients can render
// page controls.
func (r *AdminRepository) ListBookings(date, artistID, status string, limit, offset int) ([]db.Booking, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		where += " AND DATE(b.start_time) = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if artistID != "" {
		where += " AND b.artist_id = $" + strconv.Itoa(idx)
		args = append(args, artistID)
		idx++
	}
	if status != "" {
		where += " AND b.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}

	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings b`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	query := `
	SELECT
		b.id, b.code, b.artist_id, b.event_type, b.user_name, b.user_email, b.user_phone,
		b.is_multi_day, b.is_equipment_multi_day, b.start_time, b.end_time,
		b.artist_fee, b.equipment_fee, b.total_amount, b.total_hours, b.pricing_source,
		b.status, b.payment_status, b.created_at, b.updated_at
	FROM bookings b` + where +
		" ORDER BY b.start_time DESC LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.Code, &b.ArtistID, &b.EventType, &b.UserName, &b.UserEmail, &b.UserPhone,
			&b.MultiDay, &b.EquipmentMultiDay, &b.StartTime, &b.EndTime,
			&b.ArtistFee, &b.EquipmentFee, &b.TotalAmount, &b.TotalHours, &b.PricingSource,
			&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

func (r *AdminRepository) UpdateBookingStatus(code, status string) error {
	res, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE code = $2`,
		status, code,
	)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *AdminRepository) DeleteBookingByID(id int) error {
	_, err := r.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	return err
}
