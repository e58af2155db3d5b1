package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"stagebook/internal/db"
	"stagebook/internal/pricing"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// CreateBooking inserts the booking row plus its per-day slot rows and
// package links in one transaction.
func (r *BookingRepository) CreateBooking(b *db.Booking, payload pricing.BookingPayload) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings
		(code, artist_id, event_type, user_name, user_email, user_phone,
		 is_multi_day, is_equipment_multi_day, start_time, end_time,
		 artist_fee, equipment_fee, total_amount, total_hours, pricing_source,
		 payment_method_id, status, payment_status, language,
		 stripe_session_id, stripe_payment_intent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		b.Code, b.ArtistID, b.EventType, b.UserName, b.UserEmail, b.UserPhone,
		b.MultiDay, b.EquipmentMultiDay, b.StartTime, b.EndTime,
		b.ArtistFee, b.EquipmentFee, b.TotalAmount, b.TotalHours, b.PricingSource,
		b.PaymentMethodID, b.Status, b.PaymentStatus, b.Language,
		b.StripeSessionID, b.StripePaymentIntentID, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	artistSlots := payload.ArtistEventDates
	if len(artistSlots) == 0 && payload.EventDate != "" {
		artistSlots = []pricing.TimeSlot{{Date: payload.EventDate, StartTime: payload.StartTime, EndTime: payload.EndTime}}
	}
	if err := insertSlots(tx, b.ID, "artist", artistSlots); err != nil {
		return err
	}
	if err := insertSlots(tx, b.ID, "equipment", payload.EquipmentEventDates); err != nil {
		return err
	}

	for _, pkgID := range payload.PackageIDs {
		if _, err := tx.Exec(`INSERT INTO booking_packages (booking_id, package_id) VALUES ($1, $2)`, b.ID, pkgID); err != nil {
			return fmt.Errorf("insert booking package: %w", err)
		}
	}
	for _, pkgID := range payload.CustomPackageIDs {
		if _, err := tx.Exec(`INSERT INTO booking_custom_packages (booking_id, custom_package_id) VALUES ($1, $2)`, b.ID, pkgID); err != nil {
			return fmt.Errorf("insert booking custom package: %w", err)
		}
	}

	return tx.Commit()
}

func insertSlots(tx *sql.Tx, bookingID int, kind string, slots []pricing.TimeSlot) error {
	for i, slot := range slots {
		_, err := tx.Exec(`
			INSERT INTO booking_event_dates (booking_id, kind, event_date, start_time, end_time, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			bookingID, kind, slot.Date, slot.StartTime, slot.EndTime, i)
		if err != nil {
			return fmt.Errorf("insert %s slot: %w", kind, err)
		}
	}
	return nil
}

func (r *BookingRepository) GetBookingByCode(code, email string) (*db.Booking, error) {
	return r.getBooking(`WHERE code = $1 AND user_email = $2`, code, email)
}

func (r *BookingRepository) GetBookingByCodeOnly(code string) (*db.Booking, error) {
	return r.getBooking(`WHERE code = $1`, code)
}

func (r *BookingRepository) GetBookingByStripeSessionID(sessionID string) (*db.Booking, error) {
	return r.getBooking(`WHERE stripe_session_id = $1`, sessionID)
}

func (r *BookingRepository) getBooking(where string, args ...interface{}) (*db.Booking, error) {
	var b db.Booking
	query := `
		SELECT id, code, artist_id, event_type, user_name, user_email, user_phone,
		       is_multi_day, is_equipment_multi_day, start_time, end_time,
		       artist_fee, equipment_fee, total_amount, total_hours, pricing_source,
		       payment_method_id, status, payment_status, language,
		       stripe_session_id, stripe_payment_intent_id, created_at, updated_at
		FROM bookings ` + where
	err := r.DB.QueryRow(query, args...).Scan(
		&b.ID, &b.Code, &b.ArtistID, &b.EventType, &b.UserName, &b.UserEmail, &b.UserPhone,
		&b.MultiDay, &b.EquipmentMultiDay, &b.StartTime, &b.EndTime,
		&b.ArtistFee, &b.EquipmentFee, &b.TotalAmount, &b.TotalHours, &b.PricingSource,
		&b.PaymentMethodID, &b.Status, &b.PaymentStatus, &b.Language,
		&b.StripeSessionID, &b.StripePaymentIntentID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking not found: %w", err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

// GetBookingSlots returns the per-day windows of one kind, in order.
func (r *BookingRepository) GetBookingSlots(bookingID int, kind string) ([]pricing.TimeSlot, error) {
	rows, err := r.DB.Query(`
		SELECT event_date, start_time, end_time
		FROM booking_event_dates
		WHERE booking_id = $1 AND kind = $2
		ORDER BY position`, bookingID, kind)
	if err != nil {
		return nil, fmt.Errorf("error querying booking slots: %w", err)
	}
	defer rows.Close()

	var slots []pricing.TimeSlot
	for rows.Next() {
		var s pricing.TimeSlot
		if err := rows.Scan(&s.Date, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning booking slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *BookingRepository) CancelBooking(code string) (string, error) {
	var status string
	err := r.DB.QueryRow(
		`UPDATE bookings SET status = 'canceled', updated_at = NOW() WHERE code = $1 RETURNING status`,
		code,
	).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("error canceling booking: %w", err)
	}
	return status, nil
}

func (r *BookingRepository) UpdateStatusAndPaymentBySessionID(sessionID, status, paymentStatus string) error {
	res, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, payment_status = $2, updated_at = NOW() WHERE stripe_session_id = $3`,
		status, paymentStatus, sessionID,
	)
	if err != nil {
		return fmt.Errorf("error updating booking by session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no booking for stripe session %s", sessionID)
	}
	return nil
}

func (r *BookingRepository) UpdateStatusPaymentAndIntentBySessionID(sessionID, status, paymentStatus, paymentIntentID string) error {
	res, err := r.DB.Exec(
		`UPDATE bookings
		 SET status = $1, payment_status = $2, stripe_payment_intent_id = $3, updated_at = NOW()
		 WHERE stripe_session_id = $4`,
		status, paymentStatus, paymentIntentID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("error updating booking by session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no booking for stripe session %s", sessionID)
	}
	return nil
}
