package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"stagebook/internal/db"
	"stagebook/internal/entities"
	apperrors "stagebook/internal/errors"
	"stagebook/internal/pricing"
	"stagebook/internal/repository"
	"stagebook/internal/utils"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCanceled  = "canceled"
	statusFinished  = "finished"
)

const (
	paymentMethodOnsite = 1 // 30% deposit through checkout, rest on site
	paymentMethodOnline = 2 // full amount through checkout
)

const cancellationCutoff = 12 * time.Hour

type BookingService struct {
	aggregator    *pricing.Aggregator
	stripeService *StripeService
	senderService *SenderService

	Repo        *repository.BookingRepository
	ArtistRepo  *repository.ArtistRepository
	PackageRepo *repository.PackageRepository
}

func NewBookingService(
	aggregator *pricing.Aggregator,
	stripeService *StripeService,
	senderService *SenderService,
	repo *repository.BookingRepository,
	artistRepo *repository.ArtistRepository,
	packageRepo *repository.PackageRepository,
) *BookingService {
	return &BookingService{
		aggregator:    aggregator,
		stripeService: stripeService,
		senderService: senderService,
		Repo:          repo,
		ArtistRepo:    artistRepo,
		PackageRepo:   packageRepo,
	}
}

// buildRequest folds the wire shape into the immutable pricing request,
// resolving package references and the artist's static fallback rate.
func (s *BookingService) buildRequest(artistID, eventType string, multiDay bool, eventDate, startTime, endTime string,
	artistSlots []pricing.TimeSlot, equipmentMultiDay bool, equipmentSlots []pricing.TimeSlot,
	packageIDs, customPackageIDs []string) (pricing.BookingRequest, error) {

	artist, err := s.ArtistRepo.GetArtist(artistID)
	if err != nil {
		return pricing.BookingRequest{}, err
	}

	var schedule pricing.Schedule
	if multiDay {
		schedule = pricing.MultiDay(artistSlots)
	} else {
		schedule = pricing.SingleDay(pricing.TimeSlot{Date: eventDate, StartTime: startTime, EndTime: endTime})
	}

	packages, err := s.PackageRepo.GetEquipmentPackagesByIDs(packageIDs)
	if err != nil {
		return pricing.BookingRequest{}, err
	}
	customPackages, err := s.PackageRepo.GetCustomPackagesByIDs(customPackageIDs)
	if err != nil {
		return pricing.BookingRequest{}, err
	}

	req := pricing.BookingRequest{
		ArtistID:          artistID,
		EventType:         eventType,
		Artist:            schedule,
		EquipmentMultiDay: equipmentMultiDay,
		EquipmentSlots:    equipmentSlots,
		HourlyRate:        artist.HourlyRate,
	}
	for _, p := range packages {
		req.Packages = append(req.Packages, pricing.ProviderPackage{ID: p.ID, TotalPrice: p.TotalPrice})
	}
	for _, p := range customPackages {
		req.CustomPackages = append(req.CustomPackages, pricing.CustomPackage{ID: p.ID, PricePerDay: p.PricePerDay})
	}
	return req, nil
}

// Quote prices a booking without creating anything.
func (s *BookingService) Quote(ctx context.Context, q entities.QuoteRequest) (*entities.QuoteResponse, error) {
	req, err := s.buildRequest(q.ArtistID, q.EventType, q.IsMultiDay, q.EventDate, q.StartTime, q.EndTime,
		q.ArtistSlots, q.IsEquipmentMultiDay, q.EquipmentSlots, q.PackageIDs, q.CustomPackageIDs)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	breakdown, err := s.aggregator.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}
	return &entities.QuoteResponse{
		Breakdown:        breakdown,
		IsDynamicPricing: breakdown.IsDynamicPricing(),
	}, nil
}

// CreateBooking aggregates the price, opens a Stripe checkout and persists
// the booking as pending. Confirmation happens through the webhook once the
// checkout completes.
func (s *BookingService) CreateBooking(ctx context.Context, c *entities.CreateBookingRequest) (*entities.CheckoutResponse, error) {
	req, err := s.buildRequest(c.ArtistID, c.EventType, c.IsMultiDay, c.EventDate, c.StartTime, c.EndTime,
		c.ArtistSlots, c.IsEquipmentMultiDay, c.EquipmentSlots, c.PackageIDs, c.CustomPackageIDs)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	breakdown, err := s.aggregator.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	phone, err := utils.NormalizePhone(c.UserPhone)
	if err != nil {
		return nil, err
	}
	contact := pricing.Contact{Name: c.UserName, Email: c.UserEmail, Phone: phone}
	payload := pricing.BuildSubmissionPayload(req, breakdown, contact)

	startTime, endTime, err := bookingSpan(req.Artist.Slots())
	if err != nil {
		return nil, err
	}

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)
	booking := &db.Booking{
		Code:              code,
		ArtistID:          payload.ArtistID,
		EventType:         payload.EventType,
		UserName:          contact.Name,
		UserEmail:         contact.Email,
		UserPhone:         contact.Phone,
		MultiDay:          req.Artist.IsMultiDay(),
		EquipmentMultiDay: req.EquipmentMultiDay,
		StartTime:         startTime,
		EndTime:           endTime,
		ArtistFee:         breakdown.ArtistFee,
		EquipmentFee:      breakdown.EquipmentFee,
		TotalAmount:       breakdown.TotalAmount,
		TotalHours:        breakdown.TotalHours,
		PricingSource:     string(breakdown.FeeSource),
		PaymentMethodID:   c.PaymentMethodID,
		Status:            statusPending,
		PaymentStatus:     statusPending,
		Language:          c.Language,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	sessionURL, err := s.handlePaymentIntent(c.PaymentMethodID, breakdown.TotalAmount, booking)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.CreateBooking(booking, payload); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}

	return &entities.CheckoutResponse{
		Code:      code,
		URL:       sessionURL,
		SessionID: booking.StripeSessionID,
	}, nil
}

func (s *BookingService) handlePaymentIntent(paymentMethodID, totalAmount int, booking *db.Booking) (string, error) {
	var amount int64
	switch paymentMethodID {
	case paymentMethodOnline:
		amount = int64(totalAmount * 100)
	case paymentMethodOnsite:
		amount = int64(float64(totalAmount) * 0.3 * 100)
	default:
		return "", apperrors.ErrBadRequest(fmt.Sprintf("unsupported payment method %d", paymentMethodID))
	}

	description := fmt.Sprintf("Stagebook booking %s", booking.Code)
	sessionURL, sessionID, err := s.stripeService.CreateCheckoutSession(amount, "eur", description, booking.UserEmail)
	if err != nil {
		return "", err
	}

	booking.StripeSessionID = sessionID
	booking.PaymentStatus = statusPending
	return sessionURL, nil
}

func (s *BookingService) GetBookingByCode(code, email string) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetBookingByCode(code, email)
	if err != nil {
		return nil, err
	}
	return s.toResponse(booking)
}

func (s *BookingService) GetBookingBySessionID(sessionID string) (*entities.BookingResponse, error) {
	booking, err := s.Repo.GetBookingByStripeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(booking)
}

func (s *BookingService) toResponse(b *db.Booking) (*entities.BookingResponse, error) {
	resp := &entities.BookingResponse{
		Code:              b.Code,
		ArtistID:          b.ArtistID,
		EventType:         b.EventType,
		UserName:          b.UserName,
		UserEmail:         b.UserEmail,
		UserPhone:         b.UserPhone,
		MultiDay:          b.MultiDay,
		EquipmentMultiDay: b.EquipmentMultiDay,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		ArtistFee:         b.ArtistFee,
		EquipmentFee:      b.EquipmentFee,
		TotalAmount:       b.TotalAmount,
		TotalHours:        b.TotalHours,
		PricingSource:     b.PricingSource,
		Status:            b.Status,
		PaymentStatus:     b.PaymentStatus,
		Language:          b.Language,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if artist, err := s.ArtistRepo.GetArtist(b.ArtistID); err == nil {
		resp.ArtistName = artist.Name
	}

	artistSlots, err := s.Repo.GetBookingSlots(b.ID, "artist")
	if err != nil {
		return nil, err
	}
	equipmentSlots, err := s.Repo.GetBookingSlots(b.ID, "equipment")
	if err != nil {
		return nil, err
	}
	resp.ArtistEventDates = artistSlots
	resp.EquipmentEventDates = equipmentSlots
	return resp, nil
}

// CancelBooking refunds through Stripe and notifies the user. Bookings can
// only be canceled more than 12 hours before the start time.
func (s *BookingService) CancelBooking(code string) error {
	booking, err := s.Repo.GetBookingByCodeOnly(code)
	if err != nil {
		return err
	}
	if booking.StripeSessionID == "" {
		return fmt.Errorf("no Stripe session ID found for booking code %s", code)
	}

	if booking.StartTime.Sub(time.Now().UTC()) < cancellationCutoff {
		return apperrors.NewHTTPError(http.StatusConflict,
			fmt.Sprintf("bookings can only be canceled more than %d hours before the start time", int(cancellationCutoff.Hours())))
	}

	if booking.PaymentStatus == "succeeded" {
		if err := s.stripeService.RefundPaymentBySessionID(booking.StripeSessionID); err != nil {
			return err
		}
	}

	if _, err := s.Repo.CancelBooking(code); err != nil {
		return err
	}

	resp, err := s.GetBookingBySessionID(booking.StripeSessionID)
	if err != nil {
		return err
	}
	translated := StatusTranslation(statusCanceled, resp.Language)
	s.senderService.SendBookingSMS(*resp, translated)
	s.senderService.SendBookingEmail(*resp, translated)
	return nil
}

func (s *BookingService) UpdateStatusAndPaymentBySessionID(sessionID, status, paymentStatus string) error {
	return s.Repo.UpdateStatusAndPaymentBySessionID(sessionID, status, paymentStatus)
}

func (s *BookingService) UpdateStatusPaymentAndIntentBySessionID(sessionID, status, paymentStatus, paymentIntentID string) error {
	return s.Repo.UpdateStatusPaymentAndIntentBySessionID(sessionID, status, paymentStatus, paymentIntentID)
}

func (s *BookingService) GetSessionIDByPaymentIntentID(paymentIntentID string) (string, error) {
	return s.stripeService.GetSessionIDByPaymentIntentID(paymentIntentID)
}

// bookingSpan returns the overall window covered by the slots: first start
// to last end.
func bookingSpan(slots []pricing.TimeSlot) (time.Time, time.Time, error) {
	if len(slots) == 0 {
		return time.Time{}, time.Time{}, pricing.ErrEmptySlotSet
	}

	start, err := slots[0].StartsAt()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := slots[0].EndsAt()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	for _, slot := range slots[1:] {
		s, err := slot.StartsAt()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		e, err := slot.EndsAt()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if s.Before(start) {
			start = s
		}
		if e.After(end) {
			end = e
		}
	}
	return start, end, nil
}

// StatusTranslation localizes a booking status for notifications.
func StatusTranslation(status, lang string) string {
	if lang == "es" {
		switch status {
		case statusPending:
			return "pendiente"
		case statusConfirmed:
			return "confirmada"
		case statusFinished:
			return "finalizada"
		case statusCanceled, "cancelled":
			return "cancelada"
		}
	}
	// Default: English
	return status
}
