package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"stagebook/internal/entities"
	apperrors "stagebook/internal/errors"
	"stagebook/internal/pricing"
	"stagebook/internal/service"
)

type BookingHandler struct {
	Service      *service.BookingService
	Availability *service.AvailabilityService
	Packages     *service.PackageService
}

func NewBookingHandler(svc *service.BookingService, availability *service.AvailabilityService, packages *service.PackageService) *BookingHandler {
	return &BookingHandler{Service: svc, Availability: availability, Packages: packages}
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Availability.CheckAvailability(req)
	if err != nil {
		http.Error(w, "Error checking availability", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Quote(r.Context(), req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.CreateBooking(r.Context(), &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.GetBookingByCode(code, email)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Service.CancelBooking(code); err != nil {
		writeBookingError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking canceled"})
}

func (h *BookingHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.Packages.Catalog()
	if err != nil {
		http.Error(w, "Could not get packages", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog)
}

func writeBookingError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		http.Error(w, httpErr.Message, httpErr.Code)
	case errors.Is(err, pricing.ErrInvalidWindow), errors.Is(err, pricing.ErrEmptySlotSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case strings.Contains(err.Error(), "not found"):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusConflict)
	}
}
