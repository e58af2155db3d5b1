package service

import (
	"stagebook/internal/entities"
	"stagebook/internal/repository"
)

type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: repo}
}

func (s *AdminService) ListBookings(date, artistID, status string, limit, offset int) (*entities.BookingsList, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	bookings, total, err := s.Repo.ListBookings(date, artistID, status, limit, offset)
	if err != nil {
		return nil, err
	}

	list := &entities.BookingsList{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, b := range bookings {
		list.Bookings = append(list.Bookings, entities.BookingResponse{
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
			CreatedAt:         b.CreatedAt,
			UpdatedAt:         b.UpdatedAt,
		})
	}
	return list, nil
}

func (s *AdminService) UpdateBookingStatus(code, status string) error {
	return s.Repo.UpdateBookingStatus(code, status)
}

func (s *AdminService) DeleteBookingByID(id int) error {
	return s.Repo.DeleteBookingByID(id)
}
