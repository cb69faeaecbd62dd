package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// BookingService wraps the /bookings endpoints for both passengers and
// drivers.
type BookingService struct {
	api Doer
}

func NewBookingService(api Doer) *BookingService {
	return &BookingService{api: api}
}

func (s *BookingService) Mine(ctx context.Context) ([]models.Booking, error) {
	var bs []models.Booking
	if err := s.api.Do(ctx, http.MethodGet, "/bookings/my-bookings", nil, nil, &bs); err != nil {
		return nil, fmt.Errorf("list bookings error: %w", err)
	}
	return bs, nil
}

// RequestSeat creates a pending booking on a trip.
func (s *BookingService) RequestSeat(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var b models.Booking
	if err := s.api.Do(ctx, http.MethodPost, "/bookings", nil, req, &b); err != nil {
		return nil, fmt.Errorf("request seat error: %w", err)
	}
	return &b, nil
}

func (s *BookingService) Confirm(ctx context.Context, id int64) (*models.Booking, error) {
	return s.transition(ctx, id, "confirm")
}

func (s *BookingService) Reject(ctx context.Context, id int64) (*models.Booking, error) {
	return s.transition(ctx, id, "reject")
}

func (s *BookingService) transition(ctx context.Context, id int64, action string) (*models.Booking, error) {
	var b models.Booking
	if err := s.api.Do(ctx, http.MethodPatch, idPath("/bookings", id, action), nil, nil, &b); err != nil {
		return nil, fmt.Errorf("%s booking %d error: %w", action, id, err)
	}
	return &b, nil
}

func (s *BookingService) Cancel(ctx context.Context, id int64) error {
	if err := s.api.Do(ctx, http.MethodDelete, idPath("/bookings", id), nil, nil, nil); err != nil {
		return fmt.Errorf("cancel booking %d error: %w", id, err)
	}
	return nil
}
