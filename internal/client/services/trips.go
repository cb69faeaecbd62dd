package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// TripService wraps the /trips endpoints. Listings are fetched fresh on
// every call.
type TripService struct {
	api Doer
}

func NewTripService(api Doer) *TripService {
	return &TripService{api: api}
}

func (s *TripService) Search(ctx context.Context, params models.TripSearch) ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.api.Do(ctx, http.MethodGet, "/trips/search", params.Query(), nil, &trips); err != nil {
		return nil, fmt.Errorf("search trips error: %w", err)
	}
	return trips, nil
}

func (s *TripService) Create(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	var t models.Trip
	if err := s.api.Do(ctx, http.MethodPost, "/trips", nil, req, &t); err != nil {
		return nil, fmt.Errorf("create trip error: %w", err)
	}
	return &t, nil
}

func (s *TripService) Get(ctx context.Context, id int64) (*models.Trip, error) {
	var t models.Trip
	if err := s.api.Do(ctx, http.MethodGet, idPath("/trips", id), nil, nil, &t); err != nil {
		return nil, fmt.Errorf("get trip %d error: %w", id, err)
	}
	return &t, nil
}

func (s *TripService) Cancel(ctx context.Context, id int64) error {
	if err := s.api.Do(ctx, http.MethodDelete, idPath("/trips", id), nil, nil, nil); err != nil {
		return fmt.Errorf("cancel trip %d error: %w", id, err)
	}
	return nil
}
