package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// UserService wraps the /users endpoints.
type UserService struct {
	api Doer
}

func NewUserService(api Doer) *UserService {
	return &UserService{api: api}
}

// Me fetches the authenticated user's profile.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.api.Do(ctx, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, fmt.Errorf("get profile error: %w", err)
	}
	return &u, nil
}

// UpdateMe submits a partial profile update and returns the server's copy.
func (s *UserService) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var u models.User
	if err := s.api.Do(ctx, http.MethodPatch, "/users/me", nil, req, &u); err != nil {
		return nil, fmt.Errorf("update profile error: %w", err)
	}
	return &u, nil
}

func (s *UserService) Search(ctx context.Context, name string) ([]models.User, error) {
	var users []models.User
	q := url.Values{"name": {name}}
	if err := s.api.Do(ctx, http.MethodGet, "/users/search", q, nil, &users); err != nil {
		return nil, fmt.Errorf("search users error: %w", err)
	}
	return users, nil
}
