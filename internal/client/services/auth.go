package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// AuthService wraps the /auth endpoints. Both calls return the new
// credential together with the user's profile.
type AuthService struct {
	api Doer
}

func NewAuthService(api Doer) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.Do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.Do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return &resp, nil
}
