package models

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidPhone  = errors.New("phone number must contain at least 8 digits")
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are filled in.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// Validate checks that every field is filled in.
func (r RegisterRequest) Validate() error {
	for _, v := range []string{r.Email, r.Password, r.FirstName, r.LastName, r.Phone} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest is the partial body of PATCH /users/me. Nil fields are
// left unchanged by the server.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
}

// NewProfileUpdate builds a trimmed full-profile update as submitted by the
// profile editor. An empty photoURL is omitted.
func NewProfileUpdate(firstName, lastName, phone, photoURL string) UpdateProfileRequest {
	firstName, lastName, phone = strings.TrimSpace(firstName), strings.TrimSpace(lastName), strings.TrimSpace(phone)
	req := UpdateProfileRequest{FirstName: &firstName, LastName: &lastName, Phone: &phone}
	if p := strings.TrimSpace(photoURL); p != "" {
		req.PhotoURL = &p
	}
	return req
}

// Validate enforces the profile editor rules: names present when set, and a
// phone with at least eight digits when set.
func (r UpdateProfileRequest) Validate() error {
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		return ErrMissingFields
	}
	if r.LastName != nil && strings.TrimSpace(*r.LastName) == "" {
		return ErrMissingFields
	}
	if r.Phone != nil {
		if strings.TrimSpace(*r.Phone) == "" {
			return ErrMissingFields
		}
		if countDigits(*r.Phone) < 8 {
			return ErrInvalidPhone
		}
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
