package store

import (
	"strings"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
)

// CreateUser registers a new account. hash is the already hashed password.
func (s *Store) CreateUser(req models.RegisterRequest, hash []byte) (models.User, error) {
	if err := req.Validate(); err != nil {
		return models.User{}, fail(ErrInvalid, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := normEmail(req.Email)
	if _, ok := s.byEmail[email]; ok {
		return models.User{}, fail(ErrConflict, "Email already registered")
	}

	ts := s.stamp()
	u := models.User{
		ID:        s.id("user"),
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.users[u.ID] = &userRecord{user: u, hash: hash}
	s.byEmail[email] = u.ID
	return u, nil
}

// Credentials returns the user and password hash for email.
func (s *Store) Credentials(email string) (models.User, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[normEmail(email)]
	if !ok {
		return models.User{}, nil, fail(ErrBadCredentials, "Invalid credentials")
	}
	rec := s.users[id]
	return rec.user, rec.hash, nil
}

func (s *Store) User(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return models.User{}, fail(ErrNotFound, "User not found")
	}
	return rec.user, nil
}

// UpdateUser applies a partial profile update.
func (s *Store) UpdateUser(id int64, req models.UpdateProfileRequest) (models.User, error) {
	if err := req.Validate(); err != nil {
		return models.User{}, fail(ErrInvalid, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return models.User{}, fail(ErrNotFound, "User not found")
	}
	u := &rec.user
	if req.FirstName != nil {
		u.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.PhotoURL != nil {
		u.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}
	u.UpdatedAt = s.stamp()
	return *u, nil
}

// SearchUsers matches name case-insensitively against first, last and full
// name. An empty name matches nobody.
func (s *Store) SearchUsers(name string) []models.User {
	name = strings.ToLower(strings.TrimSpace(name))
	out := []models.User{}
	if name == "" {
		return out
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		if strings.Contains(strings.ToLower(rec.user.FullName()), name) {
			out = append(out, rec.user)
		}
	}
	sortByID(out, func(u models.User) int64 { return u.ID })
	return out
}
