package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/auth"
	"github.com/dmitrijs2005/carpoolea/internal/mockbackend/store"
)

// ---- auth ----

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, []string{err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	u, err := s.store.CreateUser(req, hash)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.issue(w, r, http.StatusCreated, u)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	u, hash, err := s.store.Credentials(req.Email)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !auth.CheckPassword(hash, req.Password) {
		s.writeStoreError(w, r, &store.Error{Kind: store.ErrBadCredentials, Message: "Invalid credentials"})
		return
	}
	s.issue(w, r, http.StatusOK, u)
}

func (s *Server) issue(w http.ResponseWriter, r *http.Request, status int, u models.User) {
	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.log.Info(r.Context(), "credential issued", "user_id", u.ID)
	writeJSON(w, status, models.AuthResponse{User: u, Token: token})
}

// ---- users ----

func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.User(userID(r.Context()))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) updateMe(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := s.store.UpdateUser(userID(r.Context()), req)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) searchUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.SearchUsers(r.URL.Query().Get("name")))
}

// ---- trips ----

func (s *Server) searchTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.store.SearchTrips(models.TripSearch{
		OriginCity:      q.Get("originCity"),
		DestinationCity: q.Get("destinationCity"),
		DepartureDate:   q.Get("departureDate"),
		AllowedLuggage:  models.Luggage(q.Get("allowedLuggage")),
	}))
}

func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTripRequest
	if !decode(w, r, &req) {
		return
	}
	t, err := s.store.CreateTrip(userID(r.Context()), req)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := s.store.Trip(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) cancelTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.CancelTrip(userID(r.Context()), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- vehicles ----

func (s *Server) myVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Vehicles(userID(r.Context())))
}

func (s *Server) createVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if !decode(w, r, &req) {
		return
	}
	v, err := s.store.CreateVehicle(userID(r.Context()), req)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) updateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req models.UpdateVehicleRequest
	if !decode(w, r, &req) {
		return
	}
	v, err := s.store.UpdateVehicle(userID(r.Context()), id, req)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteVehicle(userID(r.Context()), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkActiveTrips(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	st, err := s.store.ActiveTrips(userID(r.Context()), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ---- bookings ----

func (s *Server) myBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Bookings(userID(r.Context())))
}

func (s *Server) requestSeat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := s.store.CreateBooking(userID(r.Context()), req)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) confirmBooking(w http.ResponseWriter, r *http.Request) {
	s.answerBooking(w, r, s.store.ConfirmBooking)
}

func (s *Server) rejectBooking(w http.ResponseWriter, r *http.Request) {
	s.answerBooking(w, r, s.store.RejectBooking)
}

func (s *Server) answerBooking(w http.ResponseWriter, r *http.Request, fn func(driverID, id int64) (models.Booking, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := fn(userID(r.Context()), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.CancelBooking(userID(r.Context()), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
