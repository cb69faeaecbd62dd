// Package session holds the client's authenticated identity.
//
// A Store keeps the credential/identity pair in the persistent key/value
// store and mirrors it in memory. The two are always updated together under
// one lock, so readers never observe a half-applied transition.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/carpoolea/internal/client/models"
	"github.com/dmitrijs2005/carpoolea/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carpoolea/internal/logging"
)

// State is the resolved session state.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthAPI is the part of the service layer the store drives.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// Store is the single source of truth for "who is logged in".
type Store struct {
	repo metadata.Repository
	auth AuthAPI
	log  logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.User

	initOnce  sync.Once
	ready     chan struct{}
	subsMu    sync.Mutex
	observers []func(State)
}

func New(repo metadata.Repository, auth AuthAPI, log logging.Logger) *Store {
	return &Store{
		repo:  repo,
		auth:  auth,
		log:   log,
		state: StateUnknown,
		ready: make(chan struct{}),
	}
}

// Initialize restores the persisted session. It resolves the state to
// authenticated when both keys are present and the identity decodes, and to
// unauthenticated otherwise, clearing any partial or corrupt pair.
//
// A storage read failure also resolves to unauthenticated; the error is
// returned so the caller can report it. Ready is closed in every case.
func (s *Store) Initialize(ctx context.Context) error {
	err := ErrAlreadyInitialized
	s.initOnce.Do(func() {
		err = s.initialize(ctx)
	})
	return err
}

func (s *Store) initialize(ctx context.Context) error {
	s.mu.Lock()
	defer func() {
		st := s.state
		s.mu.Unlock()
		close(s.ready)
		s.notify(st)
	}()

	user, err := s.restore(ctx)
	switch {
	case err == nil && user != nil:
		s.state, s.user = StateAuthenticated, user
		s.log.Info(ctx, "session restored", "user_id", user.ID)
		return nil
	case err == nil:
		s.state = StateUnauthenticated
		return nil
	case errors.Is(err, ErrCorruptSession):
		s.log.Warn(ctx, "discarding persisted session", "error", err)
		s.state = StateUnauthenticated
		if cerr := s.clear(ctx); cerr != nil {
			s.log.Error(ctx, "failed to clear corrupt session", "error", cerr)
		}
		return nil
	default:
		s.state = StateUnauthenticated
		return fmt.Errorf("restore session error: %w", err)
	}
}

// restore returns the persisted identity, nil when there is no session, or
// ErrCorruptSession when only part of the pair exists or it does not decode.
func (s *Store) restore(ctx context.Context) (*models.User, error) {
	token, hasToken, err := s.repo.Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		return nil, err
	}
	raw, hasUser, err := s.repo.Get(ctx, metadata.KeyUserData)
	if err != nil {
		return nil, err
	}

	hasToken = hasToken && token != ""
	switch {
	case !hasToken && !hasUser:
		return nil, nil
	case !hasToken || !hasUser:
		return nil, fmt.Errorf("%w: token present=%t, identity present=%t", ErrCorruptSession, hasToken, hasUser)
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if !complete(u) {
		return nil, fmt.Errorf("%w: identity has no id or email", ErrCorruptSession)
	}
	return &u, nil
}

// complete reports whether u identifies a real account.
func complete(u models.User) bool {
	return u.ID != 0 && u.Email != ""
}

// Login authenticates with the backend and persists the resulting pair.
// On failure the session is left untouched.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

// Register creates an account and logs into it.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

func (s *Store) establish(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" {
		return ErrEmptyCredential
	}
	if !complete(resp.User) {
		return ErrIncompleteIdentity
	}
	data, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode identity error: %w", err)
	}

	s.mu.Lock()
	err = s.repo.SetMany(ctx, map[string]string{
		metadata.KeyAuthToken: resp.Token,
		metadata.KeyUserData:  string(data),
	})
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session error: %w", err)
	}
	u := resp.User
	s.state, s.user = StateAuthenticated, &u
	s.mu.Unlock()

	s.log.Info(ctx, "session established", "user_id", u.ID)
	s.notify(StateAuthenticated)
	return nil
}

// Logout removes the persisted pair and drops the in-memory identity.
// The state is unauthenticated afterwards even if storage removal failed;
// such failures are returned for reporting only. Before Initialize it
// returns ErrInvalidState.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	was := s.state
	if was == StateUnknown {
		s.mu.Unlock()
		return ErrInvalidState
	}
	err := s.signOut(ctx)
	s.mu.Unlock()

	if was != StateUnauthenticated {
		s.notify(StateUnauthenticated)
	}
	return err
}

// Invalidate logs out because the server rejected token. It does nothing
// unless a session is active and token is still the persisted credential,
// so a late 401 for an old token cannot end a newer session.
func (s *Store) Invalidate(ctx context.Context, token string) error {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return nil
	}
	current, ok, err := s.repo.Get(ctx, metadata.KeyAuthToken)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("read credential error: %w", err)
	}
	if ok && current != token {
		s.mu.Unlock()
		s.log.Debug(ctx, "ignoring rejection of a superseded credential")
		return nil
	}
	s.log.Info(ctx, "session invalidated by server")
	err = s.signOut(ctx)
	s.mu.Unlock()

	s.notify(StateUnauthenticated)
	return err
}

// signOut clears storage and memory. s.mu must be held.
func (s *Store) signOut(ctx context.Context) error {
	err := s.clear(ctx)
	s.state, s.user = StateUnauthenticated, nil
	if err != nil {
		s.log.Warn(ctx, "session storage not fully cleared", "error", err)
	}
	return err
}

// clear deletes both keys. Each removal is attempted regardless of the other.
func (s *Store) clear(ctx context.Context) error {
	var errs []error
	for _, k := range []string{metadata.KeyAuthToken, metadata.KeyUserData} {
		if err := s.repo.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// UpdateIdentity replaces the stored profile after a successful edit.
// The credential is not touched.
func (s *Store) UpdateIdentity(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode identity error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return ErrInvalidState
	}
	if err := s.repo.Set(ctx, metadata.KeyUserData, string(data)); err != nil {
		return fmt.Errorf("persist identity error: %w", err)
	}
	s.user = &user
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the current identity, or nil when unauthenticated.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Ready is closed once Initialize has resolved the state.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Subscribe registers fn to be called after every state transition.
// Callbacks run on the goroutine that caused the transition, outside the lock.
func (s *Store) Subscribe(fn func(State)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(st State) {
	s.subsMu.Lock()
	obs := slices.Clone(s.observers)
	s.subsMu.Unlock()
	for _, fn := range obs {
		fn(st)
	}
}
