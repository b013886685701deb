// Package session owns the single source of truth for "who is logged in".
//
// The Store moves through Initializing -> {Anonymous, Authenticated} and
// keeps three things consistent: the in-memory (token, identity) pair, the
// durable session_state entries, and — via profile fetches — the remote
// identity record. Durable token and user entries are written and removed
// pairwise inside one transaction, so one is never observed without the
// other.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bankterm/internal/client/api"
	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/dmitrijs2005/bankterm/internal/client/repositories/sessiondata"
	"github.com/dmitrijs2005/bankterm/internal/dbx"
	"github.com/dmitrijs2005/bankterm/internal/logging"
)

// ErrNoCredential is raised when a login/register response violates the
// remote contract by carrying no token or no identity. Normal credential
// rejections arrive as api.ErrUnauthorized instead.
var ErrNoCredential = errors.New("auth response carried no token or user")

// ErrNotAuthenticated is returned by operations that require a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

// API is the slice of the gateway the session layer needs.
type API interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	Register(ctx context.Context, data models.Registration) (*models.AuthResult, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

// Store holds the session state and exposes it through snapshots and a
// subscription mechanism. The zero value is not usable; construct with
// NewStore.
type Store struct {
	api API
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	state   State
	token   string
	user    *models.User
	pending bool

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore builds a Store in the Initializing state. Call Init to settle it.
func NewStore(apiClient API, db *sql.DB, log logging.Logger) *Store {
	return &Store{
		api:   apiClient,
		db:    db,
		log:   log,
		state: StateInitializing,
		subs:  make(map[int]func(Snapshot)),
	}
}

func (s *Store) repo() sessiondata.Repository {
	return sessiondata.NewSQLiteRepository(s.db)
}

// Init rehydrates the session from durable storage and settles the state.
//
// A persisted token is re-validated with a profile fetch; the cached identity
// is applied first as a fast-paint placeholder. Authorization failure on that
// fetch clears everything (an invalid persisted token is never retried
// silently); a transport failure keeps the cached identity so the client
// stays usable against a flaky network. A lone token or lone user entry is
// treated as corrupt and both are removed.
func (s *Store) Init(ctx context.Context) error {
	repo := s.repo()

	tokenRaw, err := repo.Get(ctx, sessiondata.KeyToken)
	if err != nil {
		return err
	}
	userRaw, err := repo.Get(ctx, sessiondata.KeyUser)
	if err != nil {
		return err
	}

	if len(tokenRaw) == 0 || len(userRaw) == 0 {
		if len(tokenRaw) != 0 || len(userRaw) != 0 {
			s.log.Warn(ctx, "unpaired session entries found, clearing")
			if err := s.clearDurable(ctx); err != nil {
				return err
			}
		}
		s.apply(StateAnonymous, "", nil)
		return nil
	}

	var cached models.User
	if err := json.Unmarshal(userRaw, &cached); err != nil {
		s.log.Warn(ctx, "cached identity is unreadable, clearing", "error", err)
		if err := s.clearDurable(ctx); err != nil {
			return err
		}
		s.apply(StateAnonymous, "", nil)
		return nil
	}

	token := string(tokenRaw)

	// Fast paint: expose the cached identity while the fetch is in flight.
	// State stays Initializing so guards keep showing the waiting view.
	s.mu.Lock()
	s.token = token
	s.user = &cached
	s.mu.Unlock()

	fresh, err := s.api.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.log.Info(ctx, "persisted token rejected, session cleared")
			return s.Logout(ctx)
		}
		s.log.Warn(ctx, "profile re-validation failed, keeping cached identity", "error", err)
		s.apply(StateAuthenticated, token, &cached)
		return nil
	}

	if err := s.persistUser(ctx, fresh); err != nil {
		return err
	}
	s.apply(StateAuthenticated, token, fresh)
	return nil
}

// Login authenticates, persists the resulting session pairwise, and returns
// the identity. Errors from the remote call propagate unchanged.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

// Register has the same contract as Login, against the register endpoint.
func (s *Store) Register(ctx context.Context, data models.Registration) (*models.User, error) {
	res, err := s.api.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

// establish validates an auth payload and makes it the live session.
// Nothing is written unless the payload carries both parts.
func (s *Store) establish(ctx context.Context, res *models.AuthResult) (*models.User, error) {
	if res == nil || res.Token == "" || res.User == nil {
		return nil, ErrNoCredential
	}

	if err := s.persistSession(ctx, res.Token, res.User); err != nil {
		return nil, err
	}
	s.apply(StateAuthenticated, res.Token, res.User)
	return res.User, nil
}

// Logout clears durable and in-memory session state. Safe to call from any
// state; calling it twice is the same as calling it once.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.clearDurable(ctx); err != nil {
		return err
	}
	s.apply(StateAnonymous, "", nil)
	return nil
}

// ForceLogout is the target of the gateway's authorization-failure callback.
// It never fails the caller: a storage hiccup is logged, the in-memory state
// is torn down regardless.
func (s *Store) ForceLogout(ctx context.Context) {
	if err := s.clearDurable(ctx); err != nil {
		s.log.Error(ctx, "clearing session after authorization failure", "error", err)
	}
	s.apply(StateAnonymous, "", nil)
}

// RefreshIdentity re-fetches the profile and replaces the identity wholesale.
// Failures are re-raised without touching the session; a forced logout on
// 401/403 is the gateway hook's job, not this method's.
func (s *Store) RefreshIdentity(ctx context.Context) (*models.User, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	fresh, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.persistUser(ctx, fresh); err != nil {
		return nil, err
	}
	s.replaceUser(fresh, false)
	return fresh, nil
}

// UpdateIdentityLocal replaces the identity immediately, without a network
// round trip, and marks it pending server confirmation. Callers are expected
// to reconcile via UpdateProfile or RefreshIdentity.
func (s *Store) UpdateIdentityLocal(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	s.mu.RLock()
	cur := s.user
	token := s.token
	s.mu.RUnlock()
	if token == "" || cur == nil {
		return nil, ErrNotAuthenticated
	}

	applied := patch.Apply(*cur)
	if err := s.persistUser(ctx, &applied); err != nil {
		return nil, err
	}
	s.replaceUser(&applied, true)
	return &applied, nil
}

// UpdateProfile applies patch optimistically, then reconciles with the
// server: on success the confirmed identity overwrites the optimistic one
// (last-confirmed-wins), on failure the pre-patch identity is restored and
// the error re-raised.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	s.mu.RLock()
	prev := s.user
	s.mu.RUnlock()
	if prev == nil {
		return nil, ErrNotAuthenticated
	}
	rollback := *prev

	if _, err := s.UpdateIdentityLocal(ctx, patch); err != nil {
		return nil, err
	}

	confirmed, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		if s.IsAuthenticated() {
			if perr := s.persistUser(ctx, &rollback); perr != nil {
				s.log.Error(ctx, "rolling back optimistic profile update", "error", perr)
			}
			s.replaceUser(&rollback, false)
		}
		return nil, err
	}

	if err := s.persistUser(ctx, confirmed); err != nil {
		return nil, err
	}
	s.replaceUser(confirmed, false)
	return confirmed, nil
}

// ChangePassword verifies the current password server-side and sets a new
// one. The token stays valid, so the session is untouched.
func (s *Store) ChangePassword(ctx context.Context, current, newPassword string) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return s.api.ChangePassword(ctx, models.PasswordChange{
		CurrentPassword: current,
		NewPassword:     newPassword,
	})
}

// IsAuthenticated reports whether both credential and identity are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsAdmin reports whether the identity is present with the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == models.RoleAdmin
}

// Token returns the current credential, or "" when anonymous. The gateway
// reads it at request time through its CredentialSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Snapshot returns the current session tuple.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		State:   s.state,
		Token:   s.token,
		Loading: s.state == StateInitializing,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Subscribe registers fn to run after every settled state mutation and
// returns the matching unsubscribe func. Notifications run synchronously on
// the mutating goroutine.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// apply installs a new settled state and notifies subscribers.
func (s *Store) apply(state State, token string, user *models.User) {
	s.mu.Lock()
	s.state = state
	s.token = token
	s.user = user
	s.pending = false
	s.mu.Unlock()
	s.notify()
}

// replaceUser swaps the identity wholesale, leaving state and token alone.
func (s *Store) replaceUser(user *models.User, pending bool) {
	s.mu.Lock()
	s.user = user
	s.pending = pending
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	snap := s.Snapshot()
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// persistSession writes token and identity as one transaction.
func (s *Store) persistSession(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessiondata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessiondata.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, sessiondata.KeyUser, raw)
	})
}

// persistUser updates the identity entry only; the token entry must already
// exist, so the pairing invariant holds.
func (s *Store) persistUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding identity: %w", err)
	}
	return s.repo().Set(ctx, sessiondata.KeyUser, raw)
}

// clearDurable removes token and identity as one transaction.
func (s *Store) clearDurable(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessiondata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, sessiondata.KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, sessiondata.KeyUser)
	})
}
