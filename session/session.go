// Package session is the single source of truth for who is logged in.
// It hydrates once from the persistent store at construction and owns
// the access_token and user keys; nothing else writes them.
package session

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nextgen-foodcourt/foodcourt-client/cart"
	"github.com/nextgen-foodcourt/foodcourt-client/events"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
	"github.com/nextgen-foodcourt/foodcourt-client/storage"
)

// Persisted keys, byte-compatible with the web client's storage.
const (
	KeyAccessToken = "access_token"
	KeyUser        = "user"
)

type Store struct {
	mu             sync.Mutex
	kv             storage.Store
	bus            *events.Bus
	cart           *cart.Store
	user           *models.User
	token          string
	selectedOutlet int
}

// New hydrates the session from the persistent store. Hydration
// happens exactly once, here, before any caller can ask
// IsAuthenticated.
func New(kv storage.Store, bus *events.Bus, cartStore *cart.Store) *Store {
	s := &Store{kv: kv, bus: bus, cart: cartStore}

	token, ok := kv.Get(KeyAccessToken)
	if !ok || token == "" {
		return s
	}
	raw, ok := kv.Get(KeyUser)
	if !ok {
		// Half a session is no session.
		kv.Remove(KeyAccessToken)
		return s
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		kv.Remove(KeyAccessToken)
		kv.Remove(KeyUser)
		return s
	}
	s.token = token
	s.user = &u
	return s
}

// Login installs the authenticated user. Credentials were already
// validated by the gateway; this never fails.
func (s *Store) Login(user models.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	data, _ := json.Marshal(user)
	s.kv.Set(KeyAccessToken, token)
	s.kv.Set(KeyUser, string(data))
	s.mu.Unlock()

	s.bus.Publish(events.SessionChanged)
}

// Logout clears the session and the cart together: a logged-out client
// must not keep a stale cart around. Idempotent — logging out twice
// only re-publishes the event.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.selectedOutlet = 0
	s.kv.Remove(KeyAccessToken)
	s.kv.Remove(KeyUser)
	s.mu.Unlock()

	s.cart.Clear()
	s.bus.Publish(events.SessionChanged)
}

// Invalidate is the gateway's forced-logout hook for 401 responses.
func (s *Store) Invalidate() {
	s.Logout()
}

// IsAuthenticated reads the store directly rather than trusting the
// in-memory view, so it answers correctly even for callers holding a
// stale container after an out-of-band change.
func (s *Store) IsAuthenticated() bool {
	token, ok := s.kv.Get(KeyAccessToken)
	return ok && token != ""
}

func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Role derives from the session user — the sole source of truth. The
// web client's redundant userType cache is gone on purpose.
func (s *Store) Role() (models.Role, bool) {
	u, ok := s.CurrentUser()
	if !ok {
		return "", false
	}
	return u.Role, true
}

// SetSelectedOutlet scopes the owner dashboard to one outlet. The
// selection lives in memory only and dies with the session.
func (s *Store) SetSelectedOutlet(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedOutlet = id
}

// SelectedOutlet returns the scoping outlet ID; zero means no scope.
func (s *Store) SelectedOutlet() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedOutlet
}

// Claims peeks at the bearer token's payload without verifying the
// signature — verification is the backend's job, the client only reads
// what the backend embedded (identity, expiry).
func (s *Store) Claims() (jwt.MapClaims, bool) {
	token := s.Token()
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
