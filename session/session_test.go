package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextgen-foodcourt/foodcourt-client/cart"
	"github.com/nextgen-foodcourt/foodcourt-client/events"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
	"github.com/nextgen-foodcourt/foodcourt-client/storage"
)

var testUser = models.User{
	ID: 1, Name: "Brian Otieno", Email: "brian@foodcourt.dev",
	PhoneNo: "0700000002", Role: models.RoleCustomer,
}

func newTestSession() (*Store, *cart.Store, *storage.MemoryStore, *events.Bus) {
	kv := storage.NewMemoryStore()
	bus := events.New()
	cartStore := cart.New(kv, bus)
	return New(kv, bus, cartStore), cartStore, kv, bus
}

func TestLoginPersistsAndPublishes(t *testing.T) {
	sess, _, kv, bus := newTestSession()
	fired := 0
	bus.Subscribe(events.SessionChanged, func() { fired++ })

	sess.Login(testUser, "token-abc")

	require.True(t, sess.IsAuthenticated())
	require.Equal(t, 1, fired)

	token, ok := kv.Get(KeyAccessToken)
	require.True(t, ok)
	require.Equal(t, "token-abc", token)
	_, ok = kv.Get(KeyUser)
	require.True(t, ok)

	user, ok := sess.CurrentUser()
	require.True(t, ok)
	require.Equal(t, testUser, user)

	role, ok := sess.Role()
	require.True(t, ok)
	require.Equal(t, models.RoleCustomer, role)
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	sess, cartStore, kv, _ := newTestSession()
	sess.Login(testUser, "token-abc")
	cartStore.AddItem(1, "Biryani", 450, "Mama Ntilie")
	sess.SetSelectedOutlet(5)

	sess.Logout()

	require.False(t, sess.IsAuthenticated())
	require.Zero(t, cartStore.Count())
	require.Zero(t, sess.SelectedOutlet())
	_, ok := sess.CurrentUser()
	require.False(t, ok)

	for _, key := range []string{KeyAccessToken, KeyUser, cart.StorageKey} {
		_, present := kv.Get(key)
		require.False(t, present, "key %q must be removed", key)
	}

	// A simulated fresh start over the same store also sees no session.
	rehydrated := New(kv, events.New(), cart.New(kv, events.New()))
	require.False(t, rehydrated.IsAuthenticated())
}

func TestLogoutIsIdempotent(t *testing.T) {
	sess, _, _, bus := newTestSession()
	fired := 0
	bus.Subscribe(events.SessionChanged, func() { fired++ })

	sess.Logout()
	sess.Logout()

	require.False(t, sess.IsAuthenticated())
	require.Equal(t, 2, fired, "logout re-publishes even when already logged out")
}

func TestHydrationRestoresSession(t *testing.T) {
	kv := storage.NewMemoryStore()
	bus := events.New()
	first := New(kv, bus, cart.New(kv, bus))
	first.Login(testUser, "token-abc")

	second := New(kv, events.New(), cart.New(kv, events.New()))
	require.True(t, second.IsAuthenticated())
	user, ok := second.CurrentUser()
	require.True(t, ok)
	require.Equal(t, testUser, user)
	require.Equal(t, "token-abc", second.Token())
}

func TestHydrationDropsPartialSession(t *testing.T) {
	kv := storage.NewMemoryStore()
	kv.Set(KeyAccessToken, "orphan-token")
	// No user key: half a session must not survive hydration.

	sess := New(kv, events.New(), cart.New(kv, events.New()))
	require.False(t, sess.IsAuthenticated())
	_, ok := kv.Get(KeyAccessToken)
	require.False(t, ok)
}

func TestSelectedOutletScopedToSession(t *testing.T) {
	sess, _, _, _ := newTestSession()
	require.Zero(t, sess.SelectedOutlet(), "zero means no scope")

	sess.SetSelectedOutlet(3)
	require.Equal(t, 3, sess.SelectedOutlet())
}

func TestClaimsPeeksUnverified(t *testing.T) {
	sess, _, _, _ := newTestSession()

	_, ok := sess.Claims()
	require.False(t, ok, "no token, no claims")

	// Unsigned-but-well-formed JWT: header {alg:HS256,typ:JWT},
	// payload {sub:1,role:"customer"}.
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOjEsInJvbGUiOiJjdXN0b21lciJ9." +
		"bm90LWEtcmVhbC1zaWduYXR1cmU"
	sess.Login(testUser, token)

	claims, ok := sess.Claims()
	require.True(t, ok)
	require.Equal(t, "customer", claims["role"])
}
