package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nextgen-foodcourt/foodcourt-client/cart"
	"github.com/nextgen-foodcourt/foodcourt-client/events"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
	"github.com/nextgen-foodcourt/foodcourt-client/session"
	"github.com/nextgen-foodcourt/foodcourt-client/storage"
)

type fixture struct {
	client *Client
	sess   *session.Store
	cart   *cart.Store
	bus    *events.Bus
}

// newFixture wires a real session/cart over an in-memory store against
// the given handler, the same composition the binary uses.
func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	kv := storage.NewMemoryStore()
	bus := events.New()
	cartStore := cart.New(kv, bus)
	sess := session.New(kv, bus, cartStore)
	client := New(Config{BaseURL: server.URL, Session: sess})
	return &fixture{client: client, sess: sess, cart: cartStore, bus: bus}
}

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	// Not logged in: no header at all.
	require.NoError(t, f.client.Request(context.Background(), http.MethodGet, "/cuisines", nil, nil))
	require.Empty(t, gotAuth)

	f.sess.Login(models.User{ID: 1}, "token-abc")
	require.NoError(t, f.client.Request(context.Background(), http.MethodGet, "/cuisines", nil, nil))
	require.Equal(t, "Bearer token-abc", gotAuth)
}

func TestRequestDecodesResponse(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Swahili"},{"id":2,"name":"Indian"}]`))
	}))

	cuisines, err := f.client.ListCuisines(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.Cuisine{{ID: 1, Name: "Swahili"}, {ID: 2, Name: "Indian"}}, cuisines)
}

func TestNon2xxBecomesHTTPError(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Outlet not found."}`))
	}))

	_, err := f.client.GetOutlet(context.Background(), 99)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Outlet not found.", httpErr.Message)
}

func TestUnauthorizedForcesLogout(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid or expired token"}`))
	}))

	f.sess.Login(models.User{ID: 1, Role: models.RoleCustomer}, "stale-token")
	f.cart.AddItem(1, "Biryani", 450, "Mama Ntilie")

	sessionChanged := false
	f.bus.Subscribe(events.SessionChanged, func() { sessionChanged = true })

	_, err := f.client.ListOrders(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.False(t, f.sess.IsAuthenticated(), "401 must tear the session down before the error returns")
	require.Zero(t, f.cart.Count())
	require.True(t, sessionChanged)
}

func TestLoginRejectionIsNotAForcedLogout(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"), "/login is a public call")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))

	// An existing session must survive someone mistyping a password.
	f.sess.Login(models.User{ID: 1}, "good-token")

	_, err := f.client.Login(context.Background(), "brian@foodcourt.dev", "wrong")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, "Invalid credentials", httpErr.Message)
	require.True(t, f.sess.IsAuthenticated())
}

func TestTransportFailureBecomesNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	kv := storage.NewMemoryStore()
	bus := events.New()
	sess := session.New(kv, bus, cart.New(kv, bus))
	client := New(Config{BaseURL: server.URL, Session: sess})
	server.Close()

	err := client.Request(context.Background(), http.MethodGet, "/cuisines", nil, nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestListAvailableTablesFiltersClientSide(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"table_number":"T1","is_available":"Yes"},
			{"id":2,"table_number":"T2","is_available":"No"},
			{"id":3,"table_number":"T3","is_available":"Yes"}
		]`))
	}))

	tables, err := f.client.ListAvailableTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)
	require.Equal(t, 1, tables[0].ID)
	require.Equal(t, 3, tables[1].ID)
}
