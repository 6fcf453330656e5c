package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	PhoneNo  string      `json:"phone_no"`
	Role     models.Role `json:"role"`
}

type CreateOrderRequest struct {
	UserID     int                `json:"user_id"`
	TotalPrice float64            `json:"total_price"`
	Status     models.OrderStatus `json:"status"`
}

type CreateOrderItemRequest struct {
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menuitem_id"`
	Quantity   int     `json:"quantity"`
	SubTotal   float64 `json:"sub_total"`
}

type MenuItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	OutletID    int     `json:"outlet_id"`
}

type CreateReservationRequest struct {
	UserID      int    `json:"user_id"`
	TableID     int    `json:"table_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	NoOfPeople  int    `json:"no_of_people"`
	Status      string `json:"status,omitempty"`
	OrderID     *int   `json:"order_id,omitempty"`
}

// Login exchanges credentials for a session. Bad credentials come back
// as a 401 HTTPError — no local session exists yet, so nothing is
// invalidated.
func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	var sess models.Session
	err := c.do(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, &sess, true)
	return sess, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/register", req, &user, true)
	return user, err
}

// Logout tells the backend to blacklist the token. Local state is the
// session container's business; callers clear it regardless of whether
// this round-trip succeeds.
func (c *Client) Logout(ctx context.Context) error {
	return c.Request(ctx, http.MethodPost, "/logout", nil, nil)
}

func (c *Client) ListCuisines(ctx context.Context) ([]models.Cuisine, error) {
	var out []models.Cuisine
	err := c.Request(ctx, http.MethodGet, "/cuisines", nil, &out)
	return out, err
}

func (c *Client) ListOutlets(ctx context.Context) ([]models.Outlet, error) {
	var out []models.Outlet
	err := c.Request(ctx, http.MethodGet, "/outlets", nil, &out)
	return out, err
}

func (c *Client) GetOutlet(ctx context.Context, id int) (models.Outlet, error) {
	var out models.Outlet
	err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/outlets/%d", id), nil, &out)
	return out, err
}

func (c *Client) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	err := c.Request(ctx, http.MethodGet, "/menu-items", nil, &out)
	return out, err
}

func (c *Client) ListMenuItemsByOutlet(ctx context.Context, outletID int) ([]models.MenuItem, error) {
	var out []models.MenuItem
	err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/menu-items?outlet_id=%d", outletID), nil, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemInput) (models.MenuItem, error) {
	var out models.MenuItem
	err := c.Request(ctx, http.MethodPost, "/menu-items", req, &out)
	return out, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, req MenuItemInput) (models.MenuItem, error) {
	var out models.MenuItem
	err := c.Request(ctx, http.MethodPatch, fmt.Sprintf("/menu-items/%d", id), req, &out)
	return out, err
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/menu-items/%d", id), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.Request(ctx, http.MethodGet, "/orders", nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	var out models.Order
	err := c.Request(ctx, http.MethodPost, "/orders", req, &out)
	return out, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error) {
	var out models.Order
	body := map[string]models.OrderStatus{"status": status}
	err := c.Request(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id), body, &out)
	return out, err
}

func (c *Client) ListOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	var out []models.OrderItem
	err := c.Request(ctx, http.MethodGet, "/order-items", nil, &out)
	return out, err
}

func (c *Client) CreateOrderItem(ctx context.Context, req CreateOrderItemRequest) (models.OrderItem, error) {
	var out models.OrderItem
	err := c.Request(ctx, http.MethodPost, "/order-items", req, &out)
	return out, err
}

func (c *Client) ListTables(ctx context.Context) ([]models.Table, error) {
	var out []models.Table
	err := c.Request(ctx, http.MethodGet, "/tables", nil, &out)
	return out, err
}

// ListAvailableTables filters client-side, matching what the web
// client did with the same endpoint.
func (c *Client) ListAvailableTables(ctx context.Context) ([]models.Table, error) {
	tables, err := c.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	available := tables[:0]
	for _, t := range tables {
		if t.Available() {
			available = append(available, t)
		}
	}
	return available, nil
}

func (c *Client) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	err := c.Request(ctx, http.MethodGet, "/reservations", nil, &out)
	return out, err
}

func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (models.Reservation, error) {
	var out models.Reservation
	err := c.Request(ctx, http.MethodPost, "/reservations", req, &out)
	return out, err
}

func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil)
}
