package models

type OrderStatus string

const (
	// Order statuses (food-court kitchen flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting the outlet
	OrderStatusPreparing OrderStatus = "preparing" // Outlet is cooking
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup
	OrderStatusDelivered OrderStatus = "delivered" // Handed to the customer

	// OrderStatusFailed marks an order whose items could not all be
	// attached. Such orders are surfaced for manual reconciliation.
	OrderStatusFailed OrderStatus = "failed"
)

// next maps each status to the one that follows it in the kitchen flow.
var next = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusDelivered,
}

// CanTransitionTo reports whether an owner may move an order from s to
// target. Besides the forward flow, any non-pending order may be reset
// back to pending; there is no terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderStatusPending {
		return s != OrderStatusPending
	}
	return next[s] == target
}

// Next returns the forward transition for s, or false when the only
// move left is a reset.
func (s OrderStatus) Next() (OrderStatus, bool) {
	n, ok := next[s]
	return n, ok
}

type Order struct {
	ID         int         `json:"id"`
	UserID     int         `json:"user_id"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status"`
	CreatedAt  string      `json:"created_at,omitempty"`
}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menuitem_id"`
	Quantity   int     `json:"quantity"`
	SubTotal   float64 `json:"sub_total"`
}
