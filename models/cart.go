package models

import "time"

// CartLine is one dish entry in the customer's in-progress order. Field
// names on the wire match what the web client historically persisted.
type CartLine struct {
	DishID     int     `json:"dishId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	OutletName string  `json:"restaurantName"`
	Notes      string  `json:"notes,omitempty"`
}

// CartSnapshot captures the full cart state at checkout time. It is a
// deep copy: mutating the live cart after the snapshot was taken never
// affects an in-flight submission.
type CartSnapshot struct {
	Lines      []CartLine `json:"items"`
	TotalPrice float64    `json:"total_price"`
	CapturedAt time.Time  `json:"captured_at"`
}
