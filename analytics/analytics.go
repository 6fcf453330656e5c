// Package analytics derives the owner-dashboard numbers from plain
// backend list responses. All aggregation happens client-side, the
// same way the dashboard computed it: no analytics endpoints exist.
package analytics

import (
	"strings"
	"time"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

// OutletStats is everything the owner dashboard shows for one outlet.
type OutletStats struct {
	OutletID        int
	TotalOrders     int
	OrdersToday     int
	CompletedOrders int
	TotalRevenue    float64
	Reservations    int
	MostOrderedDish string
}

// Compute scopes orders to the outlet by walking order items back to
// the outlet's menu, then aggregates. now anchors the "today" bucket.
func Compute(outletID int, menuItems []models.MenuItem, orders []models.Order, orderItems []models.OrderItem, reservations []models.Reservation, now time.Time) OutletStats {
	stats := OutletStats{OutletID: outletID, Reservations: len(reservations)}

	dishNames := make(map[int]string)
	for _, mi := range menuItems {
		if mi.OutletID == outletID {
			dishNames[mi.ID] = mi.Name
		}
	}

	// An order belongs to the outlet when any of its items references
	// one of the outlet's dishes.
	outletOrders := make(map[int]bool)
	dishCounts := make(map[int]int)
	for _, it := range orderItems {
		if _, ok := dishNames[it.MenuItemID]; !ok {
			continue
		}
		outletOrders[it.OrderID] = true
		dishCounts[it.MenuItemID] += it.Quantity
	}

	today := now.Format(models.BookingDateFormat)
	for _, o := range orders {
		if !outletOrders[o.ID] {
			continue
		}
		stats.TotalOrders++
		stats.TotalRevenue += o.TotalPrice
		if strings.HasPrefix(o.CreatedAt, today) {
			stats.OrdersToday++
		}
		if o.Status == models.OrderStatusDelivered {
			stats.CompletedOrders++
		}
	}

	best, bestCount := 0, 0
	for id, count := range dishCounts {
		if count > bestCount || (count == bestCount && id < best) {
			best, bestCount = id, count
		}
	}
	if bestCount > 0 {
		stats.MostOrderedDish = dishNames[best]
	}
	return stats
}
