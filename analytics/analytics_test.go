package analytics

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

func TestComputeScopesToOutlet(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	menuItems := []models.MenuItem{
		{ID: 1, Name: "Pilau", OutletID: 10},
		{ID: 2, Name: "Biryani", OutletID: 10},
		{ID: 3, Name: "Butter Chicken", OutletID: 20}, // other outlet
	}
	orders := []models.Order{
		{ID: 100, TotalPrice: 700, Status: models.OrderStatusDelivered, CreatedAt: "2025-06-15 12:30:00"},
		{ID: 101, TotalPrice: 350, Status: models.OrderStatusPending, CreatedAt: "2025-06-14 19:00:00"},
		{ID: 102, TotalPrice: 650, Status: models.OrderStatusDelivered, CreatedAt: "2025-06-15 13:00:00"}, // outlet 20 only
	}
	orderItems := []models.OrderItem{
		{ID: 1, OrderID: 100, MenuItemID: 1, Quantity: 2},
		{ID: 2, OrderID: 101, MenuItemID: 2, Quantity: 1},
		{ID: 3, OrderID: 102, MenuItemID: 3, Quantity: 1},
	}
	reservations := []models.Reservation{{ID: 1}, {ID: 2}}

	stats := Compute(10, menuItems, orders, orderItems, reservations, now)

	require.Equal(t, 10, stats.OutletID)
	require.Equal(t, 2, stats.TotalOrders, "order 102 belongs to the other outlet")
	require.Equal(t, 1, stats.OrdersToday)
	require.Equal(t, 1, stats.CompletedOrders)
	require.Equal(t, 1050.0, stats.TotalRevenue)
	require.Equal(t, 2, stats.Reservations)
	require.Equal(t, "Pilau", stats.MostOrderedDish)
}

func TestComputeEmptyInputs(t *testing.T) {
	stats := Compute(10, nil, nil, nil, nil, time.Now())

	require.Zero(t, stats.TotalOrders)
	require.Zero(t, stats.TotalRevenue)
	require.Empty(t, stats.MostOrderedDish)
}

func TestExportXLSX(t *testing.T) {
	stats := []OutletStats{
		{OutletID: 10, TotalOrders: 2, TotalRevenue: 1050, MostOrderedDish: "Pilau"},
		{OutletID: 20, TotalOrders: 1, TotalRevenue: 650, MostOrderedDish: "Butter Chicken"},
	}

	var buf bytes.Buffer
	err := ExportXLSX(&buf, stats, time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
	// XLSX is a zip container.
	require.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
