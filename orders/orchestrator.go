// Package orders turns a cart snapshot into a committed backend order:
// one order record first, then every order item, concurrently.
package orders

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/nextgen-foodcourt/foodcourt-client/gateway"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

// API is the slice of the gateway the orchestrator drives.
type API interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (models.Order, error)
	CreateOrderItem(ctx context.Context, req gateway.CreateOrderItemRequest) (models.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id int, status models.OrderStatus) (models.Order, error)
}

type Orchestrator struct {
	api API
	log *slog.Logger
}

func New(api API, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{api: api, log: log}
}

// Result is the committed order with every item that was attached.
type Result struct {
	Order models.Order
	Items []models.OrderItem
}

// Submit creates the order record, then fans out one order-item call
// per snapshot line. The order strictly precedes the items, so an item
// never references an order that does not exist. If the order call
// fails, no items are attempted and the error propagates as-is. If any
// item call fails, the created order is marked failed (best effort) so
// it can be reconciled manually, and the underlying error is returned.
// Submit never touches the cart; callers clear it only on success.
func (o *Orchestrator) Submit(ctx context.Context, userID int, snap models.CartSnapshot) (*Result, error) {
	order, err := o.api.CreateOrder(ctx, gateway.CreateOrderRequest{
		UserID:     userID,
		TotalPrice: snap.TotalPrice,
		Status:     models.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, len(snap.Lines))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range snap.Lines {
		i, line := i, line
		g.Go(func() error {
			item, err := o.api.CreateOrderItem(gctx, gateway.CreateOrderItemRequest{
				OrderID:    order.ID,
				MenuItemID: line.DishID,
				Quantity:   line.Quantity,
				SubTotal:   subTotal(line),
			})
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.markFailed(ctx, order.ID)
		return nil, err
	}
	return &Result{Order: order, Items: items}, nil
}

// markFailed flags a partially submitted order for manual
// reconciliation. Best effort: the original item error is what the
// caller needs to see, not this.
func (o *Orchestrator) markFailed(ctx context.Context, orderID int) {
	_, err := o.api.UpdateOrderStatus(context.WithoutCancel(ctx), orderID, models.OrderStatusFailed)
	if err != nil {
		o.log.Error("could not mark order failed", "order_id", orderID, "error", err)
	}
}

func subTotal(line models.CartLine) float64 {
	return decimal.NewFromFloat(line.UnitPrice).
		Mul(decimal.NewFromInt(int64(line.Quantity))).
		InexactFloat64()
}
