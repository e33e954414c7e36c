package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/google/uuid"
)

// Checkout is the one-shot transition from cart to order: snapshot the
// priced cart, persist it, clear the session state, announce the order.
type Checkout struct {
	orders  OrderRepo
	carts   CartStore
	compute *ComputeCart
	queue   OrderEvents // fulfillment (RabbitMQ); may be nil
	stream  OrderEvents // analytics (Kafka); may be nil
	log     *slog.Logger
}

func NewCheckout(orders OrderRepo, carts CartStore, compute *ComputeCart, queue, stream OrderEvents, log *slog.Logger) *Checkout {
	return &Checkout{orders: orders, carts: carts, compute: compute, queue: queue, stream: stream, log: log}
}

func (uc *Checkout) Execute(ctx context.Context, scope, owner string) (string, error) {
	comp, err := uc.compute.Execute(ctx, scope)
	if err != nil {
		return "", err
	}
	if comp.Empty() {
		return "", ErrEmptyCart
	}

	order := domain.NewOrder(uuid.NewString(), owner, comp, time.Now().UTC())
	if err := uc.orders.Create(ctx, order); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	if err := uc.carts.Clear(ctx, scope); err != nil {
		// the order is already persisted at this point
		uc.log.Warn("cart clear failed after checkout", "order_id", order.ID, "error", err)
	}

	msg := OrderPlacedMsg{
		OrderID:      order.ID,
		Owner:        order.Owner,
		ItemCount:    order.ItemCount,
		TotalCents:   order.TotalCents,
		DiscountCode: order.DiscountCode,
		CreatedAt:    order.CreatedAt,
	}
	if uc.queue != nil {
		if err := uc.queue.OrderPlaced(ctx, msg); err != nil {
			uc.log.Warn("fulfillment publish failed", "order_id", order.ID, "error", err)
		}
	}
	if uc.stream != nil {
		if err := uc.stream.OrderPlaced(ctx, msg); err != nil {
			uc.log.Warn("analytics publish failed", "order_id", order.ID, "error", err)
		}
	}

	return order.ID, nil
}
