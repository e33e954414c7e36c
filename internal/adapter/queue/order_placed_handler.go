package queue

import (
	"context"
	"log/slog"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
)

// OrderPlacedHandler is the fulfillment-side worker: it warms the
// confirmation-page cache for each placed order. Deliveries may be
// redelivered, and the write is idempotent.
type OrderPlacedHandler struct {
	cache usecase.OrderCache
	log   *slog.Logger
}

func NewOrderPlacedHandler(cache usecase.OrderCache, log *slog.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{cache: cache, log: log}
}

// HandlePlaced is intended for use with JSONHandler[usecase.OrderPlacedMsg].
func (h *OrderPlacedHandler) HandlePlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	err := h.cache.SetSummary(ctx, msg.OrderID, usecase.OrderSummary{
		OrderID:    msg.OrderID,
		Owner:      msg.Owner,
		ItemCount:  msg.ItemCount,
		TotalCents: msg.TotalCents,
		Status:     string(domain.StatusPending),
	})
	if err != nil {
		return err
	}
	h.log.Info("order summary cached", "order_id", msg.OrderID, "total_cents", msg.TotalCents)
	return nil
}
