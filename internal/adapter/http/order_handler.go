package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http/middleware"
	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order confirmation view.
type OrderHandler struct {
	orders  usecase.OrderRepo
	summary usecase.OrderCache // may be nil
}

func NewOrderHandler(orders usecase.OrderRepo, summary usecase.OrderCache) *OrderHandler {
	return &OrderHandler{orders: orders, summary: summary}
}

type orderResp struct {
	ID              string            `json:"id"`
	Owner           string            `json:"owner"`
	Items           []domain.LineItem `json:"items"`
	ItemCount       int64             `json:"item_count"`
	SubtotalCents   int64             `json:"subtotal_cents"`
	DiscountCents   int64             `json:"discount_cents"`
	DiscountCode    string            `json:"discount_code,omitempty"`
	DiscountPercent float64           `json:"discount_percent,omitempty"`
	TaxCents        int64             `json:"tax_cents"`
	TotalCents      int64             `json:"total_cents"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

func toOrderResp(o *domain.Order) orderResp {
	return orderResp{
		ID:              o.ID,
		Owner:           o.Owner,
		Items:           o.Items,
		ItemCount:       o.ItemCount,
		SubtotalCents:   o.SubtotalCents,
		DiscountCents:   o.DiscountCents,
		DiscountCode:    o.DiscountCode,
		DiscountPercent: o.DiscountPercent,
		TaxCents:        o.TaxCents,
		TotalCents:      o.TotalCents,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
}

// Get handles GET /api/orders/:id. Owner-or-admin only; orders are not
// public documents.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	order, err := h.orders.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if order.Owner != id.UserID && id.Role != domain.RoleAdmin {
		// hide existence from other users
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, toOrderResp(order))
}

// Summary handles GET /api/orders/:id/summary, the lightweight receipt
// view warmed by the fulfillment worker. Falls back to the orders table
// on a cache miss.
func (h *OrderHandler) Summary(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	orderID := c.Param("id")
	if h.summary != nil {
		if s, err := h.summary.GetSummary(ctx, orderID); err == nil {
			if s.Owner != id.UserID && id.Role != domain.RoleAdmin {
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
				return
			}
			c.JSON(http.StatusOK, s)
			return
		}
	}

	order, err := h.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if order.Owner != id.UserID && id.Role != domain.RoleAdmin {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, usecase.OrderSummary{
		OrderID:    order.ID,
		Owner:      order.Owner,
		ItemCount:  order.ItemCount,
		TotalCents: order.TotalCents,
		Status:     string(order.Status),
	})
}
