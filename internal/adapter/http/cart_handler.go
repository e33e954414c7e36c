package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http/middleware"
	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/logging"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

// CartHandler serves the session cart API consumed by the storefront
// scripts.
type CartHandler struct {
	compute  *usecase.ComputeCart
	mutate   *usecase.MutateCart
	discount *usecase.ApplyDiscount
	checkout *usecase.Checkout
}

func NewCartHandler(compute *usecase.ComputeCart, mutate *usecase.MutateCart, discount *usecase.ApplyDiscount, checkout *usecase.Checkout) *CartHandler {
	return &CartHandler{compute: compute, mutate: mutate, discount: discount, checkout: checkout}
}

type cartItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

type removeItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
}

type discountReq struct {
	Code string `json:"code" binding:"required"`
}

// Get handles GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	comp, err := h.compute.Execute(ctx, middleware.CartScope(c))
	if err != nil {
		logging.From(c).Error("cart computation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, comp)
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	comp, err := h.mutate.Add(ctx, middleware.CartScope(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product."})
			return
		}
		logging.From(c).Error("cart add failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": comp, "cart_item_count": comp.ItemCount})
}

// Update handles POST /api/cart/update; quantity <= 0 removes the entry.
func (h *CartHandler) Update(c *gin.Context) {
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	comp, err := h.mutate.Update(ctx, middleware.CartScope(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product."})
			return
		}
		logging.From(c).Error("cart update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, comp)
}

// Remove handles POST /api/cart/remove
func (h *CartHandler) Remove(c *gin.Context) {
	var req removeItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	comp, err := h.mutate.Remove(ctx, middleware.CartScope(c), req.ProductID)
	if err != nil {
		logging.From(c).Error("cart remove failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, comp)
}

// ApplyDiscount handles POST /api/cart/apply-discount
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var req discountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	comp, err := h.discount.Execute(ctx, middleware.CartScope(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not apply code."})
		case errors.Is(err, usecase.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Your cart is empty."})
		default:
			logging.From(c).Error("apply discount failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}
	middleware.CountDiscountApplied(comp.DiscountCode)
	c.JSON(http.StatusOK, comp)
}

// Checkout handles POST /api/cart/checkout; requires an authenticated
// user, the owner recorded on the order.
func (h *CartHandler) Checkout(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.checkout.Execute(ctx, middleware.CartScope(c), id.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Your cart is empty."})
			return
		}
		logging.From(c).Error("checkout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	middleware.CountOrderPlaced()
	c.JSON(http.StatusCreated, gin.H{
		"order_id": orderID,
		"status":   string(domain.StatusPending),
	})
}
