package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminDiscountHandler manages discount codes.
type AdminDiscountHandler struct {
	discounts usecase.DiscountRepo
}

func NewAdminDiscountHandler(discounts usecase.DiscountRepo) *AdminDiscountHandler {
	return &AdminDiscountHandler{discounts: discounts}
}

type adminDiscountReq struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	Active          *bool   `json:"active"`
	Description     string  `json:"description"`
}

type discountResp struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	Active          bool    `json:"active"`
	Description     string  `json:"description"`
}

func (r adminDiscountReq) toDiscount(id string) domain.DiscountCode {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.DiscountCode{
		ID:          id,
		Code:        domain.NormalizeCode(r.Code),
		PercentOff:  r.DiscountPercent,
		Active:      active,
		Description: r.Description,
	}
}

// List handles GET /api/admin/discounts.
func (h *AdminDiscountHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	codes, err := h.discounts.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	out := make([]discountResp, 0, len(codes))
	for _, d := range codes {
		out = append(out, discountResp{
			ID:              d.ID,
			Code:            d.Code,
			DiscountPercent: d.PercentOff,
			Active:          d.Active,
			Description:     d.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"discounts": out})
}

// Create handles POST /api/admin/discounts.
func (h *AdminDiscountHandler) Create(c *gin.Context) {
	var req adminDiscountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d := req.toDiscount(uuid.NewString())
	if err := d.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount percent must be between 0 and 100."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.discounts.Create(ctx, &d); err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "inserted_id": d.ID})
}

// Update handles PUT /api/admin/discounts/:id.
func (h *AdminDiscountHandler) Update(c *gin.Context) {
	var req adminDiscountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d := req.toDiscount(c.Param("id"))
	if err := d.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount percent must be between 0 and 100."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.discounts.Update(ctx, &d); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/discounts/:id.
func (h *AdminDiscountHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.discounts.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
