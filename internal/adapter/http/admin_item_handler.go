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

// AdminItemHandler manages the catalog from the admin console.
type AdminItemHandler struct {
	products usecase.ProductRepo
}

func NewAdminItemHandler(products usecase.ProductRepo) *AdminItemHandler {
	return &AdminItemHandler{products: products}
}

type itemReq struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Category    string   `json:"category"`
	Stock       int64    `json:"stock"`
	ImageURLs   []string `json:"image_urls"`
	Tags        []string `json:"tags"`
}

func (r itemReq) toProduct(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Category:    domain.Category(r.Category),
		Stock:       r.Stock,
		ImageURLs:   r.ImageURLs,
		Tags:        r.Tags,
	}
}

// Create handles POST /api/admin/items.
func (h *AdminItemHandler) Create(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := req.toProduct(uuid.NewString())
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.products.Create(ctx, &p); err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "item already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": p.ID})
}

// Update handles PUT /api/admin/items/:id. The body carries the full
// item; partial updates are not supported.
func (h *AdminItemHandler) Update(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := req.toProduct(c.Param("id"))
	if err := p.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.products.Update(ctx, &p); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/items/:id.
func (h *AdminItemHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.products.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
