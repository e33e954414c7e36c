package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public product listing.
type CatalogHandler struct {
	products usecase.ProductRepo
}

func NewCatalogHandler(products usecase.ProductRepo) *CatalogHandler {
	return &CatalogHandler{products: products}
}

type productResp struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Category    string   `json:"category"`
	Stock       int64    `json:"stock"`
	ImageURLs   []string `json:"image_urls"`
	Tags        []string `json:"tags"`
}

func toProductResp(p domain.Product) productResp {
	return productResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Category:    string(p.Category),
		Stock:       p.Stock,
		ImageURLs:   p.ImageURLs,
		Tags:        p.Tags,
	}
}

// List handles GET /api/catalog?q=&sort=
func (h *CatalogHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	q := usecase.ProductQuery{
		Search: c.Query("q"),
		Sort:   usecase.ProductSort(c.DefaultQuery("sort", string(usecase.SortName))),
	}
	products, err := h.products.List(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResp(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out, "q": q.Search, "sort": string(q.Sort)})
}

// Get handles GET /api/catalog/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	p, err := h.products.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, toProductResp(*p))
}
