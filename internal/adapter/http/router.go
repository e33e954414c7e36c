package http

import (
	"log/slog"

	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http/middleware"
	"github.com/Khaoshimself/online-shopping-site/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Catalog        *CatalogHandler
	Cart           *CartHandler
	Auth           *AuthHandler
	Order          *OrderHandler
	AdminItems     *AdminItemHandler
	AdminDiscounts *AdminDiscountHandler
	AdminOrders    *AdminOrderHandler
	AdminUsers     *AdminUserHandler
}

func NewRouter(h Handlers, authz *middleware.Authz, httpLog *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())
	r.Use(middleware.Logging(httpLog))
	r.Use(authz.Identify(), middleware.Session())

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/catalog", h.Catalog.List)
		api.GET("/catalog/:id", h.Catalog.Get)

		api.GET("/cart", h.Cart.Get)
		api.POST("/cart/add", h.Cart.Add)
		api.POST("/cart/update", h.Cart.Update)
		api.POST("/cart/remove", h.Cart.Remove)
		api.POST("/cart/apply-discount", h.Cart.ApplyDiscount)
		api.POST("/cart/checkout", authz.RequireUser(), h.Cart.Checkout)

		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/account", authz.RequireUser(), h.Auth.UpdateAccount)
		api.DELETE("/auth/account", authz.RequireUser(), h.Auth.DeleteAccount)

		api.GET("/orders/:id", authz.RequireUser(), h.Order.Get)
		api.GET("/orders/:id/summary", authz.RequireUser(), h.Order.Summary)
	}

	admin := r.Group("/api/admin", authz.RequireAdmin())
	{
		admin.POST("/items", h.AdminItems.Create)
		admin.PUT("/items/:id", h.AdminItems.Update)
		admin.DELETE("/items/:id", h.AdminItems.Delete)

		admin.GET("/discounts", h.AdminDiscounts.List)
		admin.POST("/discounts", h.AdminDiscounts.Create)
		admin.PUT("/discounts/:id", h.AdminDiscounts.Update)
		admin.DELETE("/discounts/:id", h.AdminDiscounts.Delete)

		admin.GET("/orders", h.AdminOrders.List)

		admin.GET("/users", h.AdminUsers.List)
		admin.PUT("/users/:id", h.AdminUsers.Update)
		admin.DELETE("/users/:id", h.AdminUsers.Delete)
	}

	return r
}
