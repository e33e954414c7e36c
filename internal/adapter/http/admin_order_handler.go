package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

const ordersPerPage = 25

// AdminOrderHandler serves the paginated order review listing.
type AdminOrderHandler struct {
	orders usecase.OrderRepo
}

func NewAdminOrderHandler(orders usecase.OrderRepo) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders}
}

// List handles GET /api/admin/orders?page=&sort=&sort_direction=&status=.
// Pages are zero-based, 25 orders each. sort_direction 0 is newest or
// largest first; 1 flips it.
func (h *AdminOrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	dir, _ := strconv.Atoi(c.DefaultQuery("sort_direction", "0"))

	q := usecase.OrderQuery{
		Page:      page,
		PerPage:   ordersPerPage,
		Sort:      usecase.OrderSort(c.DefaultQuery("sort", string(usecase.OrderSortDate))),
		Ascending: dir == 1,
		Status:    c.DefaultQuery("status", "any"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, total, err := h.orders.List(ctx, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	out := make([]orderResp, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResp(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":         out,
		"page":           q.Page,
		"total_pages":    (total + ordersPerPage - 1) / ordersPerPage,
		"sort":           string(q.Sort),
		"sort_direction": dir,
		"status":         q.Status,
	})
}
