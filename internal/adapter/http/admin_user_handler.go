package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

const usersPerPage = 25

// AdminUserHandler manages accounts from the admin console. Unlike the
// self-service account routes it never asks for the current password.
type AdminUserHandler struct {
	users  usecase.UserRepo
	hasher usecase.PasswordHasher
}

func NewAdminUserHandler(users usecase.UserRepo, hasher usecase.PasswordHasher) *AdminUserHandler {
	return &AdminUserHandler{users: users, hasher: hasher}
}

type adminUserResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /api/admin/users?page=.
func (h *AdminUserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	users, total, err := h.users.List(ctx, page, usersPerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	out := make([]adminUserResp, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserResp{ID: u.ID, Name: u.Name, Role: string(u.Role), CreatedAt: u.CreatedAt})
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       out,
		"page":        page,
		"total_pages": (total + usersPerPage - 1) / usersPerPage,
	})
}

type adminEditUserReq struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
	Role        string `json:"role"`
}

// Update handles PUT /api/admin/users/:id. Empty fields keep their
// current value.
func (h *AdminUserHandler) Update(c *gin.Context) {
	var req adminEditUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	u, err := h.users.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User doesn't exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if req.Username != "" {
		u.Name = req.Username
	}
	if req.NewPassword != "" {
		hash, err := h.hasher.Hash(req.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
			return
		}
		u.PasswordHash = hash
	}
	if req.Role != "" {
		u.Role = domain.Role(req.Role)
	}
	if err := u.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.Update(ctx, u); err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// Delete handles DELETE /api/admin/users/:id.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.users.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User doesn't exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}
