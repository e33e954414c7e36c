package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http/middleware"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
)

// AuthHandler covers signup, login and self-service account changes.
type AuthHandler struct {
	signup *usecase.Signup
	login  *usecase.Login
	update *usecase.UpdateAccount
	delete *usecase.DeleteAccount
}

func NewAuthHandler(signup *usecase.Signup, login *usecase.Login, update *usecase.UpdateAccount, del *usecase.DeleteAccount) *AuthHandler {
	return &AuthHandler{signup: signup, login: login, update: update, delete: del}
}

type signupReq struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	VerifyPassword string `json:"verify_password" binding:"required"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateAccountReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Username        string `json:"username"`
	NewPassword     string `json:"new_password"`
	VerifyPassword  string `json:"verify_password"`
}

type deleteAccountReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if _, err := h.signup.Execute(ctx, req.Username, req.Password, req.VerifyPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match."})
		case errors.Is(err, usecase.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken."})
		case errors.Is(err, usecase.ErrBadCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created! Please log in."})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password."})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	// the guest cart does not follow the user through login
	out, err := h.login.Execute(ctx, req.Username, req.Password, middleware.GuestScope(c))
	if err != nil {
		if errors.Is(err, usecase.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": out.Token,
		"token_type":   "Bearer",
		"expires_in":   out.ExpiresIn,
		"role":         string(out.User.Role),
	})
}

// UpdateAccount handles POST /api/auth/account
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_request"})
		return
	}
	var req updateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	err := h.update.Execute(ctx, usecase.UpdateAccountInput{
		UserID:          id.UserID,
		CurrentPassword: req.CurrentPassword,
		NewName:         req.Username,
		NewPassword:     req.NewPassword,
		VerifyPassword:  req.VerifyPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadCredentials):
			c.JSON(http.StatusForbidden, gin.H{"message": "Wrong password"})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
		case errors.Is(err, usecase.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}
	// credentials changed; existing tokens should be re-acquired
	c.JSON(http.StatusOK, gin.H{"message": "Account updated."})
}

// DeleteAccount handles DELETE /api/auth/account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_request"})
		return
	}
	var req deleteAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.delete.Execute(ctx, id.UserID, req.CurrentPassword); err != nil {
		if errors.Is(err, usecase.ErrBadCredentials) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Incorrect password. Account not deleted."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You have been deleted"})
}
