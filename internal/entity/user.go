package domain

import (
	"errors"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrInvalidUser = errors.New("invalid user")

type User struct {
	ID           string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Name == "" || u.PasswordHash == "" {
		return ErrInvalidUser
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return ErrInvalidUser
	}
	return nil
}
