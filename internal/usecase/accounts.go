package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/google/uuid"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// Signup registers a new account. Usernames are unique; new accounts
// always get the plain user role, admins are promoted via the admin
// console.
type Signup struct {
	users  UserRepo
	hasher PasswordHasher
}

func NewSignup(users UserRepo, hasher PasswordHasher) *Signup {
	return &Signup{users: users, hasher: hasher}
}

func (uc *Signup) Execute(ctx context.Context, name, password, verify string) (*domain.User, error) {
	if name == "" || password == "" {
		return nil, ErrBadCredentials
	}
	if password != verify {
		return nil, ErrPasswordMismatch
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and mints a bearer token. The session cart
// the caller was shopping with as a guest is cleared, matching the
// fresh-cart-on-login behavior of the storefront.
type Login struct {
	users  UserRepo
	hasher PasswordHasher
	tokens TokenIssuer
	carts  CartStore
}

func NewLogin(users UserRepo, hasher PasswordHasher, tokens TokenIssuer, carts CartStore) *Login {
	return &Login{users: users, hasher: hasher, tokens: tokens, carts: carts}
}

type LoginOutput struct {
	User      *domain.User
	Token     string
	ExpiresIn int64
}

func (uc *Login) Execute(ctx context.Context, name, password, guestScope string) (LoginOutput, error) {
	u, err := uc.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginOutput{}, ErrBadCredentials
		}
		return LoginOutput{}, fmt.Errorf("lookup user: %w", err)
	}
	ok, err := uc.hasher.Verify(u.PasswordHash, password)
	if err != nil || !ok {
		return LoginOutput{}, ErrBadCredentials
	}
	token, expiresIn, err := uc.tokens.Issue(u)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("issue token: %w", err)
	}
	if guestScope != "" {
		_ = uc.carts.Clear(ctx, guestScope)
	}
	return LoginOutput{User: u, Token: token, ExpiresIn: expiresIn}, nil
}

// UpdateAccount changes username and/or password after re-checking the
// current password.
type UpdateAccount struct {
	users  UserRepo
	hasher PasswordHasher
}

func NewUpdateAccount(users UserRepo, hasher PasswordHasher) *UpdateAccount {
	return &UpdateAccount{users: users, hasher: hasher}
}

type UpdateAccountInput struct {
	UserID          string
	CurrentPassword string
	NewName         string
	NewPassword     string
	VerifyPassword  string
}

func (uc *UpdateAccount) Execute(ctx context.Context, in UpdateAccountInput) error {
	u, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	ok, err := uc.hasher.Verify(u.PasswordHash, in.CurrentPassword)
	if err != nil || !ok {
		return ErrBadCredentials
	}

	if in.NewPassword != "" {
		if in.NewPassword != in.VerifyPassword {
			return ErrPasswordMismatch
		}
		hash, err := uc.hasher.Hash(in.NewPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	if in.NewName != "" {
		u.Name = in.NewName
	}
	if err := uc.users.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteAccount removes the caller's own account after a password
// check.
type DeleteAccount struct {
	users  UserRepo
	hasher PasswordHasher
}

func NewDeleteAccount(users UserRepo, hasher PasswordHasher) *DeleteAccount {
	return &DeleteAccount{users: users, hasher: hasher}
}

func (uc *DeleteAccount) Execute(ctx context.Context, userID, currentPassword string) error {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	ok, err := uc.hasher.Verify(u.PasswordHash, currentPassword)
	if err != nil || !ok {
		return ErrBadCredentials
	}
	if err := uc.users.Delete(ctx, u.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
