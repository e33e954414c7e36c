package usecase

import (
	"context"
	"testing"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	carts := newMemCarts()
	signup := NewSignup(users, plainHasher{})
	login := NewLogin(users, plainHasher{}, staticTokens{}, carts)

	u, err := signup.Execute(ctx, "alice", "s3cret", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)

	// duplicate username
	_, err = signup.Execute(ctx, "alice", "other", "other")
	assert.ErrorIs(t, err, ErrConflict)

	// password mismatch
	_, err = signup.Execute(ctx, "bob", "a", "b")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// guest cart is cleared on login
	require.NoError(t, carts.Add(ctx, "s:guest", "prod_101", 3))
	out, err := login.Execute(ctx, "alice", "s3cret", "s:guest")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, u.ID, out.User.ID)
	entries, err := carts.Entries(ctx, "s:guest")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// wrong password and unknown user look identical to the caller
	_, err = login.Execute(ctx, "alice", "wrong", "")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, err = login.Execute(ctx, "nobody", "s3cret", "")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	signup := NewSignup(users, plainHasher{})
	update := NewUpdateAccount(users, plainHasher{})

	u, err := signup.Execute(ctx, "alice", "s3cret", "s3cret")
	require.NoError(t, err)

	// wrong current password
	err = update.Execute(ctx, UpdateAccountInput{UserID: u.ID, CurrentPassword: "nope", NewName: "al"})
	assert.ErrorIs(t, err, ErrBadCredentials)

	// rename + password change
	err = update.Execute(ctx, UpdateAccountInput{
		UserID:          u.ID,
		CurrentPassword: "s3cret",
		NewName:         "al",
		NewPassword:     "newpass",
		VerifyPassword:  "newpass",
	})
	require.NoError(t, err)

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "al", got.Name)
	ok, _ := plainHasher{}.Verify(got.PasswordHash, "newpass")
	assert.True(t, ok)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	signup := NewSignup(users, plainHasher{})
	del := NewDeleteAccount(users, plainHasher{})

	u, err := signup.Execute(ctx, "alice", "s3cret", "s3cret")
	require.NoError(t, err)

	err = del.Execute(ctx, u.ID, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	require.NoError(t, del.Execute(ctx, u.ID, "s3cret"))
	_, err = users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
