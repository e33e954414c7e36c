package usecase

import (
	"context"
	"testing"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiscounts() *memDiscounts {
	return newMemDiscounts(
		domain.DiscountCode{ID: "d1", Code: "WELCOME10", PercentOff: 10, Active: true},
		domain.DiscountCode{ID: "d2", Code: "HEB5", PercentOff: 5, Active: true},
		domain.DiscountCode{ID: "d3", Code: "RETIRED20", PercentOff: 20, Active: false},
	)
}

func setupApply(t *testing.T) (*ApplyDiscount, *ComputeCart, *memCarts) {
	t.Helper()
	carts := newMemCarts()
	compute := NewComputeCart(testProducts(), carts, taxRate)
	return NewApplyDiscount(testDiscounts(), carts, compute), compute, carts
}

func TestApplyDiscount(t *testing.T) {
	ctx := context.Background()
	uc, _, carts := setupApply(t)
	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))
	require.NoError(t, carts.Add(ctx, "s1", "prod_102", 1))

	comp, err := uc.Execute(ctx, "s1", "welcome10") // lower case on purpose
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", comp.DiscountCode)
	assert.Equal(t, int64(245), comp.DiscountCents)
	assert.Equal(t, int64(2384), comp.TotalCents)

	// discount persists in session state
	code, percent, ok, err := carts.Discount(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "WELCOME10", code)
	assert.Equal(t, float64(10), percent)
}

func TestApplyDiscountReplacesStored(t *testing.T) {
	ctx := context.Background()
	uc, _, carts := setupApply(t)
	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))

	_, err := uc.Execute(ctx, "s1", "WELCOME10")
	require.NoError(t, err)
	comp, err := uc.Execute(ctx, "s1", "HEB5")
	require.NoError(t, err)

	// no stacking: latest code wins
	assert.Equal(t, "HEB5", comp.DiscountCode)
	assert.Equal(t, float64(5), comp.DiscountPercent)
	assert.Equal(t, int64(100), comp.DiscountCents) // 1998 * 5% = 99.9
}

func TestApplyDiscountInvalidCode(t *testing.T) {
	ctx := context.Background()
	uc, compute, carts := setupApply(t)
	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))

	before, err := compute.Execute(ctx, "s1")
	require.NoError(t, err)

	for _, code := range []string{"NOPE", "RETIRED20", ""} {
		_, err := uc.Execute(ctx, "s1", code)
		assert.ErrorIs(t, err, ErrInvalidCode, "code %q", code)
	}

	// totals unchanged from the no-discount computation
	after, err := compute.Execute(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApplyDiscountEmptyCart(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setupApply(t)

	_, err := uc.Execute(ctx, "s1", "WELCOME10")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
