package usecase

import (
	"context"
	"testing"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxRate = 0.0825

func testProducts() *memProducts {
	return newMemProducts(
		domain.Product{ID: "prod_101", Name: "Organic Honey", PriceCents: 999, Category: domain.CategoryPantry, Stock: 25},
		domain.Product{ID: "prod_102", Name: "Artisan Bread", PriceCents: 449, Category: domain.CategoryBakery, Stock: 40},
		domain.Product{ID: "prod_103", Name: "Texas Olive Oil", PriceCents: 1499, Category: domain.CategoryPantry, Stock: 15},
	)
}

func TestComputeCartPricesStoredEntries(t *testing.T) {
	ctx := context.Background()
	carts := newMemCarts()
	uc := NewComputeCart(testProducts(), carts, taxRate)

	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))
	require.NoError(t, carts.Add(ctx, "s1", "prod_102", 1))

	comp, err := uc.Execute(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2447), comp.SubtotalCents)
	assert.Equal(t, int64(202), comp.TaxCents)
	assert.Equal(t, int64(2649), comp.TotalCents)
}

func TestComputeCartReappliesStoredDiscount(t *testing.T) {
	ctx := context.Background()
	carts := newMemCarts()
	uc := NewComputeCart(testProducts(), carts, taxRate)

	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))
	require.NoError(t, carts.Add(ctx, "s1", "prod_102", 1))
	require.NoError(t, carts.SetDiscount(ctx, "s1", "WELCOME10", 10))

	comp, err := uc.Execute(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(245), comp.DiscountCents)
	assert.Equal(t, int64(2384), comp.TotalCents)
	assert.Equal(t, "WELCOME10", comp.DiscountCode)
}

func TestComputeCartDropsDeletedProduct(t *testing.T) {
	ctx := context.Background()
	carts := newMemCarts()
	products := testProducts()
	uc := NewComputeCart(products, carts, taxRate)

	require.NoError(t, carts.Add(ctx, "s1", "prod_101", 2))
	require.NoError(t, carts.Add(ctx, "s1", "prod_103", 1))
	require.NoError(t, products.Delete(ctx, "prod_103"))

	comp, err := uc.Execute(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, comp.Items, 1)
	assert.Equal(t, int64(1998), comp.SubtotalCents)
}

func TestComputeCartEmptyClearsOrphanedDiscount(t *testing.T) {
	ctx := context.Background()
	carts := newMemCarts()
	uc := NewComputeCart(testProducts(), carts, taxRate)

	require.NoError(t, carts.SetDiscount(ctx, "s1", "WELCOME10", 10))

	comp, err := uc.Execute(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, comp.Empty())
	assert.Zero(t, comp.TotalCents)

	_, _, ok, err := carts.Discount(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMutateCartAddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	carts := newMemCarts()
	products := testProducts()
	compute := NewComputeCart(products, carts, taxRate)
	uc := NewMutateCart(products, carts, compute)

	comp, err := uc.Add(ctx, "s1", "prod_101", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), comp.ItemCount)

	// adding again increments
	comp, err = uc.Add(ctx, "s1", "prod_101", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), comp.ItemCount)

	// unknown products are rejected at add time
	_, err = uc.Add(ctx, "s1", "nope", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// update sets outright
	comp, err = uc.Update(ctx, "s1", "prod_101", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), comp.ItemCount)

	// zero quantity removes
	comp, err = uc.Update(ctx, "s1", "prod_101", 0)
	require.NoError(t, err)
	assert.True(t, comp.Empty())

	comp, err = uc.Add(ctx, "s1", "prod_102", 1)
	require.NoError(t, err)
	comp, err = uc.Remove(ctx, "s1", "prod_102")
	require.NoError(t, err)
	assert.True(t, comp.Empty())
}
