package usecase

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
)

// MutateCart covers the add/update/remove actions of the cart API.
// Every mutation returns the freshly priced cart so the client never
// has to do its own arithmetic.
type MutateCart struct {
	products ProductRepo
	carts    CartStore
	compute  *ComputeCart
}

func NewMutateCart(products ProductRepo, carts CartStore, compute *ComputeCart) *MutateCart {
	return &MutateCart{products: products, carts: carts, compute: compute}
}

// Add increments the quantity of a product in the cart. The product
// must exist at add time; afterwards a deleted product is tolerated and
// silently dropped by the aggregator.
func (uc *MutateCart) Add(ctx context.Context, scope, productID string, qty int64) (domain.CartComputation, error) {
	if qty <= 0 {
		qty = 1
	}
	if _, err := uc.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.CartComputation{}, ErrNotFound
		}
		return domain.CartComputation{}, fmt.Errorf("lookup product: %w", err)
	}
	if err := uc.carts.Add(ctx, scope, productID, qty); err != nil {
		return domain.CartComputation{}, fmt.Errorf("add to cart: %w", err)
	}
	return uc.compute.Execute(ctx, scope)
}

// Update sets an entry's quantity outright; zero or negative removes
// the entry.
func (uc *MutateCart) Update(ctx context.Context, scope, productID string, qty int64) (domain.CartComputation, error) {
	if qty <= 0 {
		return uc.Remove(ctx, scope, productID)
	}
	if _, err := uc.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.CartComputation{}, ErrNotFound
		}
		return domain.CartComputation{}, fmt.Errorf("lookup product: %w", err)
	}
	if err := uc.carts.SetQuantity(ctx, scope, productID, qty); err != nil {
		return domain.CartComputation{}, fmt.Errorf("update cart: %w", err)
	}
	return uc.compute.Execute(ctx, scope)
}

func (uc *MutateCart) Remove(ctx context.Context, scope, productID string) (domain.CartComputation, error) {
	if err := uc.carts.Remove(ctx, scope, productID); err != nil {
		return domain.CartComputation{}, fmt.Errorf("remove from cart: %w", err)
	}
	return uc.compute.Execute(ctx, scope)
}
