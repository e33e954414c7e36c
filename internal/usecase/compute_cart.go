package usecase

import (
	"context"
	"fmt"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
)

// ComputeCart prices the session cart: resolve entries against the
// catalog, reapply the stored discount, add tax. Pure computation over
// two reads; nothing is mutated except an orphaned discount being
// dropped when the cart turns out empty.
type ComputeCart struct {
	products ProductRepo
	carts    CartStore
	taxRate  float64
}

func NewComputeCart(products ProductRepo, carts CartStore, taxRate float64) *ComputeCart {
	return &ComputeCart{products: products, carts: carts, taxRate: taxRate}
}

func (uc *ComputeCart) Execute(ctx context.Context, scope string) (domain.CartComputation, error) {
	entries, err := uc.carts.Entries(ctx, scope)
	if err != nil {
		return domain.CartComputation{}, fmt.Errorf("load cart: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	products := map[string]domain.Product{}
	if len(ids) > 0 {
		products, err = uc.products.FindByIDs(ctx, ids)
		if err != nil {
			return domain.CartComputation{}, fmt.Errorf("resolve products: %w", err)
		}
	}

	comp := domain.Aggregate(entries, products)
	if comp.Empty() {
		// a discount cannot outlive the cart it was applied to
		_ = uc.carts.ClearDiscount(ctx, scope)
		return domain.AddTax(comp, uc.taxRate), nil
	}

	if code, percent, ok, err := uc.carts.Discount(ctx, scope); err == nil && ok {
		comp = domain.ApplyDiscount(comp, code, percent)
	}
	return domain.AddTax(comp, uc.taxRate), nil
}
