package usecase

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
)

// ApplyDiscount resolves a user-supplied code and stores it in the
// session so later cart views reapply it without another lookup. A new
// code replaces the stored one; codes never stack.
type ApplyDiscount struct {
	discounts DiscountRepo
	carts     CartStore
	compute   *ComputeCart
}

func NewApplyDiscount(discounts DiscountRepo, carts CartStore, compute *ComputeCart) *ApplyDiscount {
	return &ApplyDiscount{discounts: discounts, carts: carts, compute: compute}
}

func (uc *ApplyDiscount) Execute(ctx context.Context, scope, code string) (domain.CartComputation, error) {
	comp, err := uc.compute.Execute(ctx, scope)
	if err != nil {
		return domain.CartComputation{}, err
	}
	if comp.Empty() {
		return domain.CartComputation{}, ErrEmptyCart
	}

	normalized := domain.NormalizeCode(code)
	if normalized == "" {
		return domain.CartComputation{}, ErrInvalidCode
	}
	rec, err := uc.discounts.GetActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.CartComputation{}, ErrInvalidCode
		}
		return domain.CartComputation{}, fmt.Errorf("lookup discount: %w", err)
	}

	if err := uc.carts.SetDiscount(ctx, scope, rec.Code, rec.PercentOff); err != nil {
		return domain.CartComputation{}, fmt.Errorf("store discount: %w", err)
	}
	return uc.compute.Execute(ctx, scope)
}
