package domain

import "time"

type Status string

// Orders are created pending and nothing in this service advances them.
const StatusPending Status = "pending"

// Order is an immutable snapshot of a checked-out cart.
type Order struct {
	ID              string
	Owner           string
	Items           []LineItem
	ItemCount       int64
	SubtotalCents   int64
	DiscountCents   int64
	DiscountCode    string
	DiscountPercent float64
	TaxCents        int64
	TotalCents      int64
	Status          Status
	CreatedAt       time.Time
}

// NewOrder snapshots a finalized cart computation for an owner.
func NewOrder(id, owner string, comp CartComputation, now time.Time) *Order {
	return &Order{
		ID:              id,
		Owner:           owner,
		Items:           comp.Items,
		ItemCount:       comp.ItemCount,
		SubtotalCents:   comp.SubtotalCents,
		DiscountCents:   comp.DiscountCents,
		DiscountCode:    comp.DiscountCode,
		DiscountPercent: comp.DiscountPercent,
		TaxCents:        comp.TaxCents,
		TotalCents:      comp.TotalCents,
		Status:          StatusPending,
		CreatedAt:       now,
	}
}
