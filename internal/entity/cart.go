package domain

import "math"

// CartEntry references a product with a quantity. A quantity of zero or
// less means "remove the entry"; the session layer never stores such
// entries.
type CartEntry struct {
	ProductID string
	Quantity  int64
}

// LineItem is a cart entry resolved against the catalog. Computed fresh
// on every cart view, never persisted standalone.
type LineItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int64  `json:"quantity"`
	TotalCents int64  `json:"total_price_cents"`
	ImageURL   string `json:"image_url"`
}

// CartComputation is the full pricing breakdown of a cart. It is a pure
// function of the entries, a product snapshot and the stored discount.
type CartComputation struct {
	Items           []LineItem `json:"items"`
	ItemCount       int64      `json:"item_count"`
	SubtotalCents   int64      `json:"subtotal_cents"`
	DiscountCents   int64      `json:"discount_cents"`
	DiscountCode    string     `json:"discount_code,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	DiscountedCents int64      `json:"discounted_subtotal_cents"`
	TaxCents        int64      `json:"tax_cents"`
	TotalCents      int64      `json:"total_cents"`
}

// Empty reports whether the computation covers no resolved items.
func (c CartComputation) Empty() bool { return c.ItemCount == 0 }

// roundHalfUp rounds to the nearest integer with .5 rounding away from
// zero for non-negative inputs. All pricing amounts are non-negative.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// Aggregate resolves entries against a product snapshot and accumulates
// line totals in input order. Entries whose product is absent from the
// snapshot are dropped: the item was deleted from the catalog and the
// cart should keep working without it.
func Aggregate(entries []CartEntry, products map[string]Product) CartComputation {
	comp := CartComputation{Items: []LineItem{}}
	for _, e := range entries {
		p, ok := products[e.ProductID]
		if !ok {
			continue
		}
		lineTotal := p.PriceCents * e.Quantity
		comp.Items = append(comp.Items, LineItem{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   e.Quantity,
			TotalCents: lineTotal,
			ImageURL:   p.ImageURL(),
		})
		comp.ItemCount += e.Quantity
		comp.SubtotalCents += lineTotal
	}
	comp.DiscountedCents = comp.SubtotalCents
	return comp
}

// ApplyDiscount records a percent-off discount on the computation.
// Percent is taken verbatim from the stored discount record; range
// validation belongs to the admin write path. An empty cart is returned
// unchanged.
func ApplyDiscount(comp CartComputation, code string, percent float64) CartComputation {
	if comp.Empty() {
		return comp
	}
	comp.DiscountCode = code
	comp.DiscountPercent = percent
	comp.DiscountCents = roundHalfUp(float64(comp.SubtotalCents) * percent / 100)
	comp.DiscountedCents = comp.SubtotalCents - comp.DiscountCents
	return comp
}

// AddTax finalizes the computation: tax on the post-discount subtotal,
// rounded half up, then the grand total.
func AddTax(comp CartComputation, rate float64) CartComputation {
	comp.TaxCents = roundHalfUp(float64(comp.DiscountedCents) * rate)
	comp.TotalCents = comp.DiscountedCents + comp.TaxCents
	return comp
}
