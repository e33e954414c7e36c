package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = map[string]Product{
	"prod_101": {ID: "prod_101", Name: "Organic Honey", PriceCents: 999, Category: CategoryPantry, Stock: 25, ImageURLs: []string{"images/honey.jpg"}},
	"prod_102": {ID: "prod_102", Name: "Artisan Bread", PriceCents: 449, Category: CategoryBakery, Stock: 40},
}

func TestAggregate(t *testing.T) {
	comp := Aggregate([]CartEntry{
		{ProductID: "prod_101", Quantity: 2},
		{ProductID: "prod_102", Quantity: 1},
	}, catalog)

	require.Len(t, comp.Items, 2)
	assert.Equal(t, int64(3), comp.ItemCount)
	assert.Equal(t, int64(2447), comp.SubtotalCents)
	assert.Equal(t, int64(2447), comp.DiscountedCents)
	assert.Equal(t, "Organic Honey", comp.Items[0].Name)
	assert.Equal(t, int64(1998), comp.Items[0].TotalCents)
	assert.Equal(t, "images/honey.jpg", comp.Items[0].ImageURL)
}

func TestAggregateDropsMissingProducts(t *testing.T) {
	comp := Aggregate([]CartEntry{
		{ProductID: "prod_101", Quantity: 2},
		{ProductID: "gone", Quantity: 5},
	}, catalog)

	require.Len(t, comp.Items, 1)
	assert.Equal(t, int64(2), comp.ItemCount)
	assert.Equal(t, int64(1998), comp.SubtotalCents)
}

func TestAggregateEmpty(t *testing.T) {
	for name, entries := range map[string][]CartEntry{
		"no entries":  nil,
		"all missing": {{ProductID: "gone", Quantity: 1}},
		"empty slice": {},
	} {
		t.Run(name, func(t *testing.T) {
			comp := AddTax(Aggregate(entries, catalog), 0.0825)
			assert.True(t, comp.Empty())
			assert.Zero(t, comp.SubtotalCents)
			assert.Zero(t, comp.TaxCents)
			assert.Zero(t, comp.TotalCents)
		})
	}
}

func TestAggregateOrderIndependentTotals(t *testing.T) {
	a := []CartEntry{{ProductID: "prod_101", Quantity: 2}, {ProductID: "prod_102", Quantity: 1}}
	b := []CartEntry{{ProductID: "prod_102", Quantity: 1}, {ProductID: "prod_101", Quantity: 2}}

	ca, cb := Aggregate(a, catalog), Aggregate(b, catalog)
	assert.Equal(t, ca.SubtotalCents, cb.SubtotalCents)
	assert.Equal(t, ca.ItemCount, cb.ItemCount)
	// ordering of line items follows input order
	assert.Equal(t, "prod_101", ca.Items[0].ProductID)
	assert.Equal(t, "prod_102", cb.Items[0].ProductID)
}

func TestAggregateIdempotent(t *testing.T) {
	entries := []CartEntry{{ProductID: "prod_101", Quantity: 2}, {ProductID: "prod_102", Quantity: 1}}
	first := AddTax(ApplyDiscount(Aggregate(entries, catalog), "HEB5", 5), 0.0825)
	second := AddTax(ApplyDiscount(Aggregate(entries, catalog), "HEB5", 5), 0.0825)
	assert.Equal(t, first, second)
}

func TestPricingNoDiscount(t *testing.T) {
	entries := []CartEntry{{ProductID: "prod_101", Quantity: 2}, {ProductID: "prod_102", Quantity: 1}}
	comp := AddTax(Aggregate(entries, catalog), 0.0825)

	assert.Equal(t, int64(2447), comp.SubtotalCents)
	assert.Equal(t, int64(202), comp.TaxCents) // 2447 * 0.0825 = 201.8775
	assert.Equal(t, int64(2649), comp.TotalCents)
}

func TestPricingWithDiscount(t *testing.T) {
	entries := []CartEntry{{ProductID: "prod_101", Quantity: 2}, {ProductID: "prod_102", Quantity: 1}}
	comp := AddTax(ApplyDiscount(Aggregate(entries, catalog), "WELCOME10", 10), 0.0825)

	assert.Equal(t, int64(245), comp.DiscountCents) // 244.7 rounds up
	assert.Equal(t, int64(2202), comp.DiscountedCents)
	assert.Equal(t, int64(182), comp.TaxCents) // 2202 * 0.0825 = 181.665
	assert.Equal(t, int64(2384), comp.TotalCents)
	assert.Equal(t, "WELCOME10", comp.DiscountCode)
}

func TestGrandTotalInvariant(t *testing.T) {
	cases := []struct {
		qty101, qty102 int64
		percent        float64
	}{
		{1, 0, 0}, {2, 1, 0}, {2, 1, 10}, {7, 3, 33.33}, {1, 1, 99}, {100, 100, 1},
	}
	for _, tc := range cases {
		entries := []CartEntry{
			{ProductID: "prod_101", Quantity: tc.qty101},
			{ProductID: "prod_102", Quantity: tc.qty102},
		}
		comp := Aggregate(entries, catalog)
		if tc.percent > 0 {
			comp = ApplyDiscount(comp, "X", tc.percent)
		}
		comp = AddTax(comp, 0.0825)
		assert.Equal(t, comp.SubtotalCents-comp.DiscountCents+comp.TaxCents, comp.TotalCents,
			"qty=%d/%d percent=%v", tc.qty101, tc.qty102, tc.percent)
	}
}

func TestApplyDiscountEmptyCartUnchanged(t *testing.T) {
	comp := ApplyDiscount(Aggregate(nil, catalog), "WELCOME10", 10)
	assert.Zero(t, comp.DiscountCents)
	assert.Empty(t, comp.DiscountCode)
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int64{
		0:       0,
		0.4:     0,
		0.5:     1,
		0.6:     1,
		181.665: 182,
		201.877: 202,
		244.7:   245,
		245.0:   245,
	}
	for in, want := range cases {
		assert.Equal(t, want, roundHalfUp(in), "roundHalfUp(%v)", in)
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "WELCOME10", NormalizeCode("  welcome10 "))
}

func TestDiscountValidate(t *testing.T) {
	for _, tc := range []struct {
		d  DiscountCode
		ok bool
	}{
		{DiscountCode{Code: "HEB5", PercentOff: 5}, true},
		{DiscountCode{Code: "HEB5", PercentOff: 0}, false},
		{DiscountCode{Code: "HEB5", PercentOff: 100}, false},
		{DiscountCode{Code: "", PercentOff: 5}, false},
		{DiscountCode{Code: "X", PercentOff: 99.9}, true},
	} {
		err := tc.d.Validate()
		if tc.ok {
			assert.NoError(t, err, "%+v", tc.d)
		} else {
			assert.ErrorIs(t, err, ErrInvalidDiscount, "%+v", tc.d)
		}
	}
}
