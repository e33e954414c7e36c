package domain

import (
	"errors"
	"strings"
)

var ErrInvalidDiscount = errors.New("invalid discount")

// DiscountCode is a percent-off code. At most one discount is applied
// per cart; applying a new code replaces the stored one outright.
type DiscountCode struct {
	ID          string
	Code        string
	PercentOff  float64
	Active      bool
	Description string
}

// Validate guards the admin write path. The cart applier trusts stored
// records and does not re-check the range.
func (d *DiscountCode) Validate() error {
	if d.Code == "" {
		return ErrInvalidDiscount
	}
	if d.PercentOff <= 0 || d.PercentOff >= 100 {
		return ErrInvalidDiscount
	}
	return nil
}

// NormalizeCode upper-cases a user-supplied code; lookups are
// case-insensitive by convention.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
