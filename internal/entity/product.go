package domain

import "errors"

// Category is the grocery department an item belongs to.
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryDairy     Category = "dairy"
	CategoryBakery    Category = "bakery"
	CategoryFrozen    Category = "frozen"
	CategoryPantry    Category = "pantry"
	CategoryDeli      Category = "deli"
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryDrugstore Category = "drugstore"
	CategoryOther     Category = "other"
)

var categories = map[Category]struct{}{
	CategoryProduce: {}, CategoryDairy: {}, CategoryBakery: {},
	CategoryFrozen: {}, CategoryPantry: {}, CategoryDeli: {},
	CategoryMeat: {}, CategorySeafood: {}, CategoryDrugstore: {},
	CategoryOther: {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

var ErrInvalidProduct = errors.New("invalid product")

// Product is a catalog item. Price is stored in cents to avoid floats.
// The pricing core only ever reads products; it never mutates them.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Category    Category
	Stock       int64
	ImageURLs   []string
	Tags        []string
}

func (p *Product) Validate() error {
	if p.Name == "" || p.PriceCents < 0 || p.Stock < 0 || !p.Category.Valid() {
		return ErrInvalidProduct
	}
	return nil
}

// ImageURL returns the primary image, or "" when the item has none.
func (p *Product) ImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
