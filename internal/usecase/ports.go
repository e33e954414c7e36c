package usecase

import (
	"context"
	"errors"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidCode    = errors.New("invalid discount code")
	ErrBadCredentials = errors.New("invalid username or password")
)

type ProductSort string

const (
	SortName         ProductSort = "name"
	SortPriceAsc     ProductSort = "price_asc"
	SortPriceDesc    ProductSort = "price_desc"
	SortAvailability ProductSort = "availability"
)

// ProductQuery filters and orders a catalog listing.
type ProductQuery struct {
	Search string
	Sort   ProductSort
}

type ProductRepo interface {
	// FindByIDs returns only the products that exist; missing ids are
	// simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, q ProductQuery) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type DiscountRepo interface {
	// GetActiveByCode looks up an active code; code is already
	// upper-cased by the caller. Returns ErrNotFound when unknown or
	// inactive.
	GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	List(ctx context.Context) ([]domain.DiscountCode, error)
	Create(ctx context.Context, d *domain.DiscountCode) error
	Update(ctx context.Context, d *domain.DiscountCode) error
	Delete(ctx context.Context, id string) error
}

type OrderSort string

const (
	OrderSortDate  OrderSort = "date"
	OrderSortOwner OrderSort = "owner"
	OrderSortValue OrderSort = "value"
)

// OrderQuery drives the paginated admin order listing.
type OrderQuery struct {
	Page      int // zero-based
	PerPage   int
	Sort      OrderSort
	Ascending bool
	Status    string // "" or "any" matches every status
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, q OrderQuery) ([]domain.Order, int64, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error // ErrConflict on duplicate name
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context, page, perPage int) ([]domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// CartStore holds per-session mutable cart state: the entry list and
// the presently stored discount. Scope is the session identity (user id
// or guest session id); scopes are never shared between sessions.
type CartStore interface {
	Entries(ctx context.Context, scope string) ([]domain.CartEntry, error)
	Add(ctx context.Context, scope, productID string, qty int64) error
	SetQuantity(ctx context.Context, scope, productID string, qty int64) error
	Remove(ctx context.Context, scope, productID string) error
	Discount(ctx context.Context, scope string) (code string, percent float64, ok bool, err error)
	SetDiscount(ctx context.Context, scope, code string, percent float64) error
	ClearDiscount(ctx context.Context, scope string) error
	// Clear drops the entries and the stored discount in one shot.
	Clear(ctx context.Context, scope string) error
}

// OrderEvents publishes order lifecycle events. Publishing is
// best-effort from the checkout path; a broker outage must not fail an
// already persisted order.
type OrderEvents interface {
	OrderPlaced(ctx context.Context, msg OrderPlacedMsg) error
}

// OrderCache keeps a small order summary around for the confirmation
// page; best-effort, the repo stays authoritative.
type OrderCache interface {
	SetSummary(ctx context.Context, orderID string, s OrderSummary) error
	GetSummary(ctx context.Context, orderID string) (*OrderSummary, error)
}

// PasswordHasher abstracts the hash scheme away from account usecases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *domain.User) (token string, expiresIn int64, err error)
}
