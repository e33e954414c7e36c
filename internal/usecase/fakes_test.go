package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
)

// In-memory ports for usecase tests. Single-goroutine use only.

type memProducts struct {
	byID map[string]domain.Product
}

func newMemProducts(ps ...domain.Product) *memProducts {
	m := &memProducts{byID: map[string]domain.Product{}}
	for _, p := range ps {
		m.byID[p.ID] = p
	}
	return m
}

func (m *memProducts) FindByIDs(_ context.Context, ids []string) (map[string]domain.Product, error) {
	out := map[string]domain.Product{}
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) List(_ context.Context, q ProductQuery) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.byID {
		if q.Search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		switch q.Sort {
		case SortPriceAsc:
			return out[i].PriceCents < out[j].PriceCents
		case SortPriceDesc:
			return out[i].PriceCents > out[j].PriceCents
		case SortAvailability:
			return out[i].Stock > out[j].Stock
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out, nil
}

func (m *memProducts) Create(_ context.Context, p *domain.Product) error {
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) Update(_ context.Context, p *domain.Product) error {
	if _, ok := m.byID[p.ID]; !ok {
		return ErrNotFound
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type storedDiscount struct {
	code    string
	percent float64
}

type memCarts struct {
	entries   map[string][]domain.CartEntry
	discounts map[string]storedDiscount
}

func newMemCarts() *memCarts {
	return &memCarts{entries: map[string][]domain.CartEntry{}, discounts: map[string]storedDiscount{}}
}

func (m *memCarts) Entries(_ context.Context, scope string) ([]domain.CartEntry, error) {
	return m.entries[scope], nil
}

func (m *memCarts) Add(_ context.Context, scope, productID string, qty int64) error {
	for i, e := range m.entries[scope] {
		if e.ProductID == productID {
			m.entries[scope][i].Quantity += qty
			return nil
		}
	}
	m.entries[scope] = append(m.entries[scope], domain.CartEntry{ProductID: productID, Quantity: qty})
	return nil
}

func (m *memCarts) SetQuantity(_ context.Context, scope, productID string, qty int64) error {
	for i, e := range m.entries[scope] {
		if e.ProductID == productID {
			m.entries[scope][i].Quantity = qty
			return nil
		}
	}
	m.entries[scope] = append(m.entries[scope], domain.CartEntry{ProductID: productID, Quantity: qty})
	return nil
}

func (m *memCarts) Remove(_ context.Context, scope, productID string) error {
	kept := m.entries[scope][:0]
	for _, e := range m.entries[scope] {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	m.entries[scope] = kept
	return nil
}

func (m *memCarts) Discount(_ context.Context, scope string) (string, float64, bool, error) {
	d, ok := m.discounts[scope]
	return d.code, d.percent, ok, nil
}

func (m *memCarts) SetDiscount(_ context.Context, scope, code string, percent float64) error {
	m.discounts[scope] = storedDiscount{code: code, percent: percent}
	return nil
}

func (m *memCarts) ClearDiscount(_ context.Context, scope string) error {
	delete(m.discounts, scope)
	return nil
}

func (m *memCarts) Clear(_ context.Context, scope string) error {
	delete(m.entries, scope)
	delete(m.discounts, scope)
	return nil
}

type memDiscounts struct {
	byCode map[string]domain.DiscountCode
}

func newMemDiscounts(ds ...domain.DiscountCode) *memDiscounts {
	m := &memDiscounts{byCode: map[string]domain.DiscountCode{}}
	for _, d := range ds {
		m.byCode[d.Code] = d
	}
	return m
}

func (m *memDiscounts) GetActiveByCode(_ context.Context, code string) (*domain.DiscountCode, error) {
	d, ok := m.byCode[code]
	if !ok || !d.Active {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (m *memDiscounts) List(_ context.Context) ([]domain.DiscountCode, error) {
	var out []domain.DiscountCode
	for _, d := range m.byCode {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memDiscounts) Create(_ context.Context, d *domain.DiscountCode) error {
	m.byCode[d.Code] = *d
	return nil
}

func (m *memDiscounts) Update(_ context.Context, d *domain.DiscountCode) error {
	m.byCode[d.Code] = *d
	return nil
}

func (m *memDiscounts) Delete(_ context.Context, id string) error {
	for code, d := range m.byCode {
		if d.ID == id {
			delete(m.byCode, code)
			return nil
		}
	}
	return ErrNotFound
}

type memOrders struct {
	byID map[string]domain.Order
	seq  []string
	fail error // when set, Create fails with it
}

func newMemOrders() *memOrders { return &memOrders{byID: map[string]domain.Order{}} }

func (m *memOrders) Create(_ context.Context, o *domain.Order) error {
	if m.fail != nil {
		return m.fail
	}
	m.byID[o.ID] = *o
	m.seq = append(m.seq, o.ID)
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) List(_ context.Context, q OrderQuery) ([]domain.Order, int64, error) {
	var out []domain.Order
	for _, id := range m.seq {
		o := m.byID[id]
		if q.Status != "" && q.Status != "any" && string(o.Status) != q.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

type memUsers struct {
	byID map[string]domain.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]domain.User{}} }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	for _, ex := range m.byID {
		if ex.Name == u.Name {
			return ErrConflict
		}
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) GetByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Name == name {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memUsers) List(_ context.Context, page, perPage int) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range m.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (m *memUsers) Update(_ context.Context, u *domain.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return ErrNotFound
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type capturedEvents struct {
	msgs []OrderPlacedMsg
	fail error
}

func (c *capturedEvents) OrderPlaced(_ context.Context, msg OrderPlacedMsg) error {
	if c.fail != nil {
		return c.fail
	}
	c.msgs = append(c.msgs, msg)
	return nil
}

// plainHasher trades security for test readability.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(hash, password string) (bool, error) {
	return hash == "h:"+password, nil
}

type staticTokens struct{}

func (staticTokens) Issue(u *domain.User) (string, int64, error) {
	return fmt.Sprintf("tok-%s", u.ID), 900, nil
}

var errStorageDown = errors.New("storage down")
