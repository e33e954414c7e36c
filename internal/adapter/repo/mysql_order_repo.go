package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

const orderCols = `id,owner_id,items_json,item_count,subtotal_cents,discount_cents,discount_code,discount_percent,tax_cents,total_cents,status,created_at`

func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO orders (`+orderCols+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
`, o.ID, o.Owner, items, o.ItemCount, o.SubtotalCents, o.DiscountCents,
		o.DiscountCode, o.DiscountPercent, o.TaxCents, o.TotalCents, o.Status, o.CreatedAt)
	return err
}

func scanOrder(s interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	var items []byte
	if err := s.Scan(&o.ID, &o.Owner, &items, &o.ItemCount, &o.SubtotalCents, &o.DiscountCents,
		&o.DiscountCode, &o.DiscountPercent, &o.TaxCents, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &o, nil
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderCols+` FROM orders WHERE id=?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrNotFound
	}
	return o, err
}

// List pages through orders for the admin console. Sort columns are
// whitelisted here; the page size comes from the query.
func (r *MySQLOrderRepo) List(ctx context.Context, q usecase.OrderQuery) ([]domain.Order, int64, error) {
	var sortBy string
	switch q.Sort {
	case usecase.OrderSortOwner:
		sortBy = "owner_id"
	case usecase.OrderSortValue:
		sortBy = "total_cents"
	default:
		sortBy = "created_at"
	}
	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 25
	}

	where := ""
	var args []any
	if q.Status != "" && q.Status != "any" {
		where = ` WHERE status=?`
		args = append(args, q.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderCols + ` FROM orders` + where +
		` ORDER BY ` + sortBy + ` ` + dir + ` LIMIT ? OFFSET ?`
	args = append(args, perPage, q.Page*perPage)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *o)
	}
	return out, total, rows.Err()
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
