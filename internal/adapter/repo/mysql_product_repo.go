package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
)

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

const productCols = `id,name,description,price_cents,category,stock,image_urls,tags`

func scanProduct(s interface{ Scan(...any) error }) (*domain.Product, error) {
	var p domain.Product
	var images, tags []byte
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Stock, &images, &tags); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.ImageURLs); err != nil {
			return nil, fmt.Errorf("decode image_urls: %w", err)
		}
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	return &p, nil
}

func (r *MySQLProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrNotFound
	}
	return p, err
}

func (r *MySQLProductRepo) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productCols+` FROM products WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out[p.ID] = *p
	}
	return out, rows.Err()
}

func (r *MySQLProductRepo) List(ctx context.Context, q usecase.ProductQuery) ([]domain.Product, error) {
	// ORDER BY cannot be parameterized; map the sort mode to a fixed clause
	var orderBy string
	switch q.Sort {
	case usecase.SortPriceAsc:
		orderBy = "price_cents ASC"
	case usecase.SortPriceDesc:
		orderBy = "price_cents DESC"
	case usecase.SortAvailability:
		orderBy = "stock DESC"
	default:
		orderBy = "name ASC"
	}

	query := `SELECT ` + productCols + ` FROM products`
	var args []any
	if q.Search != "" {
		query += ` WHERE name LIKE ? OR description LIKE ?`
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY ` + orderBy

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *MySQLProductRepo) Create(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return err
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO products (id,name,description,price_cents,category,stock,image_urls,tags,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,?,NOW(),NOW())
`, p.ID, p.Name, p.Description, p.PriceCents, p.Category, p.Stock, images, tags)
	return err
}

func (r *MySQLProductRepo) Update(ctx context.Context, p *domain.Product) error {
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return err
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE products
SET name=?, description=?, price_cents=?, category=?, stock=?, image_urls=?, tags=?, updated_at=NOW()
WHERE id=?`,
		p.Name, p.Description, p.PriceCents, p.Category, p.Stock, images, tags, p.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *MySQLProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

var _ usecase.ProductRepo = (*MySQLProductRepo)(nil)
