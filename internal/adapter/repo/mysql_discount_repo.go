package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/Khaoshimself/online-shopping-site/internal/entity"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
)

type MySQLDiscountRepo struct{ db *sql.DB }

func NewMySQLDiscountRepo(db *sql.DB) *MySQLDiscountRepo { return &MySQLDiscountRepo{db: db} }

func (r *MySQLDiscountRepo) GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,code,percent_off,active,description
FROM discount_codes WHERE code=? AND active=1`, code)
	var d domain.DiscountCode
	if err := row.Scan(&d.ID, &d.Code, &d.PercentOff, &d.Active, &d.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *MySQLDiscountRepo) List(ctx context.Context) ([]domain.DiscountCode, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,code,percent_off,active,description
FROM discount_codes ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DiscountCode
	for rows.Next() {
		var d domain.DiscountCode
		if err := rows.Scan(&d.ID, &d.Code, &d.PercentOff, &d.Active, &d.Description); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *MySQLDiscountRepo) Create(ctx context.Context, d *domain.DiscountCode) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO discount_codes (id,code,percent_off,active,description,created_at)
VALUES (?,?,?,?,?,NOW())`,
		d.ID, d.Code, d.PercentOff, d.Active, d.Description)
	if isDuplicate(err) {
		return usecase.ErrConflict
	}
	return err
}

func (r *MySQLDiscountRepo) Update(ctx context.Context, d *domain.DiscountCode) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE discount_codes SET code=?, percent_off=?, active=?, description=? WHERE id=?`,
		d.Code, d.PercentOff, d.Active, d.Description, d.ID)
	if err != nil {
		if isDuplicate(err) {
			return usecase.ErrConflict
		}
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

func (r *MySQLDiscountRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discount_codes WHERE id=?`, id)
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

var _ usecase.DiscountRepo = (*MySQLDiscountRepo)(nil)
