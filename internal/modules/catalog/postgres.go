package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/appvendas/vendas-backend/internal/domain"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProductIdempotent(ctx context.Context, p domain.Product) (domain.Product, bool, error) {
	name := strings.TrimSpace(p.Name)
	key := domain.NormalizeName(name)

	existing, err := r.productByKey(ctx, key)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name_key, name, price, status) VALUES ($1,$2,$3,$4)
		 ON CONFLICT (name_key) DO NOTHING`,
		key, name, p.Price, p.Status)
	if err != nil {
		return domain.Product{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Product{}, false, err
	}
	if n == 0 {
		// Lost the race to a concurrent create; the winning row is the record.
		winner, err := r.productByKey(ctx, key)
		if err != nil {
			return domain.Product{}, false, err
		}
		return winner, false, nil
	}
	p.Name = name
	return p, true, nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, price, status FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.Name, &p.Price, &p.Status); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, name string, p domain.Product) (domain.Product, error) {
	key := domain.NormalizeName(name)
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET price=$1, status=$2 WHERE name_key=$3`,
		p.Price, p.Status, key)
	if err != nil {
		return domain.Product{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Product{}, err
	}
	if n == 0 {
		return domain.Product{}, ErrProductNotFound
	}
	return r.productByKey(ctx, key)
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE name_key=$1`, domain.NormalizeName(name))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) CreatePaymentMethodIdempotent(ctx context.Context, m domain.PaymentMethod) (domain.PaymentMethod, bool, error) {
	name := strings.TrimSpace(m.Name)
	key := domain.NormalizeName(name)

	var existing string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM payment_methods WHERE name_key=$1`, key).Scan(&existing)
	if err == nil {
		return domain.PaymentMethod{Name: existing}, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.PaymentMethod{}, false, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payment_methods (name_key, name) VALUES ($1,$2)
		 ON CONFLICT (name_key) DO NOTHING`,
		key, name)
	if err != nil {
		return domain.PaymentMethod{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.PaymentMethod{}, false, err
	}
	if n == 0 {
		// Lost the race to a concurrent create; the winning row is the record.
		err := r.db.QueryRowContext(ctx,
			`SELECT name FROM payment_methods WHERE name_key=$1`, key).Scan(&existing)
		if err != nil {
			return domain.PaymentMethod{}, false, err
		}
		return domain.PaymentMethod{Name: existing}, false, nil
	}
	return domain.PaymentMethod{Name: name}, true, nil
}

func (r *postgresRepo) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM payment_methods`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var methods []domain.PaymentMethod
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.Name); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *postgresRepo) productByKey(ctx context.Context, key string) (domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT name, price, status FROM products WHERE name_key=$1`, key).
		Scan(&p.Name, &p.Price, &p.Status)
	return p, err
}
