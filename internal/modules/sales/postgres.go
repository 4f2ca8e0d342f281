package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/appvendas/vendas-backend/internal/domain"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const saleColumns = `id,created_at,user_name,event_name,event_date,
	first_name,last_name,cpf,email,area_code,phone,
	street,street_number,complement,neighborhood,city,state,postal_code,
	payment_method,total_amount,note`

// Upsert writes the sale row and its items inside a single transaction.
// Items are replaced wholesale: an edit re-submits the entire record.
func (r *postgresRepo) Upsert(ctx context.Context, sale domain.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales (`+saleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT (id) DO UPDATE SET
		  user_name=EXCLUDED.user_name, event_name=EXCLUDED.event_name, event_date=EXCLUDED.event_date,
		  first_name=EXCLUDED.first_name, last_name=EXCLUDED.last_name, cpf=EXCLUDED.cpf,
		  email=EXCLUDED.email, area_code=EXCLUDED.area_code, phone=EXCLUDED.phone,
		  street=EXCLUDED.street, street_number=EXCLUDED.street_number, complement=EXCLUDED.complement,
		  neighborhood=EXCLUDED.neighborhood, city=EXCLUDED.city, state=EXCLUDED.state,
		  postal_code=EXCLUDED.postal_code, payment_method=EXCLUDED.payment_method,
		  total_amount=EXCLUDED.total_amount, note=EXCLUDED.note`,
		sale.ID, sale.CreatedAt, sale.UserName, sale.EventName, sale.EventDate,
		sale.FirstName, sale.LastName, sale.CPF, sale.Email, sale.AreaCode, sale.Phone,
		sale.Street, sale.StreetNumber, sale.Complement, sale.Neighborhood, sale.City,
		sale.State, sale.PostalCode, sale.PaymentMethod, sale.TotalAmount, sale.Note)
	if err != nil {
		return fmt.Errorf("upsert sale: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id=$1`, sale.ID); err != nil {
		return fmt.Errorf("clear sale items: %w", err)
	}
	for i, item := range sale.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sale_items (sale_id, position, product_name, units, unit_price)
			VALUES ($1,$2,$3,$4,$5)`,
			sale.ID, i, item.ProductName, item.Units, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Sale, error) {
	sale, err := r.scanSale(r.db.QueryRowContext(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Sale{}, ErrNotFound
	}
	if err != nil {
		return domain.Sale{}, err
	}
	items, err := r.itemsBySale(ctx, id)
	if err != nil {
		return domain.Sale{}, err
	}
	sale.Items = items[id]
	return sale, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+saleColumns+` FROM sales`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsBySale(ctx, uuid.Nil)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		sales[i].Items = items[sales[i].ID]
	}
	return sales, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scanSale(row rowScanner) (domain.Sale, error) {
	var s domain.Sale
	err := row.Scan(&s.ID, &s.CreatedAt, &s.UserName, &s.EventName, &s.EventDate,
		&s.FirstName, &s.LastName, &s.CPF, &s.Email, &s.AreaCode, &s.Phone,
		&s.Street, &s.StreetNumber, &s.Complement, &s.Neighborhood, &s.City,
		&s.State, &s.PostalCode, &s.PaymentMethod, &s.TotalAmount, &s.Note)
	return s, err
}

// itemsBySale loads line items grouped by sale. uuid.Nil loads every sale's
// items in one query, avoiding a query per sale when listing.
func (r *postgresRepo) itemsBySale(ctx context.Context, saleID uuid.UUID) (map[uuid.UUID][]domain.LineItem, error) {
	query := `SELECT sale_id, product_name, units, unit_price FROM sale_items`
	args := []interface{}{}
	if saleID != uuid.Nil {
		query += ` WHERE sale_id=$1`
		args = append(args, saleID)
	}
	query += ` ORDER BY sale_id, position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]domain.LineItem)
	for rows.Next() {
		var id uuid.UUID
		var it domain.LineItem
		if err := rows.Scan(&id, &it.ProductName, &it.Units, &it.UnitPrice); err != nil {
			return nil, err
		}
		items[id] = append(items[id], it)
	}
	return items, rows.Err()
}
