package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/appvendas/vendas-backend/internal/domain"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateIdempotent(ctx context.Context, e domain.Event) (domain.Event, bool, error) {
	name := strings.TrimSpace(e.Name)
	key := domain.NormalizeName(name)

	var existing domain.Event
	err := r.db.QueryRowContext(ctx,
		`SELECT name, event_date FROM events WHERE name_key=$1`, key).
		Scan(&existing.Name, &existing.Date)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, false, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name_key, name, event_date) VALUES ($1,$2,$3)
		 ON CONFLICT (name_key) DO NOTHING`,
		key, name, e.Date)
	if err != nil {
		return domain.Event{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Event{}, false, err
	}
	if n == 0 {
		// Lost the race to a concurrent create; the winning row is the record.
		err := r.db.QueryRowContext(ctx,
			`SELECT name, event_date FROM events WHERE name_key=$1`, key).
			Scan(&existing.Name, &existing.Date)
		if err != nil {
			return domain.Event{}, false, err
		}
		return existing, false, nil
	}
	return domain.Event{Name: name, Date: e.Date}, true, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, event_date FROM events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.Name, &e.Date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteCascade removes the event and its sales inside a single transaction:
// either all deletes succeed or none do. Sale items go via the ON DELETE
// CASCADE on sale_items.
func (r *postgresRepo) DeleteCascade(ctx context.Context, name string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	key := domain.NormalizeName(name)
	var exact string
	err = tx.QueryRowContext(ctx, `SELECT name FROM events WHERE name_key=$1`, key).Scan(&exact)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE event_name=$1`, exact)
	if err != nil {
		return 0, fmt.Errorf("delete event sales: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE name_key=$1`, key); err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}

	return int(removed), tx.Commit()
}
