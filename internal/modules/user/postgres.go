package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/appvendas/vendas-backend/internal/domain"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateIdempotent(ctx context.Context, u domain.User) (domain.User, bool, error) {
	name := strings.TrimSpace(u.Name)
	key := domain.NormalizeName(name)

	var existing string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM users WHERE name_key=$1`, key).Scan(&existing)
	if err == nil {
		return domain.User{Name: existing}, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, err
	}

	// ON CONFLICT keeps the create idempotent under concurrent requests.
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name_key, name) VALUES ($1,$2) ON CONFLICT (name_key) DO NOTHING`,
		key, name)
	if err != nil {
		return domain.User{}, false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, false, err
	}
	if n == 0 {
		// Lost the race to a concurrent create; the winning row is the record.
		err := r.db.QueryRowContext(ctx, `SELECT name FROM users WHERE name_key=$1`, key).Scan(&existing)
		if err != nil {
			return domain.User{}, false, err
		}
		return domain.User{Name: existing}, false, nil
	}
	return domain.User{Name: name}, true, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
