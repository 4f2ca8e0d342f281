package db

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the repositories expect. Every statement
// is idempotent so startup runs them unconditionally.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			name_key TEXT PRIMARY KEY,
			name     TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			name_key   TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			event_date TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			name_key TEXT PRIMARY KEY,
			name     TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			name_key TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			price    NUMERIC(12,2) NOT NULL DEFAULT 0,
			status   TEXT NOT NULL DEFAULT 'available'
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id             UUID PRIMARY KEY,
			created_at     TIMESTAMPTZ NOT NULL,
			user_name      TEXT NOT NULL DEFAULT '',
			event_name     TEXT NOT NULL DEFAULT '',
			event_date     TEXT NOT NULL DEFAULT '',
			first_name     TEXT NOT NULL DEFAULT '',
			last_name      TEXT NOT NULL DEFAULT '',
			cpf            TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT '',
			area_code      TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			street         TEXT NOT NULL DEFAULT '',
			street_number  TEXT NOT NULL DEFAULT '',
			complement     TEXT NOT NULL DEFAULT '',
			neighborhood   TEXT NOT NULL DEFAULT '',
			city           TEXT NOT NULL DEFAULT '',
			state          TEXT NOT NULL DEFAULT '',
			postal_code    TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL DEFAULT '',
			total_amount   NUMERIC(12,2) NOT NULL DEFAULT 0,
			note           TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			sale_id      UUID NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			position     INT NOT NULL,
			product_name TEXT NOT NULL,
			units        INT NOT NULL,
			unit_price   NUMERIC(12,2) NOT NULL,
			PRIMARY KEY (sale_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_event_name ON sales(event_name)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_cpf ON sales(cpf)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
