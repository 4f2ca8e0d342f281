package event

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appvendas/vendas-backend/internal/domain"
)

func TestCreateIdempotentInsertsNewEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, event_date FROM events`).
		WithArgs("feira").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO events`).
		WithArgs("feira", "Feira", "2026-07-01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	e, created, err := repo.CreateIdempotent(context.Background(),
		domain.Event{Name: "Feira", Date: "2026-07-01"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.Event{Name: "Feira", Date: "2026-07-01"}, e)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIdempotentReturnsWinnerAfterLostRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// A concurrent create lands between our select and our insert: the
	// insert conflicts away to zero rows and the winning row must come back.
	mock.ExpectQuery(`SELECT name, event_date FROM events`).
		WithArgs("feira").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO events`).
		WithArgs("feira", "Feira", "2026-07-01").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT name, event_date FROM events`).
		WithArgs("feira").
		WillReturnRows(sqlmock.NewRows([]string{"name", "event_date"}).
			AddRow("FEIRA", "2026-06-30"))

	repo := NewPostgresRepository(db)
	e, created, err := repo.CreateIdempotent(context.Background(),
		domain.Event{Name: "Feira", Date: "2026-07-01"})
	require.NoError(t, err)
	assert.False(t, created, "the loser of the race did not create anything")
	assert.Equal(t, domain.Event{Name: "FEIRA", Date: "2026-06-30"}, e)
	assert.NoError(t, mock.ExpectationsWereMet())
}
