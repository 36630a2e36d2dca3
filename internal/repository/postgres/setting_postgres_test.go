package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingPostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM settings WHERE key = ?").
			WithArgs("gformsLink").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("https://forms.example/join"))

		value, err := repo.Get(ctx, "gformsLink")

		assert.NoError(t, err)
		assert.Equal(t, "https://forms.example/join", value)
	})

	t.Run("missing key", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM settings WHERE key = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("gformsLink", "https://forms.example/join").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(ctx, "gformsLink", "https://forms.example/join")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
