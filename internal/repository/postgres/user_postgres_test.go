package postgres

import (
	"context"
	"database/sql"
	"testing"

	"clubapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPostgres_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(1, "admin", "$2a$10$abcdefghijklmnopqrstuv")

		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
			WithArgs("admin").
			WillReturnRows(rows)

		u, err := repo.FindByUsername(ctx, "admin")

		assert.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByUsername(ctx, "nobody")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, u)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(1, "admin", "hash")

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("admin", "hash").
		WillReturnRows(rows)

	u, err := repo.Create(ctx, &model.User{Username: "admin", PasswordHash: "hash"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
