package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"clubapi/internal/model"
	repoMocks "clubapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "admin").
			Return(&model.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "hunter2")}, nil)

		u, err := NewVerifier(mRepo).Verify(ctx, "admin", "hunter2")

		assert.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
		mRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "admin").
			Return(&model.User{ID: 1, Username: "admin", PasswordHash: hashFor(t, "hunter2")}, nil)

		u, err := NewVerifier(mRepo).Verify(ctx, "admin", "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, u)
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)

		u, err := NewVerifier(mRepo).Verify(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, u)
	})

	t.Run("storage fault is not invalid credentials", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "admin").Return(nil, errors.New("connection refused"))

		u, err := NewVerifier(mRepo).Verify(ctx, "admin", "hunter2")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, u)
	})

	t.Run("username match is case sensitive", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("FindByUsername", ctx, "Admin").Return(nil, sql.ErrNoRows)

		_, err := NewVerifier(mRepo).Verify(ctx, "Admin", "hunter2")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		mRepo.AssertExpectations(t)
	})
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("hunter2")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("hunter3")))
}
