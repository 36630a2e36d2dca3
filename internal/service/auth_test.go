package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clubapi/internal/auth"
	"clubapi/internal/model"
	repoMocks "clubapi/internal/repository/mocks"
	"clubapi/internal/ratelimit"
	"clubapi/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T, users *repoMocks.MockUserRepository) (AuthService, *session.Authority) {
	t.Helper()
	authority := session.NewAuthority(session.NewMemoryStore(), 30*time.Minute, 12*time.Hour)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), time.Minute, 5)
	return NewAuthService(limiter, auth.NewVerifier(users), authority), authority
}

func adminUser(t *testing.T, password string) *model.User {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{ID: 1, Username: "admin", PasswordHash: string(h)}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a live session", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "admin").Return(adminUser(t, "hunter2"), nil)
		svc, authority := newAuthFixture(t, users)

		token, err := svc.Login(ctx, "admin", "hunter2", "1.2.3.4")

		require.NoError(t, err)
		assert.True(t, authority.Authenticated(token))
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "admin").Return(adminUser(t, "hunter2"), nil)
		svc, _ := newAuthFixture(t, users)

		_, err := svc.Login(ctx, "admin", "wrong", "1.2.3.4")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user yields the same error as wrong password", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)
		svc, _ := newAuthFixture(t, users)

		_, err := svc.Login(ctx, "ghost", "whatever", "1.2.3.4")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rate limit denies before credentials are checked", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		// five lookups and not one more: the sixth attempt must be denied
		// before the repository is consulted
		users.On("FindByUsername", ctx, "admin").Return(nil, sql.ErrNoRows).Times(5)
		svc, _ := newAuthFixture(t, users)

		var lastErr error
		for i := 0; i < 6; i++ {
			_, lastErr = svc.Login(ctx, "admin", "bad", "1.2.3.4")
		}

		assert.ErrorIs(t, lastErr, ErrRateLimited)
		users.AssertExpectations(t)
	})

	t.Run("throttled clients are independent", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "admin").Return(adminUser(t, "hunter2"), nil)
		svc, _ := newAuthFixture(t, users)

		for i := 0; i < 6; i++ {
			svc.Login(ctx, "admin", "bad", "1.2.3.4")
		}
		_, err := svc.Login(ctx, "admin", "hunter2", "5.6.7.8")

		assert.NoError(t, err)
	})

	t.Run("storage fault is neither invalid credentials nor rate limited", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "admin").Return(nil, errors.New("connection refused"))
		svc, _ := newAuthFixture(t, users)

		_, err := svc.Login(ctx, "admin", "hunter2", "1.2.3.4")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.NotErrorIs(t, err, ErrRateLimited)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	users := new(repoMocks.MockUserRepository)
	users.On("FindByUsername", ctx, "admin").Return(adminUser(t, "hunter2"), nil)
	svc, authority := newAuthFixture(t, users)

	token, err := svc.Login(ctx, "admin", "hunter2", "1.2.3.4")
	require.NoError(t, err)
	require.True(t, authority.Authenticated(token))

	svc.Logout(token)
	assert.False(t, authority.Authenticated(token))

	// revoking twice is harmless
	svc.Logout(token)
}
