package service

import (
	"context"
	"errors"
	"fmt"

	"clubapi/internal/auth"
	"clubapi/internal/ratelimit"
	"clubapi/internal/session"
)

var (
	// ErrInvalidCredentials is returned for any username/password pair that
	// does not match a stored credential. Unknown user and wrong password
	// are deliberately the same error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRateLimited is returned when a client has exhausted its login
	// attempts for the current window.
	ErrRateLimited = errors.New("too many login attempts")
)

// AuthService is the login/logout use case: throttle, verify, then issue a
// session.
type AuthService interface {
	// Login returns a session token on success. ErrRateLimited is reported
	// before any credential work happens; ErrInvalidCredentials covers all
	// non-matching pairs; anything else is a storage fault.
	Login(ctx context.Context, username, password, clientKey string) (string, error)

	// Logout revokes the session for token. Unknown tokens are a no-op.
	Logout(token string)
}

type authService struct {
	limiter   *ratelimit.Limiter
	verifier  *auth.Verifier
	authority *session.Authority
}

// NewAuthService composes the rate limiter, credential verifier and session
// authority into the login flow.
func NewAuthService(limiter *ratelimit.Limiter, verifier *auth.Verifier, authority *session.Authority) AuthService {
	return &authService{limiter: limiter, verifier: verifier, authority: authority}
}

func (s *authService) Login(ctx context.Context, username, password, clientKey string) (string, error) {
	// throttle first so denied attempts never cost a hash comparison
	if !s.limiter.Check(clientKey) {
		return "", ErrRateLimited
	}

	if _, err := s.verifier.Verify(ctx, username, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify credentials: %w", err)
	}

	token, err := s.authority.Issue()
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

func (s *authService) Logout(token string) {
	s.authority.Revoke(token)
}
