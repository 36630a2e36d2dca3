// Package auth verifies admin credentials against stored bcrypt hashes.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
// Callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a bcrypt hash of an unguessable throwaway value. When the
// username does not exist we still run a comparison against it so the
// unknown-user path costs the same as a wrong-password one.
var dummyHash = mustHash("clubapi-no-such-user")

// Verifier checks a username/password pair against the credential store.
// It is read-only: credentials are provisioned out of band.
type Verifier struct {
	users repository.UserRepository
}

// NewVerifier creates a Verifier backed by users.
func NewVerifier(users repository.UserRepository) *Verifier {
	return &Verifier{users: users}
}

// Verify returns the matching user, ErrInvalidCredentials when the pair does
// not match any stored credential, or a wrapped storage error.
func (v *Verifier) Verify(ctx context.Context, username, password string) (*model.User, error) {
	u, err := v.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// burn a comparison so timing matches the known-user path
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// HashPassword produces a bcrypt hash suitable for storage, used by
// provisioning.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func mustHash(s string) []byte {
	b, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return b
}
