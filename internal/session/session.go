// Package session issues and validates the server-side admin sessions that
// back the login cookie. The token handed to the client is an opaque
// capability: it embeds no claims, so revoking the server-side record takes
// effect immediately and globally.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"
)

const tokenBytes = 32

// Session is the server-held proof of a successful admin login. Every
// session in the store carries the admin capability; anonymous callers
// simply have no session.
type Session struct {
	Token    string
	IssuedAt time.Time
	LastSeen time.Time
}

// Store persists sessions keyed by token. Implementations must be safe for
// concurrent use.
type Store interface {
	Put(s Session)
	// Get returns the session for token and whether it exists.
	Get(token string) (Session, bool)
	Delete(token string)
}

// MemoryStore is the default in-process Store backed by sync.Map.
type MemoryStore struct {
	sessions sync.Map
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Put(sess Session) {
	s.sessions.Store(sess.Token, sess)
}

func (s *MemoryStore) Get(token string) (Session, bool) {
	v, ok := s.sessions.Load(token)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

func (s *MemoryStore) Delete(token string) {
	s.sessions.Delete(token)
}

// Authority owns the session lifecycle: issue on login, validate per
// request, revoke on logout. Expired sessions are removed lazily when
// encountered.
type Authority struct {
	store Store
	// idle invalidates sessions not seen for this long; ttl is the absolute
	// lifetime. Zero disables the respective check.
	idle time.Duration
	ttl  time.Duration

	now func() time.Time
}

// NewAuthority creates an Authority persisting sessions in store.
func NewAuthority(store Store, idle, ttl time.Duration) *Authority {
	return &Authority{
		store: store,
		idle:  idle,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Issue creates a new admin session and returns its opaque token.
func (a *Authority) Issue() (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	now := a.now()
	a.store.Put(Session{Token: token, IssuedAt: now, LastSeen: now})
	return token, nil
}

// Authenticated reports whether token references a live session, refreshing
// its idle clock on success.
func (a *Authority) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	sess, ok := a.store.Get(token)
	if !ok {
		return false
	}

	now := a.now()
	if (a.ttl > 0 && now.Sub(sess.IssuedAt) >= a.ttl) ||
		(a.idle > 0 && now.Sub(sess.LastSeen) >= a.idle) {
		a.store.Delete(token)
		return false
	}

	sess.LastSeen = now
	a.store.Put(sess)
	return true
}

// Revoke destroys the session for token. Revoking an unknown token is a
// no-op.
func (a *Authority) Revoke(token string) {
	a.store.Delete(token)
}

// newToken returns 32 bytes of crypto/rand as URL-safe base64 without
// padding.
func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
