// Package session holds the current actor context: the bearer token handed
// over by the authentication provider and the super-admin flag. Components
// receive a *Session and only read from it; the session is populated when
// the program starts and cleared at logout.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoToken is returned when an operation needs credentials and none
	// were configured.
	ErrNoToken = errors.New("no session token configured")
	// ErrExpired is returned when the token carries an expiry in the past.
	ErrExpired = errors.New("session token has expired")
)

// superAdminClaim is honoured when the provider issues JWTs.
const superAdminClaim = "is_super_admin"

// Session is the injected, read-only actor context.
type Session struct {
	mu         sync.RWMutex
	token      string
	superAdmin bool
	subject    string
	expiresAt  time.Time
	now        func() time.Time
}

// New starts a session for token. superAdmin is the flag reported by the
// authentication provider; a JWT claim can only add to it.
func New(token string, superAdmin bool) *Session {
	s := &Session{now: time.Now}
	s.Start(token, superAdmin)
	return s
}

// Start (re)populates the session.
//
// The token's super-admin claim is read without verifying the signature, so
// it can only widen which sections the client offers. It never grants access:
// the API checks every request against the server-side permissions.
func (s *Session) Start(token string, superAdmin bool) {
	token = strings.TrimSpace(token)
	claims := inspectToken(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.superAdmin = superAdmin || claims.superAdmin
	s.subject = claims.subject
	s.expiresAt = claims.expiresAt
}

// Clear drops the credentials, as a logout does.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.superAdmin = false
	s.subject = ""
	s.expiresAt = time.Time{}
}

// Token returns the bearer token or an error when the session cannot be used.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	if !s.expiresAt.IsZero() && !s.clock().Before(s.expiresAt) {
		return "", ErrExpired
	}
	return s.token, nil
}

// IsSuperAdmin reports whether the actor bypasses granular permissions.
func (s *Session) IsSuperAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.superAdmin
}

// Subject is the token subject, empty for opaque tokens.
func (s *Session) Subject() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subject
}

// ExpiresAt is zero for opaque tokens or tokens without an exp claim.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Active reports whether Token would succeed.
func (s *Session) Active() bool {
	_, err := s.Token()
	return err == nil
}

func (s *Session) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

type tokenClaims struct {
	subject    string
	expiresAt  time.Time
	superAdmin bool
}

// inspectToken reads claims without verifying the signature; the API is the
// authority, this only lets the client fail early on an expired token.
func inspectToken(token string) tokenClaims {
	var out tokenClaims
	if strings.Count(token, ".") != 2 {
		return out
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return out
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.expiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		out.subject = sub
	}
	if v, ok := claims[superAdminClaim].(bool); ok {
		out.superAdmin = v
	}
	return out
}
