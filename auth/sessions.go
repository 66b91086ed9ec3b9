// sessions.go - Issues, verifies and revokes login session tokens
//
// A session token is an HS256 JWT carrying the user id ("sub") and a random
// token id ("jti"). The token id is also recorded in a SessionStore; a token
// is only valid while its id is present there, which is what makes logout
// effective before the token expires.

package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"
)

// ErrInvalidSession is returned for unknown, expired, revoked or forged tokens.
var ErrInvalidSession = errors.New("invalid session")

// SessionStore keeps track of live session ids.
type SessionStore interface {
	Save(ctx context.Context, id string, userID uint, expiresAt time.Time) error
	// Lookup returns the owner of a live session or ErrInvalidSession.
	Lookup(ctx context.Context, id string) (uint, error)
	Delete(ctx context.Context, id string) error
}

// Sessions is the session token service.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
	now    func() time.Time
}

// NewSessions creates a session service signing tokens with secret.
func NewSessions(secret []byte, ttl time.Duration, store SessionStore) *Sessions {
	return &Sessions{secret: secret, ttl: ttl, store: store, now: time.Now}
}

// TTL is the lifetime of issued sessions.
func (s *Sessions) TTL() time.Duration { return s.ttl }

// Issue starts a session for the user and returns its signed token.
func (s *Sessions) Issue(ctx context.Context, userID uint) (string, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	if err := s.store.Save(ctx, claims.ID, userID, expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Verify returns the user id of a live session token.
func (s *Sessions) Verify(ctx context.Context, token string) (uint, error) {
	claims, err := s.parse(token, jwt.WithTimeFunc(s.now))
	if err != nil {
		return 0, ErrInvalidSession
	}
	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}
	owner, err := s.store.Lookup(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if owner != uint(subject) {
		return 0, ErrInvalidSession
	}
	return owner, nil
}

// Revoke ends the session. Expired tokens are accepted so their record can
// still be removed; forged tokens are rejected.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return ErrInvalidSession
	}
	return s.store.Delete(ctx, claims.ID)
}

func (s *Sessions) parse(token string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// GenerateSecret returns a random 32 byte signing key.
func GenerateSecret() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
