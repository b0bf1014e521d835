// Package session defines the bearer-token session entity. A session is the
// single source of truth for "is this caller currently authenticated": it is
// valid while its active flag is set and its absolute expiry has not passed.
// Rows are never deleted; logout only flips the active flag so the audit
// trail keeps its actors.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// tokenBytes is the minimum entropy behind a bearer token.
const tokenBytes = 64

type Session struct {
	ID        uint
	UserID    uint
	Token     string
	StartTime time.Time
	EndTime   time.Time
	IPAddress string
	IsActive  bool
}

// New builds an active session for userID bound to the caller's IP, expiring
// after lifetime. The token carries 64 bytes of cryptographic randomness.
func New(userID uint, ip string, lifetime time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("session lifetime must be positive")
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now().UTC()
	return &Session{
		UserID:    userID,
		Token:     token,
		StartTime: now,
		EndTime:   now.Add(lifetime),
		IPAddress: ip,
		IsActive:  true,
	}, nil
}

// IsValid reports whether the session authenticates a caller right now.
// Expiry is a computed predicate, not a stored state transition.
func (s *Session) IsValid() bool {
	return s.IsActive && !time.Now().UTC().After(s.EndTime)
}

// Deactivate soft-revokes the session. Idempotent.
func (s *Session) Deactivate() {
	s.IsActive = false
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Repository persists sessions. GetByToken must distinguish "not found"
// (nil, nil) from infrastructure failures so verification can fail closed
// without treating an unknown token as an error.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Session, error)
	Deactivate(ctx context.Context, token string) error
}
