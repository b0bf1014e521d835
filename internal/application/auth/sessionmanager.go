// Package auth implements the session protocol: token issuance, liveness
// verification, soft revocation, and same-IP renewal.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

// SessionManager is the single source of truth for whether a caller is
// currently authenticated.
type SessionManager struct {
	sessions session.Repository
	lifetime time.Duration
	logger   logger.Interface
}

func NewSessionManager(sessions session.Repository, lifetime time.Duration, log logger.Interface) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		lifetime: lifetime,
		logger:   log,
	}
}

// Lifetime returns the configured session lifetime.
func (m *SessionManager) Lifetime() time.Duration {
	return m.lifetime
}

// CreateSession issues a new bearer token for userID bound to ip. After the
// insert it re-reads and re-verifies the session; a token the store cannot
// verify is never handed to a caller.
func (m *SessionManager) CreateSession(ctx context.Context, userID uint, ip string) (string, error) {
	sess, err := session.New(userID, ip, m.lifetime)
	if err != nil {
		return "", fmt.Errorf("failed to build session: %w", err)
	}

	if err := m.sessions.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	if !m.VerifySession(ctx, sess.Token, userID) {
		m.logger.Errorw("session failed post-create verification", "user_id", userID)
		return "", fmt.Errorf("session creation failed verification")
	}

	return sess.Token, nil
}

// VerifySessionForAccess resolves a token to its session. It returns
// (false, nil) for unknown, deactivated, or expired tokens and never treats
// a missing token as an error.
func (m *SessionManager) VerifySessionForAccess(ctx context.Context, token string) (bool, *session.Session) {
	if token == "" {
		return false, nil
	}

	sess, err := m.sessions.GetByToken(ctx, token)
	if err != nil {
		m.logger.Errorw("session lookup failed", "error", err)
		return false, nil
	}
	if sess == nil || !sess.IsValid() {
		return false, nil
	}
	return true, sess
}

// VerifySession is the liveness check plus an identity binding: the session
// must belong to expectedUserID. Sensitive mutations (password change,
// account deletion) use this even though the token alone names a user.
func (m *SessionManager) VerifySession(ctx context.Context, token string, expectedUserID uint) bool {
	valid, sess := m.VerifySessionForAccess(ctx, token)
	return valid && sess.UserID == expectedUserID
}

// DeactivateSession soft-revokes the token. Idempotent: revoking an already
// inactive or unknown token succeeds silently, and the token simply reports
// invalid-session from then on.
func (m *SessionManager) DeactivateSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.sessions.Deactivate(ctx, token); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}

// RenewSession issues a brand-new token for the holder of a currently valid
// session, provided the request originates from the IP the session was
// created with. The old session is left untouched: it stays valid until its
// own expiry, so multiple concurrently valid tokens per user are expected.
func (m *SessionManager) RenewSession(ctx context.Context, token, requestIP string) (string, error) {
	valid, sess := m.VerifySessionForAccess(ctx, token)
	if !valid {
		return "", ErrInvalidSession
	}
	if sess.IPAddress != requestIP {
		m.logger.Warnw("session renewal refused from different address",
			"session_ip", sess.IPAddress, "request_ip", requestIP)
		return "", ErrRenewalAddressMismatch
	}

	return m.CreateSession(ctx, sess.UserID, requestIP)
}
