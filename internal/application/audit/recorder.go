// Package audit provides the application services over the access log:
// best-effort recording and the history queries built on top of it.
package audit

import (
	"context"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
)

// Recorder appends access decisions. Writes are fire-and-forget: a failed
// audit insert must never roll back or fail the mutation it describes, but
// it is surfaced to operators through the log rather than swallowed.
type Recorder struct {
	requests audit.Repository
	logger   logger.Interface
}

func NewRecorder(requests audit.Repository, log logger.Interface) *Recorder {
	return &Recorder{requests: requests, logger: log}
}

// Record appends one decision. sess may be nil when the denial was caused by
// an invalid session; the entry is then written with a null actor.
func (r *Recorder) Record(ctx context.Context, sess *session.Session, kind audit.ResourceKind, resourceID uint, granted bool, action audit.ActionKind) {
	var sessionID *uint
	if sess != nil {
		id := sess.ID
		sessionID = &id
	}

	entry, err := audit.NewAccessRequest(sessionID, resourceID, kind, granted, action)
	if err != nil {
		// Closed-vocabulary violation; a programming error, not request data.
		r.logger.Errorw("refusing to record malformed access entry", "error", err)
		return
	}

	// Granted entries join the request transaction and roll back with the
	// mutation they describe. Denials detach so the refusal is kept even
	// when the surrounding transaction aborts.
	if !granted {
		ctx = db.Detach(ctx)
	}

	if err := r.requests.Create(ctx, entry); err != nil {
		r.logger.Errorw("failed to record access entry",
			"error", err,
			"resource_kind", kind,
			"resource_id", resourceID,
			"granted", granted,
			"action", action)
	}
}
