package access

import (
	"context"

	appaudit "github.com/Maple-Lazuli/one-place-v3/internal/application/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/errors"
)

// Guard is the authorization step every handler runs before touching a
// resource. It verifies the session, walks the ownership chain, records the
// decision, and only then lets the handler read or mutate. Denials are
// terminal: the handler returns the AppError without fetching anything.
type Guard struct {
	resolver *Resolver
	recorder *appaudit.Recorder
}

func NewGuard(resolver *Resolver, recorder *appaudit.Recorder) *Guard {
	return &Guard{resolver: resolver, recorder: recorder}
}

// Require authorizes token against the resource and records the decision
// under the given action. On success it returns the session so the caller
// can attribute subsequent audit entries. Denied decisions are recorded
// too — with a null actor when the session itself was invalid.
func (g *Guard) Require(ctx context.Context, token string, kind audit.ResourceKind, resourceID uint, action audit.ActionKind) (*session.Session, error) {
	valid, sess := g.resolver.Session(ctx, token)
	if !valid {
		g.recorder.Record(ctx, nil, kind, resourceID, false, action)
		return nil, errors.NewInvalidSessionError()
	}

	authorized, err := g.resolver.AuthorizedResourceAccess(ctx, token, kind, resourceID)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve access")
	}
	if !authorized {
		g.recorder.Record(ctx, sess, kind, resourceID, false, action)
		return nil, errors.NewForbiddenError("not authorized to access resource")
	}

	return sess, nil
}

// RequireSession verifies token liveness only, for operations that are not
// scoped to a resource (project listing, history of one's own account).
func (g *Guard) RequireSession(ctx context.Context, token string) (*session.Session, error) {
	valid, sess := g.resolver.Session(ctx, token)
	if !valid {
		return nil, errors.NewInvalidSessionError()
	}
	return sess, nil
}

// Granted records the successful outcome of a guarded operation.
func (g *Guard) Granted(ctx context.Context, sess *session.Session, kind audit.ResourceKind, resourceID uint, action audit.ActionKind) {
	g.recorder.Record(ctx, sess, kind, resourceID, true, action)
}
