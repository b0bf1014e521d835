// Package access implements the ownership-chain authorization predicate.
// Every decision reduces to one question: does the session's user own the
// project that (transitively, through a page if applicable) contains the
// target? The resolver is a pure predicate — it never mutates and never
// returns resource data — and it fails closed: a missing resource is
// unauthorized, not an error.
package access

import (
	"context"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/session"
)

// OwnerResolver walks a resource to the user owning its ancestor project in
// a single query. Implementations return ErrNotOwned when the id does not
// resolve, so the predicate can distinguish "absent" from "store is down".
type OwnerResolver interface {
	ProjectOwner(ctx context.Context, projectID uint) (uint, error)
	PageOwner(ctx context.Context, pageID uint) (uint, error)
	ResourceOwner(ctx context.Context, kind audit.ResourceKind, resourceID uint) (uint, error)
}

// Resolver decides access for a (token, target) pair.
type Resolver struct {
	sessions *auth.SessionManager
	owners   OwnerResolver
}

func NewResolver(sessions *auth.SessionManager, owners OwnerResolver) *Resolver {
	return &Resolver{sessions: sessions, owners: owners}
}

// AuthorizedProjectAccess reports whether token's session is valid and its
// user owns the project.
func (r *Resolver) AuthorizedProjectAccess(ctx context.Context, token string, projectID uint) (bool, error) {
	return r.authorized(ctx, token, func(ctx context.Context) (uint, error) {
		return r.owners.ProjectOwner(ctx, projectID)
	})
}

// AuthorizedPageAccess reports whether token's session is valid and its user
// owns the page's project. The page → project → owner join happens in one
// step; the page body is never fetched here.
func (r *Resolver) AuthorizedPageAccess(ctx context.Context, token string, pageID uint) (bool, error) {
	return r.authorized(ctx, token, func(ctx context.Context) (uint, error) {
		return r.owners.PageOwner(ctx, pageID)
	})
}

// AuthorizedResourceAccess generalizes the check to any resource kind by
// resolving the resource's owning page or project and delegating to the
// ownership walk. One function serves every kind.
func (r *Resolver) AuthorizedResourceAccess(ctx context.Context, token string, kind audit.ResourceKind, resourceID uint) (bool, error) {
	switch kind {
	case audit.KindProject:
		return r.AuthorizedProjectAccess(ctx, token, resourceID)
	case audit.KindPage:
		return r.AuthorizedPageAccess(ctx, token, resourceID)
	}
	return r.authorized(ctx, token, func(ctx context.Context) (uint, error) {
		return r.owners.ResourceOwner(ctx, kind, resourceID)
	})
}

func (r *Resolver) authorized(ctx context.Context, token string, ownerOf func(ctx context.Context) (uint, error)) (bool, error) {
	valid, sess := r.sessions.VerifySessionForAccess(ctx, token)
	if !valid {
		return false, nil
	}

	ownerID, err := ownerOf(ctx)
	if err == ErrNotOwned {
		// Absent resource or broken chain: unauthorized, never a crash.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ownerID == sess.UserID, nil
}

// Session re-exposes token verification for callers that need the session
// for audit attribution after a decision.
func (r *Resolver) Session(ctx context.Context, token string) (bool, *session.Session) {
	return r.sessions.VerifySessionForAccess(ctx, token)
}
