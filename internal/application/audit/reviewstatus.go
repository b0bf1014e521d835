package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
)

// ReviewStatus answers "when was this page last reviewed or edited",
// derived from REVIEW and UPDATE entries in the access log.
type ReviewStatus struct {
	requests audit.Repository
}

func NewReviewStatus(requests audit.Repository) *ReviewStatus {
	return &ReviewStatus{requests: requests}
}

// LastReviewDelta returns the time elapsed since the most recent REVIEW of
// the page as of asOf, or nil when the page was never reviewed.
func (r *ReviewStatus) LastReviewDelta(ctx context.Context, pageID uint, asOf time.Time) (*time.Duration, error) {
	last, err := r.requests.LastAction(ctx, audit.KindPage, pageID, audit.ActionReview)
	if err != nil {
		return nil, fmt.Errorf("failed to query last review: %w", err)
	}
	if last == nil {
		return nil, nil
	}
	delta := asOf.Sub(*last)
	return &delta, nil
}

// LastEditTimestamp returns the time of the latest UPDATE on the page, or
// nil when it was never edited.
func (r *ReviewStatus) LastEditTimestamp(ctx context.Context, pageID uint) (*time.Time, error) {
	last, err := r.requests.LastAction(ctx, audit.KindPage, pageID, audit.ActionUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to query last edit: %w", err)
	}
	return last, nil
}
