package audit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
)

// History builds merged activity feeds from the access log. GET entries are
// recorded for audit completeness but excluded here as display noise; only
// granted decisions appear. Files have no request log of their own, so
// their creation timestamps are merged in as synthetic UPLOAD rows.
type History struct {
	requests audit.Repository
	files    content.FileRepository
}

func NewHistory(requests audit.Repository, files content.FileRepository) *History {
	return &History{requests: requests, files: files}
}

// ForProject returns the activity feed for one project within [start, end],
// ascending by time.
func (h *History) ForProject(ctx context.Context, projectID uint, start, end time.Time) ([]audit.HistoryEntry, error) {
	entries, err := h.requests.ProjectHistory(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query project history: %w", err)
	}

	uploads, err := h.files.ListCreatedByProject(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query project uploads: %w", err)
	}

	return mergeUploads(entries, uploads), nil
}

// ForUser returns the activity feed across every project the user owns.
func (h *History) ForUser(ctx context.Context, userID uint, start, end time.Time) ([]audit.HistoryEntry, error) {
	entries, err := h.requests.UserHistory(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query user history: %w", err)
	}

	uploads, err := h.files.ListCreatedByUser(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query user uploads: %w", err)
	}

	return mergeUploads(entries, uploads), nil
}

func mergeUploads(entries []audit.HistoryEntry, uploads []*content.File) []audit.HistoryEntry {
	merged := make([]audit.HistoryEntry, 0, len(entries)+len(uploads))
	merged = append(merged, entries...)
	for _, f := range uploads {
		merged = append(merged, audit.HistoryEntry{
			Name:   f.Name,
			Action: audit.ActionUpload,
			Kind:   audit.KindPage,
			Time:   f.CreatedAt,
		})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Time.Before(merged[j].Time)
	})
	return merged
}
