// Package audit defines the append-only access log. Every access decision —
// granted or denied — is recorded with its actor, target, and action kind.
// The log is not purely diagnostic: history feeds, last-edit timestamps, and
// review reminders are all derived from it.
package audit

import (
	"context"
	"fmt"
	"time"
)

// ActionKind is the closed vocabulary of loggable actions. Handlers must not
// invent ad hoc strings; unknown values are rejected at the write boundary.
type ActionKind string

const (
	ActionGet    ActionKind = "GET"
	ActionCreate ActionKind = "CREATE"
	ActionUpdate ActionKind = "UPDATE"
	ActionDelete ActionKind = "DELETE"
	ActionReview ActionKind = "REVIEW"
	ActionUpload ActionKind = "UPLOAD"
)

// Valid reports whether k is part of the closed vocabulary.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionGet, ActionCreate, ActionUpdate, ActionDelete, ActionReview, ActionUpload:
		return true
	}
	return false
}

// ResourceKind identifies what an access decision was made against.
type ResourceKind string

const (
	KindProject     ResourceKind = "project"
	KindPage        ResourceKind = "page"
	KindEquation    ResourceKind = "equation"
	KindSnippet     ResourceKind = "snippet"
	KindCanvas      ResourceKind = "canvas"
	KindRecipe      ResourceKind = "recipe"
	KindTranslation ResourceKind = "translation"
)

// Valid reports whether k is one of the seven loggable resource kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case KindProject, KindPage, KindEquation, KindSnippet, KindCanvas, KindRecipe, KindTranslation:
		return true
	}
	return false
}

// AccessRequest is one appended access decision. SessionID is nil when the
// denial was caused by an invalid session: there is no actor to attribute,
// and the entry is written with a null actor rather than skipped.
type AccessRequest struct {
	ID            uint
	SessionID     *uint
	ResourceID    uint
	ResourceKind  ResourceKind
	AccessGranted bool
	Action        ActionKind
	AccessTime    time.Time
}

// NewAccessRequest validates the closed vocabularies and stamps the entry.
func NewAccessRequest(sessionID *uint, resourceID uint, kind ResourceKind, granted bool, action ActionKind) (*AccessRequest, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	if !action.Valid() {
		return nil, fmt.Errorf("unknown action kind %q", action)
	}
	return &AccessRequest{
		SessionID:     sessionID,
		ResourceID:    resourceID,
		ResourceKind:  kind,
		AccessGranted: granted,
		Action:        action,
		AccessTime:    time.Now().UTC(),
	}, nil
}

// HistoryEntry is one row of a merged activity feed.
type HistoryEntry struct {
	Name   string       `json:"name"`
	Action ActionKind   `json:"action"`
	Kind   ResourceKind `json:"kind"`
	Time   time.Time    `json:"time"`
}

// Repository appends and queries access decisions. Entries are never updated
// or deleted.
type Repository interface {
	Create(ctx context.Context, request *AccessRequest) error

	// ProjectHistory returns granted, non-GET entries for every resource
	// under the project within [start, end], ascending by time.
	ProjectHistory(ctx context.Context, projectID uint, start, end time.Time) ([]HistoryEntry, error)

	// UserHistory is ProjectHistory across every project the user owns.
	UserHistory(ctx context.Context, userID uint, start, end time.Time) ([]HistoryEntry, error)

	// LastAction returns the time of the most recent granted action of the
	// given kind on the resource, or (nil, nil) when it never happened.
	LastAction(ctx context.Context, kind ResourceKind, resourceID uint, action ActionKind) (*time.Time, error)
}
