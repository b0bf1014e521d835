package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/persistence/models"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
)

// pageScopedTables maps each page-scoped resource kind to its table. Project
// and page kinds are handled separately because their scoping join differs.
var pageScopedTables = []struct {
	kind  audit.ResourceKind
	table string
}{
	{audit.KindEquation, "equations"},
	{audit.KindSnippet, "code_snippets"},
	{audit.KindCanvas, "canvases"},
	{audit.KindRecipe, "recipes"},
	{audit.KindTranslation, "translations"},
}

type AccessRequestRepository struct {
	db *gorm.DB
}

func NewAccessRequestRepository(gdb *gorm.DB) audit.Repository {
	return &AccessRequestRepository{db: gdb}
}

func (r *AccessRequestRepository) Create(ctx context.Context, request *audit.AccessRequest) error {
	model := accessRequestToModel(request)
	if err := db.FromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append access request: %w", err)
	}
	request.ID = model.ID
	return nil
}

// historyRow is the scan target for the merged history query. Column aliases
// in the SQL must match these field names.
type historyRow struct {
	Name      string
	Action    string
	Kind      string
	EntryTime time.Time
}

// ProjectHistory resolves entry names by joining the log against each content
// table, so rows for since-deleted resources drop out of the feed naturally.
// GET entries and denials are excluded; the feed is actions taken, not reads
// attempted.
func (r *AccessRequestRepository) ProjectHistory(ctx context.Context, projectID uint, start, end time.Time) ([]audit.HistoryEntry, error) {
	query, args := buildHistoryQuery("pages.project_id = ?", projectID, start, end)
	return r.runHistoryQuery(ctx, query, args)
}

func (r *AccessRequestRepository) UserHistory(ctx context.Context, userID uint, start, end time.Time) ([]audit.HistoryEntry, error) {
	query, args := buildHistoryQuery("projects.user_id = ?", userID, start, end)
	return r.runHistoryQuery(ctx, query, args)
}

func (r *AccessRequestRepository) LastAction(ctx context.Context, kind audit.ResourceKind, resourceID uint, action audit.ActionKind) (*time.Time, error) {
	var model models.AccessRequestModel
	err := db.FromContext(ctx, r.db).
		Where("resource_kind = ? AND resource_id = ? AND action = ? AND access_granted = ?",
			string(kind), resourceID, string(action), true).
		Order("access_time DESC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query last action: %w", err)
	}
	return &model.AccessTime, nil
}

// buildHistoryQuery assembles one UNION ALL over the seven resource kinds.
// scopeCond references pages or projects columns; both scoping joins are
// always present in each branch so the same condition works for project and
// user feeds. Table and kind names come from closed vocabularies, never from
// request input.
func buildHistoryQuery(scopeCond string, scopeID uint, start, end time.Time) (string, []interface{}) {
	const branchCond = `access_requests.resource_kind = ?
  AND access_requests.access_granted = ?
  AND access_requests.action <> 'GET'
  AND access_requests.access_time BETWEEN ? AND ?`

	var branches []string
	var args []interface{}

	appendBranch := func(selectName, joins string, kind audit.ResourceKind) {
		branches = append(branches, fmt.Sprintf(
			`SELECT %s AS name, access_requests.action AS action, access_requests.resource_kind AS kind, access_requests.access_time AS entry_time
FROM access_requests
%s
WHERE %s AND %s`,
			selectName, joins, branchCond, scopeCond))
		args = append(args, string(kind), true, start, end, scopeID)
	}

	// The project branch joins projects only, so a pages-scoped condition
	// is rewritten to the equivalent projects condition.
	projectScope := scopeCond
	if strings.Contains(scopeCond, "pages.") {
		projectScope = "projects.id = ?"
	}
	branches = append(branches, fmt.Sprintf(
		`SELECT projects.name AS name, access_requests.action AS action, access_requests.resource_kind AS kind, access_requests.access_time AS entry_time
FROM access_requests
JOIN projects ON projects.id = access_requests.resource_id
WHERE %s AND %s`,
		branchCond, projectScope))
	args = append(args, string(audit.KindProject), true, start, end, scopeID)

	appendBranch("pages.name",
		`JOIN pages ON pages.id = access_requests.resource_id
JOIN projects ON projects.id = pages.project_id`,
		audit.KindPage)

	for _, entry := range pageScopedTables {
		appendBranch(entry.table+".name", fmt.Sprintf(
			`JOIN %s ON %s.id = access_requests.resource_id
JOIN pages ON pages.id = %s.page_id
JOIN projects ON projects.id = pages.project_id`,
			entry.table, entry.table, entry.table),
			entry.kind)
	}

	query := strings.Join(branches, "\nUNION ALL\n") + "\nORDER BY entry_time ASC"
	return query, args
}

func (r *AccessRequestRepository) runHistoryQuery(ctx context.Context, query string, args []interface{}) ([]audit.HistoryEntry, error) {
	var rows []historyRow
	if err := db.FromContext(ctx, r.db).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	entries := make([]audit.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = audit.HistoryEntry{
			Name:   row.Name,
			Action: audit.ActionKind(row.Action),
			Kind:   audit.ResourceKind(row.Kind),
			Time:   row.EntryTime,
		}
	}
	return entries, nil
}

func accessRequestToModel(request *audit.AccessRequest) *models.AccessRequestModel {
	return &models.AccessRequestModel{
		ID:            request.ID,
		SessionID:     request.SessionID,
		ResourceID:    request.ResourceID,
		ResourceKind:  string(request.ResourceKind),
		AccessGranted: request.AccessGranted,
		Action:        string(request.Action),
		AccessTime:    request.AccessTime,
	}
}
