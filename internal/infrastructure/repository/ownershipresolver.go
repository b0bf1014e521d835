package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
)

// resourceOwnerTables maps page-scoped kinds to their tables for the
// ownership walk. Project and page have dedicated queries.
var resourceOwnerTables = map[audit.ResourceKind]string{
	audit.KindEquation:    "equations",
	audit.KindSnippet:     "code_snippets",
	audit.KindCanvas:      "canvases",
	audit.KindRecipe:      "recipes",
	audit.KindTranslation: "translations",
}

// OwnershipResolver answers "which user owns this resource" in a single
// joined query per kind. It never loads resource bodies: authorization runs
// before any fetch, so the walk has to be cheap and side-effect free.
type OwnershipResolver struct {
	db *gorm.DB
}

func NewOwnershipResolver(gdb *gorm.DB) access.OwnerResolver {
	return &OwnershipResolver{db: gdb}
}

func (r *OwnershipResolver) ProjectOwner(ctx context.Context, projectID uint) (uint, error) {
	var ownerID uint
	err := db.FromContext(ctx, r.db).
		Table("projects").
		Select("user_id").
		Where("id = ?", projectID).
		Take(&ownerID).Error
	return ownerID, translateOwnerError(err)
}

func (r *OwnershipResolver) PageOwner(ctx context.Context, pageID uint) (uint, error) {
	var ownerID uint
	err := db.FromContext(ctx, r.db).
		Table("pages").
		Select("projects.user_id").
		Joins("JOIN projects ON projects.id = pages.project_id").
		Where("pages.id = ?", pageID).
		Take(&ownerID).Error
	return ownerID, translateOwnerError(err)
}

// ResourceOwner walks resource → page → project → user. An unknown kind is
// unauthorized rather than an error: the caller fails closed either way.
func (r *OwnershipResolver) ResourceOwner(ctx context.Context, kind audit.ResourceKind, resourceID uint) (uint, error) {
	table, ok := resourceOwnerTables[kind]
	if !ok {
		return 0, access.ErrNotOwned
	}

	var ownerID uint
	err := db.FromContext(ctx, r.db).
		Table(table).
		Select("projects.user_id").
		Joins(fmt.Sprintf("JOIN pages ON pages.id = %s.page_id", table)).
		Joins("JOIN projects ON projects.id = pages.project_id").
		Where(fmt.Sprintf("%s.id = ?", table), resourceID).
		Take(&ownerID).Error
	return ownerID, translateOwnerError(err)
}

func translateOwnerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return access.ErrNotOwned
	}
	return fmt.Errorf("failed to resolve owner: %w", err)
}
