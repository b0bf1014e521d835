package content

import (
	"context"
	"errors"
	"strings"
	"time"
)

var errEmptyHash = errors.New("file hash is required")

// File is an uploaded attachment. The blob lives in the file store under its
// content hash; identical uploads share one blob. Files have no request log
// of their own: CreatedAt stands in for the UPLOAD event in history feeds.
type File struct {
	ID        uint
	PageID    uint
	Name      string
	Hash      string
	Size      int64
	CreatedAt time.Time
}

func NewFile(pageID uint, name, hash string, size int64) (*File, error) {
	if err := requirePage(pageID, name); err != nil {
		return nil, err
	}
	if hash == "" {
		return nil, errEmptyHash
	}
	return &File{
		PageID:    pageID,
		Name:      strings.TrimSpace(name),
		Hash:      hash,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type FileRepository interface {
	Create(ctx context.Context, file *File) error
	GetByID(ctx context.Context, id uint) (*File, error)
	ListByPage(ctx context.Context, pageID uint) ([]*File, error)
	ListByProject(ctx context.Context, projectID uint) ([]*File, error)
	// ListCreatedByProject returns files created within [start, end] for the
	// synthetic upload rows in history feeds.
	ListCreatedByProject(ctx context.Context, projectID uint, start, end time.Time) ([]*File, error)
	ListCreatedByUser(ctx context.Context, userID uint, start, end time.Time) ([]*File, error)
	// CountByHash reports how many file rows reference a blob, so deletes
	// only remove the blob when the last reference goes.
	CountByHash(ctx context.Context, hash string) (int64, error)
	Delete(ctx context.Context, id uint) error
}
