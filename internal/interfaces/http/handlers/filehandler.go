package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/storage"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

// FileHandler manages uploads. Files are not an audited resource kind: the
// file row's creation timestamp is the UPLOAD event in history feeds, so
// granted file operations write no access entries of their own. Ownership is
// still enforced through the owning page on every operation.
type FileHandler struct {
	files content.FileRepository
	store *storage.FileStore
	guard *access.Guard
	tm    *db.TransactionManager
}

func NewFileHandler(files content.FileRepository, store *storage.FileStore, guard *access.Guard, tm *db.TransactionManager) *FileHandler {
	return &FileHandler{files: files, store: store, guard: guard, tm: tm}
}

type fileResponse struct {
	ID        uint      `json:"id"`
	PageID    uint      `json:"page_id"`
	Name      string    `json:"name"`
	Hash      string    `json:"hash"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func toFileResponse(f *content.File) fileResponse {
	return fileResponse{
		ID:        f.ID,
		PageID:    f.PageID,
		Name:      f.Name,
		Hash:      f.Hash,
		Size:      f.Size,
		CreatedAt: f.CreatedAt,
	}
}

// Upload stores the blob under its content hash and records the file row.
// Re-uploading identical bytes shares the existing blob.
func (h *FileHandler) Upload(c *gin.Context) {
	pageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.guard.Require(c.Request.Context(), utils.GetTokenFromCookie(c), audit.KindPage, pageID, audit.ActionUpload); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file field is required")
		return
	}

	src, err := header.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read upload")
		return
	}
	defer src.Close()

	hash, size, err := h.store.Save(src)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := content.NewFile(pageID, header.Filename, hash, size)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.files.Create(c.Request.Context(), file); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "file uploaded", toFileResponse(file))
}

func (h *FileHandler) ListByPage(c *gin.Context) {
	pageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, pageID, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	files, err := h.files.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]fileResponse, len(files))
	for i, f := range files {
		out[i] = toFileResponse(f)
	}
	utils.SuccessResponse(c, http.StatusOK, "files", out)
}

// Download looks up the file row to find its owning page, authorizes against
// that page, and only then streams the blob.
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	file, err := h.files.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, file.PageID, audit.ActionGet); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	blob, err := h.store.Open(file.Hash)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer blob.Close()

	c.DataFromReader(http.StatusOK, file.Size, "application/octet-stream", blob, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Name),
	})
}

// Delete removes the file row and, when it was the last reference to the
// blob, the blob itself.
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var orphanedHash string
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		file, txErr := h.files.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if _, txErr = h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, file.PageID, audit.ActionDelete); txErr != nil {
			return txErr
		}
		if txErr = h.files.Delete(ctx, id); txErr != nil {
			return txErr
		}
		remaining, txErr := h.files.CountByHash(ctx, file.Hash)
		if txErr != nil {
			return txErr
		}
		if remaining == 0 {
			orphanedHash = file.Hash
		}
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Blob removal happens after commit; a crash in between leaves an
	// orphaned blob, never a dangling row.
	if orphanedHash != "" {
		if err := h.store.Remove(orphanedHash); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "file deleted", nil)
}
