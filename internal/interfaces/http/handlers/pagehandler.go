package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	appaudit "github.com/Maple-Lazuli/one-place-v3/internal/application/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/workspace"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

type PageHandler struct {
	pages        workspace.PageRepository
	reviewStatus *appaudit.ReviewStatus
	guard        *access.Guard
	tm           *db.TransactionManager
}

func NewPageHandler(pages workspace.PageRepository, reviewStatus *appaudit.ReviewStatus, guard *access.Guard, tm *db.TransactionManager) *PageHandler {
	return &PageHandler{pages: pages, reviewStatus: reviewStatus, guard: guard, tm: tm}
}

type createPageRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Content   string `json:"content"`
}

type editPageRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content"`
}

type pageResponse struct {
	ID           uint      `json:"id"`
	ProjectID    uint      `json:"project_id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toPageResponse(p *workspace.Page) pageResponse {
	return pageResponse{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		Name:         p.Name,
		Content:      p.Content,
		CreatedAt:    p.CreatedAt,
		LastEditTime: p.LastEditTime,
	}
}

// Create authorizes against the parent project, then logs the granted
// decision against the page that now exists.
func (h *PageHandler) Create(c *gin.Context) {
	var req createPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id and name are required")
		return
	}

	var page *workspace.Page
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, req.ProjectID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		page, txErr = workspace.NewPage(req.ProjectID, req.Name, req.Content)
		if txErr != nil {
			return txErr
		}
		if txErr = h.pages.Create(ctx, page); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindPage, page.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "page created", toPageResponse(page))
}

func (h *PageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := h.pages.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "page", toPageResponse(page))
}

func (h *PageHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, projectID, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pages, err := h.pages.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]pageResponse, len(pages))
	for i, p := range pages {
		out[i] = toPageResponse(p)
	}
	utils.SuccessResponse(c, http.StatusOK, "pages", out)
}

func (h *PageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var page *workspace.Page
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		page, txErr = h.pages.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = page.Edit(req.Name, req.Content); txErr != nil {
			return txErr
		}
		if txErr = h.pages.Update(ctx, page); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindPage, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "page updated", toPageResponse(page))
}

func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.pages.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindPage, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "page deleted", nil)
}

// MarkReviewed appends a REVIEW entry for the page. Reviewing mutates
// nothing; the log entry is the whole point.
func (h *PageHandler) MarkReviewed(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, id, audit.ActionReview)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, id, audit.ActionReview)
	utils.SuccessResponse(c, http.StatusOK, "page marked reviewed", nil)
}

type reviewStatusResponse struct {
	// SecondsSinceReview is null when the page was never reviewed.
	SecondsSinceReview *float64   `json:"seconds_since_review"`
	LastEditTime       *time.Time `json:"last_edit_time"`
}

// GetReviewStatus reports how stale the page is, derived from REVIEW and
// UPDATE entries in the access log.
func (h *PageHandler) GetReviewStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	delta, err := h.reviewStatus.LastReviewDelta(ctx, id, time.Now().UTC())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	lastEdit, err := h.reviewStatus.LastEditTimestamp(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var seconds *float64
	if delta != nil {
		s := delta.Seconds()
		seconds = &s
	}

	h.guard.Granted(ctx, sess, audit.KindPage, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "review status", reviewStatusResponse{
		SecondsSinceReview: seconds,
		LastEditTime:       lastEdit,
	})
}
