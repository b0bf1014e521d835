package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/content"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

type CanvasHandler struct {
	canvases content.CanvasRepository
	guard    *access.Guard
	tm       *db.TransactionManager
}

func NewCanvasHandler(canvases content.CanvasRepository, guard *access.Guard, tm *db.TransactionManager) *CanvasHandler {
	return &CanvasHandler{canvases: canvases, guard: guard, tm: tm}
}

type createCanvasRequest struct {
	PageID      uint   `json:"page_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type editCanvasRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type canvasResponse struct {
	ID           uint      `json:"id"`
	PageID       uint      `json:"page_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toCanvasResponse(cv *content.Canvas) canvasResponse {
	return canvasResponse{
		ID:           cv.ID,
		PageID:       cv.PageID,
		Name:         cv.Name,
		Description:  cv.Description,
		Content:      cv.Content,
		CreatedAt:    cv.CreatedAt,
		LastEditTime: cv.LastEditTime,
	}
}

func (h *CanvasHandler) Create(c *gin.Context) {
	var req createCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "page_id and name are required")
		return
	}

	var canvas *content.Canvas
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, req.PageID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		canvas, txErr = content.NewCanvas(req.PageID, req.Name, req.Description, req.Content)
		if txErr != nil {
			return txErr
		}
		if txErr = h.canvases.Create(ctx, canvas); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindCanvas, canvas.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "canvas created", toCanvasResponse(canvas))
}

func (h *CanvasHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindCanvas, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	canvas, err := h.canvases.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindCanvas, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "canvas", toCanvasResponse(canvas))
}

func (h *CanvasHandler) ListByPage(c *gin.Context) {
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

	canvases, err := h.canvases.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]canvasResponse, len(canvases))
	for i, cv := range canvases {
		out[i] = toCanvasResponse(cv)
	}
	utils.SuccessResponse(c, http.StatusOK, "canvases", out)
}

func (h *CanvasHandler) ListByProject(c *gin.Context) {
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

	canvases, err := h.canvases.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]canvasResponse, len(canvases))
	for i, cv := range canvases {
		out[i] = toCanvasResponse(cv)
	}
	utils.SuccessResponse(c, http.StatusOK, "canvases", out)
}

func (h *CanvasHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var canvas *content.Canvas
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindCanvas, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		canvas, txErr = h.canvases.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = canvas.Edit(req.Name, req.Description, req.Content); txErr != nil {
			return txErr
		}
		if txErr = h.canvases.Update(ctx, canvas); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindCanvas, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "canvas updated", toCanvasResponse(canvas))
}

func (h *CanvasHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindCanvas, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.canvases.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindCanvas, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "canvas deleted", nil)
}
