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

type SnippetHandler struct {
	snippets content.SnippetRepository
	guard    *access.Guard
	tm       *db.TransactionManager
}

func NewSnippetHandler(snippets content.SnippetRepository, guard *access.Guard, tm *db.TransactionManager) *SnippetHandler {
	return &SnippetHandler{snippets: snippets, guard: guard, tm: tm}
}

type createSnippetRequest struct {
	PageID      uint   `json:"page_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Code        string `json:"code"`
}

type editSnippetRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Code        string `json:"code"`
}

type snippetResponse struct {
	ID           uint      `json:"id"`
	PageID       uint      `json:"page_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Language     string    `json:"language"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toSnippetResponse(s *content.Snippet) snippetResponse {
	return snippetResponse{
		ID:           s.ID,
		PageID:       s.PageID,
		Name:         s.Name,
		Description:  s.Description,
		Language:     s.Language,
		Code:         s.Code,
		CreatedAt:    s.CreatedAt,
		LastEditTime: s.LastEditTime,
	}
}

func (h *SnippetHandler) Create(c *gin.Context) {
	var req createSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "page_id and name are required")
		return
	}

	var snippet *content.Snippet
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, req.PageID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		snippet, txErr = content.NewSnippet(req.PageID, req.Name, req.Description, req.Language, req.Code)
		if txErr != nil {
			return txErr
		}
		if txErr = h.snippets.Create(ctx, snippet); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindSnippet, snippet.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "snippet created", toSnippetResponse(snippet))
}

func (h *SnippetHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindSnippet, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	snippet, err := h.snippets.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindSnippet, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "snippet", toSnippetResponse(snippet))
}

func (h *SnippetHandler) ListByPage(c *gin.Context) {
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

	snippets, err := h.snippets.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]snippetResponse, len(snippets))
	for i, s := range snippets {
		out[i] = toSnippetResponse(s)
	}
	utils.SuccessResponse(c, http.StatusOK, "snippets", out)
}

func (h *SnippetHandler) ListByProject(c *gin.Context) {
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

	snippets, err := h.snippets.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]snippetResponse, len(snippets))
	for i, s := range snippets {
		out[i] = toSnippetResponse(s)
	}
	utils.SuccessResponse(c, http.StatusOK, "snippets", out)
}

func (h *SnippetHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var snippet *content.Snippet
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindSnippet, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		snippet, txErr = h.snippets.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = snippet.Edit(req.Name, req.Description, req.Language, req.Code); txErr != nil {
			return txErr
		}
		if txErr = h.snippets.Update(ctx, snippet); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindSnippet, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "snippet updated", toSnippetResponse(snippet))
}

func (h *SnippetHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindSnippet, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.snippets.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindSnippet, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "snippet deleted", nil)
}
