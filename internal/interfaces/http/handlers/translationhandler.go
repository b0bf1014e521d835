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

type TranslationHandler struct {
	translations content.TranslationRepository
	guard        *access.Guard
	tm           *db.TransactionManager
}

func NewTranslationHandler(translations content.TranslationRepository, guard *access.Guard, tm *db.TransactionManager) *TranslationHandler {
	return &TranslationHandler{translations: translations, guard: guard, tm: tm}
}

type createTranslationRequest struct {
	PageID     uint   `json:"page_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Language   string `json:"language"`
	SourceText string `json:"source_text"`
	Translated string `json:"translated"`
}

type editTranslationRequest struct {
	Name       string `json:"name" binding:"required"`
	Language   string `json:"language"`
	SourceText string `json:"source_text"`
	Translated string `json:"translated"`
}

type translationResponse struct {
	ID           uint      `json:"id"`
	PageID       uint      `json:"page_id"`
	Name         string    `json:"name"`
	Language     string    `json:"language"`
	SourceText   string    `json:"source_text"`
	Translated   string    `json:"translated"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toTranslationResponse(t *content.Translation) translationResponse {
	return translationResponse{
		ID:           t.ID,
		PageID:       t.PageID,
		Name:         t.Name,
		Language:     t.Language,
		SourceText:   t.SourceText,
		Translated:   t.Translated,
		CreatedAt:    t.CreatedAt,
		LastEditTime: t.LastEditTime,
	}
}

func (h *TranslationHandler) Create(c *gin.Context) {
	var req createTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "page_id and name are required")
		return
	}

	var translation *content.Translation
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, req.PageID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		translation, txErr = content.NewTranslation(req.PageID, req.Name, req.Language, req.SourceText, req.Translated)
		if txErr != nil {
			return txErr
		}
		if txErr = h.translations.Create(ctx, translation); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindTranslation, translation.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "translation created", toTranslationResponse(translation))
}

func (h *TranslationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindTranslation, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	translation, err := h.translations.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindTranslation, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "translation", toTranslationResponse(translation))
}

func (h *TranslationHandler) ListByPage(c *gin.Context) {
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

	translations, err := h.translations.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]translationResponse, len(translations))
	for i, t := range translations {
		out[i] = toTranslationResponse(t)
	}
	utils.SuccessResponse(c, http.StatusOK, "translations", out)
}

func (h *TranslationHandler) ListByProject(c *gin.Context) {
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

	translations, err := h.translations.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]translationResponse, len(translations))
	for i, t := range translations {
		out[i] = toTranslationResponse(t)
	}
	utils.SuccessResponse(c, http.StatusOK, "translations", out)
}

func (h *TranslationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var translation *content.Translation
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindTranslation, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		translation, txErr = h.translations.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = translation.Edit(req.Name, req.Language, req.SourceText, req.Translated); txErr != nil {
			return txErr
		}
		if txErr = h.translations.Update(ctx, translation); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindTranslation, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "translation updated", toTranslationResponse(translation))
}

func (h *TranslationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindTranslation, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.translations.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindTranslation, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "translation deleted", nil)
}
