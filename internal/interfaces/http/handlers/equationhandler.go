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

type EquationHandler struct {
	equations content.EquationRepository
	guard     *access.Guard
	tm        *db.TransactionManager
}

func NewEquationHandler(equations content.EquationRepository, guard *access.Guard, tm *db.TransactionManager) *EquationHandler {
	return &EquationHandler{equations: equations, guard: guard, tm: tm}
}

type createEquationRequest struct {
	PageID      uint   `json:"page_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type editEquationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type equationResponse struct {
	ID           uint      `json:"id"`
	PageID       uint      `json:"page_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toEquationResponse(e *content.Equation) equationResponse {
	return equationResponse{
		ID:           e.ID,
		PageID:       e.PageID,
		Name:         e.Name,
		Description:  e.Description,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
		LastEditTime: e.LastEditTime,
	}
}

func (h *EquationHandler) Create(c *gin.Context) {
	var req createEquationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "page_id and name are required")
		return
	}

	var equation *content.Equation
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, req.PageID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		equation, txErr = content.NewEquation(req.PageID, req.Name, req.Description, req.Content)
		if txErr != nil {
			return txErr
		}
		if txErr = h.equations.Create(ctx, equation); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindEquation, equation.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "equation created", toEquationResponse(equation))
}

func (h *EquationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindEquation, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	equation, err := h.equations.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindEquation, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "equation", toEquationResponse(equation))
}

func (h *EquationHandler) ListByPage(c *gin.Context) {
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

	equations, err := h.equations.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]equationResponse, len(equations))
	for i, e := range equations {
		out[i] = toEquationResponse(e)
	}
	utils.SuccessResponse(c, http.StatusOK, "equations", out)
}

func (h *EquationHandler) ListByProject(c *gin.Context) {
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

	equations, err := h.equations.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]equationResponse, len(equations))
	for i, e := range equations {
		out[i] = toEquationResponse(e)
	}
	utils.SuccessResponse(c, http.StatusOK, "equations", out)
}

func (h *EquationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editEquationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var equation *content.Equation
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindEquation, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		equation, txErr = h.equations.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = equation.Edit(req.Name, req.Description, req.Content); txErr != nil {
			return txErr
		}
		if txErr = h.equations.Update(ctx, equation); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindEquation, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "equation updated", toEquationResponse(equation))
}

func (h *EquationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindEquation, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.equations.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindEquation, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "equation deleted", nil)
}
