package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/workspace"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

type ProjectHandler struct {
	projects workspace.ProjectRepository
	guard    *access.Guard
	tm       *db.TransactionManager
}

func NewProjectHandler(projects workspace.ProjectRepository, guard *access.Guard, tm *db.TransactionManager) *ProjectHandler {
	return &ProjectHandler{projects: projects, guard: guard, tm: tm}
}

type projectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type projectResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toProjectResponse(p *workspace.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		LastEditTime: p.LastEditTime,
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	sess, err := h.guard.RequireSession(c.Request.Context(), utils.GetTokenFromCookie(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var project *workspace.Project
	err = h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		var txErr error
		project, txErr = workspace.NewProject(sess.UserID, req.Name, req.Description)
		if txErr != nil {
			return txErr
		}
		if txErr = h.projects.Create(ctx, project); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, project.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "project created", toProjectResponse(project))
}

// List returns the session user's own projects. The collection is implicitly
// scoped to the caller; there is no way to list another user's.
func (h *ProjectHandler) List(c *gin.Context) {
	sess, err := h.guard.RequireSession(c.Request.Context(), utils.GetTokenFromCookie(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projects, err := h.projects.ListByUser(c.Request.Context(), sess.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]projectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	utils.SuccessResponse(c, http.StatusOK, "projects", out)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	project, err := h.projects.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "project", toProjectResponse(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var project *workspace.Project
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		project, txErr = h.projects.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = project.Rename(req.Name, req.Description); txErr != nil {
			return txErr
		}
		if txErr = h.projects.Update(ctx, project); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project updated", toProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.projects.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project deleted", nil)
}
