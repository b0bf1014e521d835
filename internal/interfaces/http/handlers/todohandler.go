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

// TodoHandler manages project todos. Todos are not an audited resource kind;
// authorization and logging both run against the owning project.
type TodoHandler struct {
	todos content.TodoRepository
	guard *access.Guard
	tm    *db.TransactionManager
}

func NewTodoHandler(todos content.TodoRepository, guard *access.Guard, tm *db.TransactionManager) *TodoHandler {
	return &TodoHandler{todos: todos, guard: guard, tm: tm}
}

type createTodoRequest struct {
	ProjectID   uint       `json:"project_id" binding:"required"`
	Description string     `json:"description" binding:"required"`
	DueTime     *time.Time `json:"due_time"`
}

type editTodoRequest struct {
	Description string     `json:"description" binding:"required"`
	DueTime     *time.Time `json:"due_time"`
	Completed   bool       `json:"completed"`
}

type todoResponse struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	Description string     `json:"description"`
	DueTime     *time.Time `json:"due_time"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toTodoResponse(t *content.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Description: t.Description,
		DueTime:     t.DueTime,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id and description are required")
		return
	}

	var todo *content.Todo
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, req.ProjectID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		todo, txErr = content.NewTodo(req.ProjectID, req.Description, req.DueTime)
		if txErr != nil {
			return txErr
		}
		if txErr = h.todos.Create(ctx, todo); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, req.ProjectID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "todo created", toTodoResponse(todo))
}

func (h *TodoHandler) ListByProject(c *gin.Context) {
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

	todos, err := h.todos.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	utils.SuccessResponse(c, http.StatusOK, "todos", out)
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "description is required")
		return
	}

	var todo *content.Todo
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		var txErr error
		todo, txErr = h.todos.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, todo.ProjectID, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		if txErr = todo.Edit(req.Description, req.DueTime, req.Completed); txErr != nil {
			return txErr
		}
		if txErr = h.todos.Update(ctx, todo); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, todo.ProjectID, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "todo updated", toTodoResponse(todo))
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		todo, txErr := h.todos.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, todo.ProjectID, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.todos.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, todo.ProjectID, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "todo deleted", nil)
}
