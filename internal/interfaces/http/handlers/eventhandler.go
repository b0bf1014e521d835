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

// EventHandler manages project calendar events. Like todos, events authorize
// and log against the owning project.
type EventHandler struct {
	events content.EventRepository
	guard  *access.Guard
	tm     *db.TransactionManager
}

func NewEventHandler(events content.EventRepository, guard *access.Guard, tm *db.TransactionManager) *EventHandler {
	return &EventHandler{events: events, guard: guard, tm: tm}
}

type createEventRequest struct {
	ProjectID   uint      `json:"project_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type editEventRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type eventResponse struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventResponse(e *content.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Name:        e.Name,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		CreatedAt:   e.CreatedAt,
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id, name, start_time, and end_time are required")
		return
	}

	var event *content.Event
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, req.ProjectID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		event, txErr = content.NewEvent(req.ProjectID, req.Name, req.Description, req.StartTime, req.EndTime)
		if txErr != nil {
			return txErr
		}
		if txErr = h.events.Create(ctx, event); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, req.ProjectID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "event created", toEventResponse(event))
}

func (h *EventHandler) ListByProject(c *gin.Context) {
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

	events, err := h.events.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	utils.SuccessResponse(c, http.StatusOK, "events", out)
}

// Calendar returns the session user's events across all projects within the
// requested window.
func (h *EventHandler) Calendar(c *gin.Context) {
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	sess, err := h.guard.RequireSession(c.Request.Context(), utils.GetTokenFromCookie(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	events, err := h.events.ListByUserBetween(c.Request.Context(), sess.UserID, start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	utils.SuccessResponse(c, http.StatusOK, "events", out)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, start_time, and end_time are required")
		return
	}

	var event *content.Event
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		var txErr error
		event, txErr = h.events.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, event.ProjectID, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		if txErr = event.Edit(req.Name, req.Description, req.StartTime, req.EndTime); txErr != nil {
			return txErr
		}
		if txErr = h.events.Update(ctx, event); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, event.ProjectID, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event updated", toEventResponse(event))
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		event, txErr := h.events.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, event.ProjectID, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.events.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindProject, event.ProjectID, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "event deleted", nil)
}
