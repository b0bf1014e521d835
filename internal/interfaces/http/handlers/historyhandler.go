package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	appaudit "github.com/Maple-Lazuli/one-place-v3/internal/application/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/domain/audit"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

// HistoryHandler serves the merged activity feeds derived from the access
// log: granted non-GET decisions plus synthetic file-upload rows, ascending
// by time.
type HistoryHandler struct {
	history *appaudit.History
	guard   *access.Guard
}

func NewHistoryHandler(history *appaudit.History, guard *access.Guard) *HistoryHandler {
	return &HistoryHandler{history: history, guard: guard}
}

func (h *HistoryHandler) ForProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindProject, projectID, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.history.ForProject(ctx, projectID, start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "project history", entries)
}

// ForUser returns the feed across every project the session user owns. The
// scope is the caller's own account, so session liveness is the only check.
func (h *HistoryHandler) ForUser(c *gin.Context) {
	start, end, ok := parseTimeRange(c)
	if !ok {
		return
	}

	sess, err := h.guard.RequireSession(c.Request.Context(), utils.GetTokenFromCookie(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.history.ForUser(c.Request.Context(), sess.UserID, start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user history", entries)
}
