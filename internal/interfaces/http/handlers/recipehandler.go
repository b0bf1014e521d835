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

type RecipeHandler struct {
	recipes content.RecipeRepository
	guard   *access.Guard
	tm      *db.TransactionManager
}

func NewRecipeHandler(recipes content.RecipeRepository, guard *access.Guard, tm *db.TransactionManager) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, guard: guard, tm: tm}
}

type createRecipeRequest struct {
	PageID      uint   `json:"page_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type editRecipeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type recipeResponse struct {
	ID           uint      `json:"id"`
	PageID       uint      `json:"page_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastEditTime time.Time `json:"last_edit_time"`
}

func toRecipeResponse(r *content.Recipe) recipeResponse {
	return recipeResponse{
		ID:           r.ID,
		PageID:       r.PageID,
		Name:         r.Name,
		Description:  r.Description,
		Content:      r.Content,
		CreatedAt:    r.CreatedAt,
		LastEditTime: r.LastEditTime,
	}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "page_id and name are required")
		return
	}

	var recipe *content.Recipe
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindPage, req.PageID, audit.ActionCreate)
		if txErr != nil {
			return txErr
		}
		recipe, txErr = content.NewRecipe(req.PageID, req.Name, req.Description, req.Content)
		if txErr != nil {
			return txErr
		}
		if txErr = h.recipes.Create(ctx, recipe); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindRecipe, recipe.ID, audit.ActionCreate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "recipe created", toRecipeResponse(recipe))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	sess, err := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindRecipe, id, audit.ActionGet)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	recipe, err := h.recipes.GetByID(ctx, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindRecipe, id, audit.ActionGet)
	utils.SuccessResponse(c, http.StatusOK, "recipe", toRecipeResponse(recipe))
}

func (h *RecipeHandler) ListByPage(c *gin.Context) {
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

	recipes, err := h.recipes.ListByPage(ctx, pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindPage, pageID, audit.ActionGet)

	out := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = toRecipeResponse(r)
	}
	utils.SuccessResponse(c, http.StatusOK, "recipes", out)
}

func (h *RecipeHandler) ListByProject(c *gin.Context) {
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

	recipes, err := h.recipes.ListByProject(ctx, projectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.guard.Granted(ctx, sess, audit.KindProject, projectID, audit.ActionGet)

	out := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = toRecipeResponse(r)
	}
	utils.SuccessResponse(c, http.StatusOK, "recipes", out)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req editRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name is required")
		return
	}

	var recipe *content.Recipe
	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindRecipe, id, audit.ActionUpdate)
		if txErr != nil {
			return txErr
		}
		recipe, txErr = h.recipes.GetByID(ctx, id)
		if txErr != nil {
			return txErr
		}
		if txErr = recipe.Edit(req.Name, req.Description, req.Content); txErr != nil {
			return txErr
		}
		if txErr = h.recipes.Update(ctx, recipe); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindRecipe, id, audit.ActionUpdate)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "recipe updated", toRecipeResponse(recipe))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tm.RunInTransaction(c.Request.Context(), func(ctx context.Context) error {
		sess, txErr := h.guard.Require(ctx, utils.GetTokenFromCookie(c), audit.KindRecipe, id, audit.ActionDelete)
		if txErr != nil {
			return txErr
		}
		if txErr = h.recipes.Delete(ctx, id); txErr != nil {
			return txErr
		}
		h.guard.Granted(ctx, sess, audit.KindRecipe, id, audit.ActionDelete)
		return nil
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "recipe deleted", nil)
}
