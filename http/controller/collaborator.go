package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-recipe-service/http/controller/dto"
	"github.com/tnqbao/gau-recipe-service/utils"
)

func (ctrl *Controller) AddCollaborator(c *gin.Context) {
	ctx := c.Request.Context()

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid recipe id format")
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	var req dto.AddCollaboratorRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	recipe, err := ctrl.Lifecycle.AddCollaborator(ctx, recipeID, userID, req.Username)
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Collaborator] Failed to add '%s' to recipe %s: %v", req.Username, recipeID, err)
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Collaborator] Added '%s' to recipe %s", req.Username, recipeID)
	utils.JSON200(c, recipe)
}

func (ctrl *Controller) RemoveCollaborator(c *gin.Context) {
	ctx := c.Request.Context()

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid recipe id format")
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	username := c.Param("username")
	if username == "" {
		utils.JSON400(c, "Username is required")
		return
	}

	recipe, err := ctrl.Lifecycle.RemoveCollaborator(ctx, recipeID, userID, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Collaborator] Removed '%s' from recipe %s", username, recipeID)
	utils.JSON200(c, recipe)
}
