package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-recipe-service/entity"
	"github.com/tnqbao/gau-recipe-service/http/controller/dto"
	"github.com/tnqbao/gau-recipe-service/infra/produce"
	"github.com/tnqbao/gau-recipe-service/service"
	"github.com/tnqbao/gau-recipe-service/utils"
)

func (ctrl *Controller) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	filter := service.RecipeFilter{
		Section: c.Query("section"),
		Search:  c.Query("search"),
	}
	if chefIDStr := c.Query("chefId"); chefIDStr != "" {
		chefID, err := uuid.Parse(chefIDStr)
		if err != nil {
			utils.JSON400(c, "Invalid chefId format")
			return
		}
		filter.ChefID = &chefID
	}
	if ownerIDStr := c.Query("userId"); ownerIDStr != "" {
		ownerID, err := uuid.Parse(ownerIDStr)
		if err != nil {
			utils.JSON400(c, "Invalid userId format")
			return
		}
		filter.OwnerID = &ownerID
	}

	recipes, err := ctrl.Query.List(ctx, filter)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Recipe] Failed to list recipes: %v", err)
		respondServiceError(c, err)
		return
	}

	utils.JSON200(c, recipes)
}

// ListMyRecipes returns the acting user's recipes.
func (ctrl *Controller) ListMyRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	recipes, err := ctrl.Query.List(ctx, service.RecipeFilter{OwnerID: &userID})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Recipe] Failed to list recipes for user %s: %v", userID, err)
		respondServiceError(c, err)
		return
	}

	utils.JSON200(c, recipes)
}

func (ctrl *Controller) GetRecipeByID(c *gin.Context) {
	ctx := c.Request.Context()

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid recipe id format")
		return
	}

	var cached entity.Recipe
	if err := ctrl.Infra.Redis.Get(ctx, recipeCacheKey(recipeID), &cached); err == nil {
		utils.JSON200(c, cached)
		return
	}

	recipe, err := ctrl.Query.GetByID(ctx, recipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, recipeCacheKey(recipeID), recipe, recipeCacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Recipe] Failed to cache recipe %s: %v", recipeID, err)
	}

	utils.JSON200(c, recipe)
}

func (ctrl *Controller) ListRecipesWithChef(c *gin.Context) {
	ctx := c.Request.Context()

	recipes, err := ctrl.Query.ListWithChef(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Recipe] Failed to list recipes with chef: %v", err)
		respondServiceError(c, err)
		return
	}

	utils.JSON200(c, recipes)
}

func (ctrl *Controller) CreateRecipe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	var req dto.RecipeRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Recipe] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	recipe, err := ctrl.Lifecycle.Create(ctx, userID, service.RecipeInput{
		Name:        req.Name,
		Description: req.Description,
		Section:     req.Section,
		Link:        req.Link,
		Img:         req.Img,
		ChefID:      req.ChefID,
		State:       req.State,
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Recipe] Failed to create recipe: %v", err)
		respondServiceError(c, err)
		return
	}

	if err := ctrl.Infra.Produce.RecipeService.PublishRecipeEvent(ctx, produce.ActionRecipeCreated, recipe.ID.String(), recipe.OwnerID.String(), recipe.State); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Recipe] Failed to publish created event for %s: %v", recipe.ID, err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Recipe] Created recipe %s for user %s", recipe.ID, userID)
	utils.JSON201(c, recipe)
}

func (ctrl *Controller) ReplaceRecipe(c *gin.Context) {
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

	var req dto.RecipeRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	recipe, err := ctrl.Lifecycle.Replace(ctx, recipeID, userID, service.RecipeInput{
		Name:        req.Name,
		Description: req.Description,
		Section:     req.Section,
		Link:        req.Link,
		Img:         req.Img,
		ChefID:      req.ChefID,
		State:       req.State,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	utils.JSON202(c, recipe)
}

func (ctrl *Controller) PatchRecipe(c *gin.Context) {
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

	var req dto.PatchRecipeRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	recipe, err := ctrl.Lifecycle.PatchFields(ctx, recipeID, userID, service.RecipePatch{
		Name:        req.Name,
		Description: req.Description,
		Section:     req.Section,
		Link:        req.Link,
		Img:         req.Img,
		ChefID:      req.ChefID,
		State:       req.State,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	utils.JSON202(c, recipe)
}

func (ctrl *Controller) DeleteRecipe(c *gin.Context) {
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

	deletedID, err := ctrl.Lifecycle.Delete(ctx, recipeID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	if err := ctrl.Infra.Produce.RecipeService.PublishRecipeEvent(ctx, produce.ActionRecipeDeleted, deletedID.String(), userID.String(), ""); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Recipe] Failed to publish deleted event for %s: %v", deletedID, err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Recipe] Deleted recipe %s", deletedID)
	utils.JSON202(c, gin.H{
		"message": "Recipe deleted successfully",
		"id":      deletedID,
	})
}

func (ctrl *Controller) ChangeRecipeState(c *gin.Context) {
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

	var req dto.ChangeStateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	recipe, err := ctrl.Lifecycle.ChangeState(ctx, recipeID, userID, req.State)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.invalidateRecipeCache(ctx, recipeID)
	if err := ctrl.Infra.Produce.RecipeService.PublishRecipeEvent(ctx, produce.ActionRecipeStateChange, recipe.ID.String(), recipe.OwnerID.String(), recipe.State); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Recipe] Failed to publish state event for %s: %v", recipe.ID, err)
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Recipe] Changed state of recipe %s to %s", recipe.ID, recipe.State)
	utils.JSON200(c, gin.H{
		"message": "State changed to: " + recipe.State,
		"recipe":  recipe,
	})
}
