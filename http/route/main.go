package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-recipe-service/http/controller"
	middlewares "github.com/tnqbao/gau-recipe-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api/v1")
	{
		recipeRoutes := apiRoutes.Group("/recipes")
		{
			recipeRoutes.GET("/", ctrl.ListRecipes)
			recipeRoutes.GET("/with-chef", ctrl.ListRecipesWithChef)
			recipeRoutes.GET("/mine", middles.AuthMiddleware, ctrl.ListMyRecipes)
			recipeRoutes.GET("/:id", ctrl.GetRecipeByID)

			recipeRoutes.POST("/", middles.AuthMiddleware, ctrl.CreateRecipe)
			recipeRoutes.PUT("/:id", middles.AuthMiddleware, ctrl.ReplaceRecipe)
			recipeRoutes.PATCH("/:id", middles.AuthMiddleware, ctrl.PatchRecipe)
			recipeRoutes.DELETE("/:id", middles.AuthMiddleware, ctrl.DeleteRecipe)
			recipeRoutes.PUT("/:id/state", middles.AuthMiddleware, ctrl.ChangeRecipeState)

			recipeRoutes.POST("/:id/collaborators", middles.AuthMiddleware, ctrl.AddCollaborator)
			recipeRoutes.DELETE("/:id/collaborators/:username", middles.AuthMiddleware, ctrl.RemoveCollaborator)

			recipeRoutes.POST("/images", middles.AuthMiddleware, ctrl.UploadRecipeImage)
		}

		chefRoutes := apiRoutes.Group("/chefs")
		{
			chefRoutes.GET("/", ctrl.ListChefs)
			chefRoutes.POST("/", middles.AuthMiddleware, ctrl.CreateChef)
		}
	}
	return r
}
