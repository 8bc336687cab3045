package controller

import (
	"github.com/tnqbao/gau-recipe-service/config"
	"github.com/tnqbao/gau-recipe-service/infra"
	"github.com/tnqbao/gau-recipe-service/repository"
	"github.com/tnqbao/gau-recipe-service/service"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Lifecycle  *service.RecipeLifecycle
	Query      *service.RecipeQuery
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Lifecycle:  service.NewRecipeLifecycle(repo.RecipeRepo, infra.UserDirectory),
		Query:      service.NewRecipeQuery(repo.RecipeRepo),
	}
}
