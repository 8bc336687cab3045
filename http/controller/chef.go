package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-recipe-service/entity"
	"github.com/tnqbao/gau-recipe-service/http/controller/dto"
	"github.com/tnqbao/gau-recipe-service/utils"
)

func (ctrl *Controller) ListChefs(c *gin.Context) {
	ctx := c.Request.Context()

	chefs, err := ctrl.Repository.ChefRepo.List()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Chef] Failed to list chefs: %v", err)
		utils.JSON500(c, "Failed to list chefs")
		return
	}

	utils.JSON200(c, chefs)
}

func (ctrl *Controller) CreateChef(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateChefRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	chef := &entity.Chef{
		ID:        uuid.New(),
		Name:      req.Name,
		Specialty: req.Specialty,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := ctrl.Repository.ChefRepo.Create(chef); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Chef] Failed to create chef: %v", err)
		utils.JSON500(c, "Failed to create chef")
		return
	}

	utils.JSON201(c, chef)
}
