package controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-recipe-service/service"
	"github.com/tnqbao/gau-recipe-service/utils"
)

const recipeCacheTTL = 5 * time.Minute

// respondServiceError maps the service error taxonomy to transport status
// codes. The core never sees these codes.
func respondServiceError(c *gin.Context, err error) {
	switch service.KindOf(err) {
	case service.KindValidation:
		utils.JSON400(c, err.Error())
	case service.KindNotAuthorized:
		utils.JSON403(c, err.Error())
	case service.KindInvalidState:
		utils.JSON403(c, err.Error())
	case service.KindNotFound:
		utils.JSON404(c, err.Error())
	case service.KindDuplicateCollaborator:
		utils.JSON409(c, err.Error())
	default:
		utils.JSON500(c, "internal error")
	}
}

func recipeCacheKey(id uuid.UUID) string {
	return "recipe:" + id.String()
}

func (ctrl *Controller) invalidateRecipeCache(ctx context.Context, id uuid.UUID) {
	if err := ctrl.Infra.Redis.Delete(ctx, recipeCacheKey(id)); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Recipe] Failed to invalidate cache for %s: %v", id, err)
	}
}
