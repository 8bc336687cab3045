package controller

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-recipe-service/utils"
)

const maxImageSize = 10 << 20 // 10MB

// UploadRecipeImage stores an image in MinIO and returns the reference URL
// that a recipe's img field carries.
func (ctrl *Controller) UploadRecipeImage(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := utils.GetUserIDFromContext(c); err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSON400(c, "Image file is required")
		return
	}

	if fileHeader.Size > maxImageSize {
		utils.JSON400(c, "Image exceeds the 10MB limit")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.JSON400(c, "Only image uploads are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to open upload: %v", err)
		utils.JSON500(c, "Failed to read image")
		return
	}
	defer file.Close()

	objectName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	url, err := ctrl.Infra.Minio.UploadImage(ctx, objectName, file, fileHeader.Size, contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] Failed to upload image: %v", err)
		utils.JSON500(c, "Failed to upload image")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Image] Uploaded %s", objectName)
	utils.JSON201(c, gin.H{"img": url})
}
