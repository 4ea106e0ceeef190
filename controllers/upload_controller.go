package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/stores"
	"github.com/karigarstudio/karigar-studio-api/utils"
)

// UploadImage handles POST /api/v1/orders/:id/image - attaches a design image
// to an order. The previous image, if any, is removed from storage after the
// new one is stored.
func (ctl *OrderController) UploadImage(c *gin.Context) {
	id := c.Param("id")

	order, err := ctl.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if ctl.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_UNAVAILABLE",
				"message": "Image storage is not configured",
			},
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "An image file is required in the 'image' field",
			},
		})
		return
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		var uploadErr *utils.FileUploadError
		code := "INVALID_FILE"
		message := err.Error()
		if errors.As(err, &uploadErr) {
			code = uploadErr.Code
			message = uploadErr.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": message,
			},
		})
		return
	}

	key, err := ctl.images.UploadFile(fileHeader)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store the image",
			},
		})
		return
	}

	previousKey := order.ImageS3Key

	updated, err := ctl.store.Update(id, stores.OrderPatch{ImageS3Key: &key})
	if err != nil {
		// The order vanished between the lookup and the update; don't leave
		// the freshly stored object orphaned.
		ctl.images.DeleteFile(key)
		respondStoreError(c, err)
		return
	}

	if previousKey != nil && *previousKey != key {
		if err := ctl.images.DeleteFile(*previousKey); err != nil {
			c.Error(err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.view(*updated),
	})
}
