package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/middleware"
	"github.com/rtu-kota/canteen-api/services"
	"github.com/rtu-kota/canteen-api/utils"
)

// UploadController accepts menu images and serves the locally stored ones
type UploadController struct {
	images    *services.ImageService
	uploadDir string
}

// NewUploadController returns an UploadController. uploadDir is where local images are served from.
func NewUploadController(images *services.ImageService, uploadDir string) *UploadController {
	return &UploadController{images: images, uploadDir: uploadDir}
}

// UploadMenuImage handles POST /api/menu/images - stores an image for use as a menu item's image_url
func (uc *UploadController) UploadMenuImage(c *gin.Context) {
	if !uc.images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMAGE_UPLOADS_DISABLED",
				"message": "Image uploads are not configured",
			},
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "Multipart field 'image' is required",
			},
		})
		return
	}

	image, err := uc.images.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		var fileErr *utils.FileUploadError
		if errors.As(err, &fileErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    fileErr.Code,
					"message": fileErr.Message,
				},
			})
			return
		}

		log.Printf("[%s] image upload failed: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store image",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// GetUploadedImage handles GET /api/uploads/:filename - serves locally stored images
func (uc *UploadController) GetUploadedImage(c *gin.Context) {
	filename := c.Param("filename")

	if !utils.IsSafeFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILENAME",
				"message": "Invalid filename",
			},
		})
		return
	}

	contentType, ok := utils.ImageContentType(filename)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "Only PNG, JPEG and WebP images are supported",
			},
		})
		return
	}

	filePath := filepath.Join(uc.uploadDir, filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_NOT_FOUND",
				"message": "Image not found",
			},
		})
		return
	}

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400") // Cache for 24 hours
	c.File(filePath)
}
