package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MediaController struct {
	service *services.MediaService
}

func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{service: service}
}

// GetAllMediaFiles handles GET requests to retrieve all media file records
func (c *MediaController) GetAllMediaFiles(ctx *gin.Context) {
	files, err := c.service.GetAllMediaFiles()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// CreateMediaFile handles POST requests to register an uploaded file
func (c *MediaController) CreateMediaFile(ctx *gin.Context) {
	var file models.MediaFileModel
	if err := ctx.ShouldBindJSON(&file); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateMediaFile(&file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMediaFile handles PUT requests to update media metadata by ID
func (c *MediaController) UpdateMediaFile(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media file ID"})
		return
	}
	var file models.MediaFileModel
	if err := ctx.ShouldBindJSON(&file); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateMediaFile(id, &file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteMediaFile handles DELETE requests to delete a media record by ID
func (c *MediaController) DeleteMediaFile(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media file ID"})
		return
	}
	if err := c.service.DeleteMediaFile(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Media file deleted successfully"})
}
