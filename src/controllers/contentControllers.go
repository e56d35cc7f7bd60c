package controllers

import (
	"net/http"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ContentController struct {
	service *services.ContentService
}

func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{service: service}
}

// GetContentByPage handles GET requests to retrieve all content for a page
func (c *ContentController) GetContentByPage(ctx *gin.Context) {
	items, err := c.service.GetContentByPage(ctx.Param("page"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// UpsertContent handles PUT requests to create or replace a content value
func (c *ContentController) UpsertContent(ctx *gin.Context) {
	var item models.ContentItemModel
	if err := ctx.ShouldBindJSON(&item); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Page == "" || item.Section == "" || item.ContentKey == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "page, section and contentKey are required"})
		return
	}
	saved, err := c.service.UpsertContent(&item)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

// DeleteContent handles DELETE requests keyed on the natural key
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	page := ctx.Param("page")
	section := ctx.Query("section")
	key := ctx.Query("key")
	if section == "" || key == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "section and key query parameters are required"})
		return
	}
	if err := c.service.DeleteContent(page, section, key); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
