package controllers

import (
	"net/http"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// GetAllCategories handles GET requests to retrieve all category records
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.service.GetAllCategories()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles GET requests to retrieve a category by slug id
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	category, err := c.service.GetCategoryByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory handles POST requests to create a new category record
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.CategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateCategory(&category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateCategory handles PUT requests to update a category record by slug id
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	var category models.CategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateCategory(ctx.Param("id"), &category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteCategory handles DELETE requests to delete a category record
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	if err := c.service.DeleteCategory(ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
