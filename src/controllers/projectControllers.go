package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	service *services.ProjectService
}

func NewProjectController(service *services.ProjectService) *ProjectController {
	return &ProjectController{service: service}
}

// GetAllProjects handles GET requests to retrieve projects, with an optional
// ?category= filter
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	var category *string
	if v := ctx.Query("category"); v != "" {
		category = &v
	}
	projects, err := c.service.GetAllProjects(category)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// GetFeaturedProjects handles GET requests for the home page project strip
func (c *ProjectController) GetFeaturedProjects(ctx *gin.Context) {
	projects, err := c.service.GetFeaturedProjects()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// GetProjectByID handles GET requests to retrieve a project record by ID
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	project, err := c.service.GetProjectByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// CreateProject handles POST requests to create a new project record
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var project models.ProjectModel
	if err := ctx.ShouldBindJSON(&project); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateProject(&project)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateProject handles PUT requests to update a project record by ID
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	var project models.ProjectModel
	if err := ctx.ShouldBindJSON(&project); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateProject(id, &project)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProject handles DELETE requests to delete a project record by ID
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	if err := c.service.DeleteProject(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
