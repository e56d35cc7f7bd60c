package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupProjectRoutes(router *gin.Engine, service *services.ProjectService) {
	projectController := controllers.NewProjectController(service)

	// Public read routes for the site pages
	router.GET("/projects", projectController.GetAllProjects)
	router.GET("/projects/featured", projectController.GetFeaturedProjects)
	router.GET("/projects/:id", projectController.GetProjectByID)

	// Protected admin routes
	admin := router.Group("/admin/projects")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/", projectController.CreateProject)
		admin.PUT("/:id", projectController.UpdateProject)
		admin.DELETE("/:id", projectController.DeleteProject)
	}
}
