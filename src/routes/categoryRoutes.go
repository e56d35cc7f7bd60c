package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(router *gin.Engine, service *services.CategoryService) {
	categoryController := controllers.NewCategoryController(service)

	// Public read routes for the site pages
	router.GET("/categories", categoryController.GetAllCategories)
	router.GET("/categories/:id", categoryController.GetCategoryByID)

	// Protected admin routes
	admin := router.Group("/admin/categories")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/", categoryController.CreateCategory)
		admin.PUT("/:id", categoryController.UpdateCategory)
		admin.DELETE("/:id", categoryController.DeleteCategory)
	}
}
