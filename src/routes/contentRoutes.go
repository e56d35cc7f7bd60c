package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(router *gin.Engine, service *services.ContentService) {
	contentController := controllers.NewContentController(service)

	// Public read route used by the page renderer
	router.GET("/content/:page", contentController.GetContentByPage)

	// Protected admin routes
	admin := router.Group("/admin/content")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.PUT("/", contentController.UpsertContent)
		admin.DELETE("/:page", contentController.DeleteContent)
	}
}
