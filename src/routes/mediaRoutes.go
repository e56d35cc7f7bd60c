package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMediaRoutes(router *gin.Engine, service *services.MediaService) {
	mediaController := controllers.NewMediaController(service)

	// Protected admin routes; the files themselves are served statically
	admin := router.Group("/admin/media")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/", mediaController.GetAllMediaFiles)
		admin.POST("/", mediaController.CreateMediaFile)
		admin.PUT("/:id", mediaController.UpdateMediaFile)
		admin.DELETE("/:id", mediaController.DeleteMediaFile)
	}
}
