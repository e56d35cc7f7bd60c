package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupClientRoutes(router *gin.Engine, service *services.ClientService) {
	clientController := controllers.NewClientController(service)

	// Public read routes for the site pages
	router.GET("/clients", clientController.GetAllClients)
	router.GET("/clients/featured", clientController.GetFeaturedClients)

	// Protected admin routes
	admin := router.Group("/admin/clients")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/", clientController.CreateClient)
		admin.PUT("/:id", clientController.UpdateClient)
		admin.DELETE("/:id", clientController.DeleteClient)
	}
}
