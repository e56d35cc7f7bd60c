package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	router.POST("/login", userController.Login)

	// Creating admin users requires an authenticated admin
	admin := router.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/", userController.Register)
	}
}
