package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupApprovalRoutes(router *gin.Engine, service *services.ApprovalService) {
	approvalController := controllers.NewApprovalController(service)

	// Public read routes for the site pages
	router.GET("/approvals", approvalController.GetAllApprovals)
	router.GET("/approvals/:id", approvalController.GetApprovalByID)

	// Protected admin routes
	admin := router.Group("/admin/approvals")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/", approvalController.CreateApproval)
		admin.PUT("/:id", approvalController.UpdateApproval)
		admin.DELETE("/:id", approvalController.DeleteApproval)
	}
}
