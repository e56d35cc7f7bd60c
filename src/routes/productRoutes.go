package routes

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/controllers"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(router *gin.Engine, service *services.ProductService) {
	productController := controllers.NewProductController(service)

	// Public read routes for the site pages
	router.GET("/products", productController.GetAllProducts)
	router.GET("/products/:id", productController.GetProductByID)

	// Protected admin routes
	admin := router.Group("/admin/products")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/summaries", productController.GetProductSummaries)
		admin.POST("/", productController.CreateProduct)
		admin.PUT("/:id", productController.UpdateProduct)
		admin.DELETE("/:id", productController.DeleteProduct)
	}
}
