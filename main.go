package main

import (
	"os"

	"github.com/ChemCoat/ChemCoat-Backend/src/db"
	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/middleware"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/routes"
	"github.com/ChemCoat/ChemCoat-Backend/src/seed"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"), os.Getenv("LOG_VERBOSE") == "1")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Database connection
	conn, err := db.Connect()
	if err != nil {
		log.Error("error connecting to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate models
	if err := conn.AutoMigrate(
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProjectModel{},
		&models.ClientModel{},
		&models.ApprovalModel{},
		&models.MediaFileModel{},
		&models.ContentItemModel{},
		&models.AuditEntryModel{},
		&models.UserModel{},
	); err != nil {
		log.Error("error during auto-migration", "error", err)
		os.Exit(1)
	}

	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))
	seed.Seed(conn, log)

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Uploaded images are served straight from disk
	router.Static("/media", "public/media")

	// Services setup
	auditService := services.NewAuditService(conn)
	categoryService := services.NewCategoryService(conn)
	productService := services.NewProductService(conn, auditService)
	projectService := services.NewProjectService(conn, auditService)
	clientService := services.NewClientService(conn)
	approvalService := services.NewApprovalService(conn)
	mediaService := services.NewMediaService(conn)
	contentService := services.NewContentService(conn, auditService)
	userService := services.NewUserService(conn)

	// Routes setup
	routes.SetupCategoryRoutes(router, categoryService)
	routes.SetupProductRoutes(router, productService)
	routes.SetupProjectRoutes(router, projectService)
	routes.SetupClientRoutes(router, clientService)
	routes.SetupApprovalRoutes(router, approvalService)
	routes.SetupMediaRoutes(router, mediaService)
	routes.SetupContentRoutes(router, contentService)
	routes.SetupUserRoutes(router, userService)

	log.Info("server starting", "host", host)
	if err := router.Run(host); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
