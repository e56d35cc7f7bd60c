package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{service: service}
}

// GetAllClients handles GET requests to retrieve all client records
func (c *ClientController) GetAllClients(ctx *gin.Context) {
	clients, err := c.service.GetAllClients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, clients)
}

// GetFeaturedClients handles GET requests for the home page logo strip
func (c *ClientController) GetFeaturedClients(ctx *gin.Context) {
	clients, err := c.service.GetFeaturedClients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, clients)
}

// CreateClient handles POST requests to create a new client record
func (c *ClientController) CreateClient(ctx *gin.Context) {
	var client models.ClientModel
	if err := ctx.ShouldBindJSON(&client); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateClient(&client)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateClient handles PUT requests to update a client record by ID
func (c *ClientController) UpdateClient(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}
	var client models.ClientModel
	if err := ctx.ShouldBindJSON(&client); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateClient(id, &client)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteClient handles DELETE requests to delete a client record by ID
func (c *ClientController) DeleteClient(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}
	if err := c.service.DeleteClient(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
