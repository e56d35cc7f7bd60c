package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"github.com/ChemCoat/ChemCoat-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ApprovalController struct {
	service *services.ApprovalService
}

func NewApprovalController(service *services.ApprovalService) *ApprovalController {
	return &ApprovalController{service: service}
}

// GetAllApprovals handles GET requests to retrieve all approval records
func (c *ApprovalController) GetAllApprovals(ctx *gin.Context) {
	approvals, err := c.service.GetAllApprovals()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, approvals)
}

// GetApprovalByID handles GET requests to retrieve an approval record by ID
func (c *ApprovalController) GetApprovalByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval ID"})
		return
	}
	approval, err := c.service.GetApprovalByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Approval not found"})
		return
	}
	ctx.JSON(http.StatusOK, approval)
}

// CreateApproval handles POST requests to create a new approval record
func (c *ApprovalController) CreateApproval(ctx *gin.Context) {
	var approval models.ApprovalModel
	if err := ctx.ShouldBindJSON(&approval); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateApproval(&approval)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateApproval handles PUT requests to update an approval record by ID
func (c *ApprovalController) UpdateApproval(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval ID"})
		return
	}
	var approval models.ApprovalModel
	if err := ctx.ShouldBindJSON(&approval); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateApproval(id, &approval)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteApproval handles DELETE requests to delete an approval record by ID
func (c *ApprovalController) DeleteApproval(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval ID"})
		return
	}
	if err := c.service.DeleteApproval(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Approval deleted successfully"})
}
