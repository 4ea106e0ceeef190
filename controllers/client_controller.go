package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// ClientController serves the /clients resource.
type ClientController struct {
	store stores.ClientStore
}

// NewClientController constructs a client controller over the given store.
func NewClientController(store stores.ClientStore) *ClientController {
	return &ClientController{store: store}
}

// CreateClientRequest represents the request body for registering a client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Address string `json:"address" binding:"required,min=5"`
	City    string `json:"city" binding:"required,min=2"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateClientStatusRequest represents the body of the status-only update
type UpdateClientStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// List handles GET /api/v1/clients
func (ctl *ClientController) List(c *gin.Context) {
	clients, err := ctl.store.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    clients,
	})
}

// Get handles GET /api/v1/clients/:id
func (ctl *ClientController) Get(c *gin.Context) {
	client, err := ctl.store.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// Create handles POST /api/v1/clients
func (ctl *ClientController) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	client, err := ctl.store.Create(models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Status:  req.Status,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    client,
	})
}

// Update handles PATCH /api/v1/clients/:id
func (ctl *ClientController) Update(c *gin.Context) {
	var patch stores.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondValidationError(c, err)
		return
	}
	if patch.Status != nil && !models.ValidClientStatus(*patch.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid status value",
			},
		})
		return
	}

	client, err := ctl.store.Update(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// UpdateStatus handles PATCH /api/v1/clients/:id/status
func (ctl *ClientController) UpdateStatus(c *gin.Context) {
	var req UpdateClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	client, err := ctl.store.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    client,
	})
}

// Delete handles DELETE /api/v1/clients/:id
func (ctl *ClientController) Delete(c *gin.Context) {
	if err := ctl.store.Remove(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
