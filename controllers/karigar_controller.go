package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// KarigarController serves the /karigars resource.
type KarigarController struct {
	store stores.KarigarStore
}

// NewKarigarController constructs a karigar controller over the given store.
func NewKarigarController(store stores.KarigarStore) *KarigarController {
	return &KarigarController{store: store}
}

// CreateKarigarRequest represents the request body for registering a karigar
type CreateKarigarRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	Skill         string  `json:"skill" binding:"required"`
	Experience    string  `json:"experience" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof=available busy unavailable"`
	ContactNumber string  `json:"contactNumber" binding:"required,min=10,max=16"`
	Rating        float64 `json:"rating" binding:"gte=0,lte=5"`
	Assignments   int     `json:"assignments" binding:"gte=0"`
}

// UpdateKarigarStatusRequest represents the body of the status-only update
type UpdateKarigarStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available busy unavailable"`
}

// List handles GET /api/v1/karigars
func (ctl *KarigarController) List(c *gin.Context) {
	karigars, err := ctl.store.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    karigars,
	})
}

// Get handles GET /api/v1/karigars/:id
func (ctl *KarigarController) Get(c *gin.Context) {
	karigar, err := ctl.store.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    karigar,
	})
}

// Create handles POST /api/v1/karigars
func (ctl *KarigarController) Create(c *gin.Context) {
	var req CreateKarigarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	karigar, err := ctl.store.Create(models.Karigar{
		Name:          req.Name,
		Skill:         req.Skill,
		Experience:    req.Experience,
		Location:      req.Location,
		Status:        req.Status,
		ContactNumber: req.ContactNumber,
		Rating:        req.Rating,
		Assignments:   req.Assignments,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    karigar,
	})
}

// Update handles PATCH /api/v1/karigars/:id
func (ctl *KarigarController) Update(c *gin.Context) {
	var patch stores.KarigarPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondValidationError(c, err)
		return
	}
	if patch.Status != nil && !models.ValidKarigarStatus(*patch.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid status value",
			},
		})
		return
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Rating must be between 0 and 5",
			},
		})
		return
	}

	karigar, err := ctl.store.Update(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    karigar,
	})
}

// UpdateStatus handles PATCH /api/v1/karigars/:id/status
func (ctl *KarigarController) UpdateStatus(c *gin.Context) {
	var req UpdateKarigarStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	karigar, err := ctl.store.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    karigar,
	})
}

// Delete handles DELETE /api/v1/karigars/:id
func (ctl *KarigarController) Delete(c *gin.Context) {
	if err := ctl.store.Remove(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
