package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/derive"
	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// AssignmentController serves the /assignments resource. It also resolves
// the weak karigar reference each assignment carries.
type AssignmentController struct {
	store    stores.AssignmentStore
	karigars stores.KarigarStore
	now      func() time.Time
}

// NewAssignmentController constructs an assignment controller.
func NewAssignmentController(store stores.AssignmentStore, karigars stores.KarigarStore) *AssignmentController {
	return &AssignmentController{store: store, karigars: karigars, now: time.Now}
}

// CreateAssignmentRequest represents the request body for creating an assignment
type CreateAssignmentRequest struct {
	Title       string            `json:"title" binding:"required,min=2"`
	Description string            `json:"description" binding:"required,min=10"`
	Client      string            `json:"client" binding:"required,min=2"`
	KarigarID   string            `json:"karigarId" binding:"required"`
	StartDate   string            `json:"startDate" binding:"required"`
	Deadline    string            `json:"deadline" binding:"required"`
	Priority    string            `json:"priority" binding:"required,oneof=low medium high"`
	Payment     string            `json:"payment" binding:"required"`
	Status      string            `json:"status" binding:"omitempty,oneof=not-started in-progress completed delayed"`
	Progress    int               `json:"progress" binding:"gte=0,lte=100"`
	Tasks       []models.Task     `json:"tasks"`
	Materials   []models.Material `json:"materials"`
}

// UpdateAssignmentRequest mirrors the patchable fields with string dates.
type UpdateAssignmentRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Client      *string            `json:"client"`
	KarigarID   *string            `json:"karigarId"`
	StartDate   *string            `json:"startDate"`
	Deadline    *string            `json:"deadline"`
	Status      *string            `json:"status" binding:"omitempty,oneof=not-started in-progress completed delayed"`
	Priority    *string            `json:"priority" binding:"omitempty,oneof=low medium high"`
	Progress    *int               `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Payment     *string            `json:"payment"`
	Tasks       *[]models.Task     `json:"tasks"`
	Materials   *[]models.Material `json:"materials"`
}

// assignmentView is an assignment plus the values derived for display.
type assignmentView struct {
	models.Assignment
	DaysRemaining int               `json:"daysRemaining"`
	Urgency       derive.Urgency    `json:"urgency"`
	Karigar       stores.KarigarRef `json:"karigar"`
}

func (ctl *AssignmentController) view(a models.Assignment) assignmentView {
	days := derive.DaysRemaining(a.Deadline, ctl.now())
	ref, err := stores.ResolveKarigar(ctl.karigars, a.KarigarID)
	if err != nil {
		// resolution failure degrades to an unresolved ref, the assignment
		// itself is still served
		ref = stores.KarigarRef{ID: a.KarigarID, Resolved: false}
	}
	return assignmentView{
		Assignment:    a,
		DaysRemaining: days,
		Urgency:       derive.UrgencyBand(days),
		Karigar:       ref,
	}
}

// List handles GET /api/v1/assignments
func (ctl *AssignmentController) List(c *gin.Context) {
	assignments, err := ctl.store.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	views := make([]assignmentView, 0, len(assignments))
	for _, a := range assignments {
		views = append(views, ctl.view(a))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    views,
	})
}

// Get handles GET /api/v1/assignments/:id
func (ctl *AssignmentController) Get(c *gin.Context) {
	a, err := ctl.store.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.view(*a),
	})
}

// Create handles POST /api/v1/assignments
func (ctl *AssignmentController) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	if deadline.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": gin.H{"deadline": "Deadline cannot be before the start date"},
			},
		})
		return
	}

	a, err := ctl.store.Create(models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Client:      req.Client,
		KarigarID:   req.KarigarID,
		StartDate:   startDate,
		Deadline:    deadline,
		Status:      req.Status,
		Priority:    req.Priority,
		Progress:    req.Progress,
		Payment:     req.Payment,
		Tasks:       req.Tasks,
		Materials:   req.Materials,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    ctl.view(*a),
	})
}

// Update handles PATCH /api/v1/assignments/:id
func (ctl *AssignmentController) Update(c *gin.Context) {
	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	patch := stores.AssignmentPatch{
		Title:       req.Title,
		Description: req.Description,
		Client:      req.Client,
		KarigarID:   req.KarigarID,
		Status:      req.Status,
		Priority:    req.Priority,
		Progress:    req.Progress,
		Payment:     req.Payment,
		Tasks:       req.Tasks,
		Materials:   req.Materials,
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			respondValidationError(c, err)
			return
		}
		patch.StartDate = &t
	}
	if req.Deadline != nil {
		t, err := parseDate(*req.Deadline)
		if err != nil {
			respondValidationError(c, err)
			return
		}
		patch.Deadline = &t
	}

	if patch.StartDate != nil || patch.Deadline != nil {
		existing, err := ctl.store.GetByID(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		start, deadline := existing.StartDate, existing.Deadline
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.Deadline != nil {
			deadline = *patch.Deadline
		}
		if deadline.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Invalid request data",
					"details": gin.H{"deadline": "Deadline cannot be before the start date"},
				},
			})
			return
		}
	}

	a, err := ctl.store.Update(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.view(*a),
	})
}

// Delete handles DELETE /api/v1/assignments/:id
func (ctl *AssignmentController) Delete(c *gin.Context) {
	if err := ctl.store.Remove(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
