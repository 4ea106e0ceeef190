package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// DashboardController aggregates workshop-wide counts for the dashboard.
type DashboardController struct {
	karigars    stores.KarigarStore
	clients     stores.ClientStore
	assignments stores.AssignmentStore
	orders      stores.OrderStore
}

func NewDashboardController(s *stores.Stores) *DashboardController {
	return &DashboardController{
		karigars:    s.Karigars,
		clients:     s.Clients,
		assignments: s.Assignments,
		orders:      s.Orders,
	}
}

// Stats handles GET /api/v1/dashboard/stats - returns aggregate counts
// across karigars, clients, assignments and orders.
func (ctl *DashboardController) Stats(c *gin.Context) {
	karigars, err := ctl.karigars.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	clients, err := ctl.clients.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	assignments, err := ctl.assignments.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	orders, err := ctl.orders.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	availableKarigars := 0
	ratingSum := 0.0
	for _, k := range karigars {
		if k.Status == models.KarigarAvailable {
			availableKarigars++
		}
		ratingSum += k.Rating
	}
	averageRating := 0.0
	if len(karigars) > 0 {
		averageRating = ratingSum / float64(len(karigars))
	}

	activeClients := 0
	for _, cl := range clients {
		if cl.Status == models.ClientActive {
			activeClients++
		}
	}

	activeAssignments := 0
	completedAssignments := 0
	for _, a := range assignments {
		switch a.Status {
		case models.AssignmentCompleted:
			completedAssignments++
		case models.AssignmentInProgress:
			activeAssignments++
		}
	}

	pendingOrders := 0
	deliveredOrders := 0
	for _, o := range orders {
		switch o.Status {
		case models.OrderDelivered:
			deliveredOrders++
		case models.OrderPending, models.OrderInProgress:
			pendingOrders++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalKarigars":        len(karigars),
			"availableKarigars":    availableKarigars,
			"averageRating":        averageRating,
			"totalClients":         len(clients),
			"activeClients":        activeClients,
			"totalAssignments":     len(assignments),
			"activeAssignments":    activeAssignments,
			"completedAssignments": completedAssignments,
			"totalOrders":          len(orders),
			"pendingOrders":        pendingOrders,
			"deliveredOrders":      deliveredOrders,
		},
	})
}
