package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karigarstudio/karigar-studio-api/derive"
	"github.com/karigarstudio/karigar-studio-api/models"
	"github.com/karigarstudio/karigar-studio-api/services"
	"github.com/karigarstudio/karigar-studio-api/stores"
)

// OrderController serves the /orders resource. Reads resolve the weak
// client and karigar references and attach the derived progress fields the
// dashboard renders.
type OrderController struct {
	store    stores.OrderStore
	karigars stores.KarigarStore
	clients  stores.ClientStore
	images   services.ImageStorage
	now      func() time.Time
}

// NewOrderController constructs an order controller. images may be nil when
// no object storage is configured; order reads then omit image URLs.
func NewOrderController(store stores.OrderStore, karigars stores.KarigarStore, clients stores.ClientStore, images services.ImageStorage) *OrderController {
	return &OrderController{store: store, karigars: karigars, clients: clients, images: images, now: time.Now}
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	OrderNumber      string            `json:"orderNumber" binding:"required,min=3"`
	ClientID         string            `json:"clientId" binding:"required"`
	ClientName       string            `json:"clientName" binding:"required,min=2"`
	ClientPhone      string            `json:"clientPhone" binding:"required,min=10"`
	OrderDescription string            `json:"orderDescription" binding:"required,min=10"`
	Quantity         int               `json:"quantity" binding:"required,gt=0"`
	ItemType         string            `json:"itemType" binding:"required,min=2"`
	Metal            string            `json:"metal" binding:"required,min=2"`
	Purity           string            `json:"purity" binding:"required"`
	Size             string            `json:"size" binding:"required"`
	GemName          string            `json:"gemName"`
	GemstoneWeight   float64           `json:"gemstoneWeight" binding:"gte=0,lte=1000"`
	DiamondColor     string            `json:"diamondColor"`
	DiamondClarity   string            `json:"diamondClarity"`
	DiamondWeight    float64           `json:"diamondWeight" binding:"gte=0,lte=1000"`
	NumberOfStones   int               `json:"numberOfStones" binding:"gte=0"`
	GrossWeight      float64           `json:"grossWeight" binding:"gte=0,lte=1000"`
	NetWeight        float64           `json:"netWeight" binding:"gte=0,lte=1000"`
	KarigarID        string            `json:"karigarId" binding:"required"`
	Materials        []models.Material `json:"materials"`
	Stages           []models.Stage    `json:"stages"`
	Status           string            `json:"status" binding:"omitempty,oneof=pending in-progress completed delivered delayed"`
	DeliveredItems   int               `json:"deliveredItems" binding:"gte=0"`
	EstimatedPrice   string            `json:"estimatedPrice"`
	MakingCharges    string            `json:"makingCharges"`
	ExpectedDelivery string            `json:"expectedDeliveryDate" binding:"required"`
}

// UpdateOrderRequest mirrors the patchable fields with string dates.
type UpdateOrderRequest struct {
	OrderNumber      *string            `json:"orderNumber"`
	ClientID         *string            `json:"clientId"`
	ClientName       *string            `json:"clientName"`
	ClientPhone      *string            `json:"clientPhone"`
	OrderDescription *string            `json:"orderDescription"`
	Quantity         *int               `json:"quantity" binding:"omitempty,gt=0"`
	ItemType         *string            `json:"itemType"`
	Metal            *string            `json:"metal"`
	Purity           *string            `json:"purity"`
	Size             *string            `json:"size"`
	GemName          *string            `json:"gemName"`
	GemstoneWeight   *float64           `json:"gemstoneWeight" binding:"omitempty,gte=0,lte=1000"`
	DiamondColor     *string            `json:"diamondColor"`
	DiamondClarity   *string            `json:"diamondClarity"`
	DiamondWeight    *float64           `json:"diamondWeight" binding:"omitempty,gte=0,lte=1000"`
	NumberOfStones   *int               `json:"numberOfStones" binding:"omitempty,gte=0"`
	GrossWeight      *float64           `json:"grossWeight" binding:"omitempty,gte=0,lte=1000"`
	NetWeight        *float64           `json:"netWeight" binding:"omitempty,gte=0,lte=1000"`
	KarigarID        *string            `json:"karigarId"`
	Materials        *[]models.Material `json:"materials"`
	Stages           *[]models.Stage    `json:"stages"`
	Status           *string            `json:"status" binding:"omitempty,oneof=pending in-progress completed delivered delayed"`
	DeliveredItems   *int               `json:"deliveredItems" binding:"omitempty,gte=0"`
	EstimatedPrice   *string            `json:"estimatedPrice"`
	MakingCharges    *string            `json:"makingCharges"`
	ExpectedDelivery *string            `json:"expectedDeliveryDate"`
	ActualDelivery   *string            `json:"actualDeliveryDate"`
}

// orderView is an order plus the values derived for display.
type orderView struct {
	models.Order
	Progress      int               `json:"progress"`
	CurrentStage  string            `json:"currentStage"`
	Priority      string            `json:"priority"`
	DaysRemaining int               `json:"daysRemaining"`
	Karigar       stores.KarigarRef `json:"karigar"`
	Client        stores.ClientRef  `json:"client"`
}

func (ctl *OrderController) view(o models.Order) orderView {
	if ctl.images != nil && o.ImageS3Key != nil {
		if url, err := ctl.images.GetPresignedURL(*o.ImageS3Key); err == nil {
			o.ImageURL = &url
		}
	}
	karigar, err := stores.ResolveKarigar(ctl.karigars, o.KarigarID)
	if err != nil {
		karigar = stores.KarigarRef{ID: o.KarigarID, Resolved: false}
	}
	client, err := stores.ResolveClient(ctl.clients, o.ClientID)
	if err != nil {
		client = stores.ClientRef{ID: o.ClientID, Resolved: false}
	}
	now := ctl.now()
	return orderView{
		Order:         o,
		Progress:      derive.StageProgress(o.Stages),
		CurrentStage:  derive.CurrentStage(o.Stages),
		Priority:      derive.PriorityFromDeadline(o.ExpectedDelivery, now),
		DaysRemaining: derive.DaysRemaining(o.ExpectedDelivery, now),
		Karigar:       karigar,
		Client:        client,
	}
}

func (ctl *OrderController) views(orders []models.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, ctl.view(o))
	}
	return out
}

// List handles GET /api/v1/orders, optionally filtered by ?clientId=
func (ctl *OrderController) List(c *gin.Context) {
	var (
		orders []models.Order
		err    error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		orders, err = ctl.store.ListByClient(clientID)
	} else {
		orders, err = ctl.store.List()
	}
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.views(orders),
	})
}

// Get handles GET /api/v1/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	o, err := ctl.store.GetByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.view(*o),
	})
}

// Create handles POST /api/v1/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	expected, err := parseDate(req.ExpectedDelivery)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	if req.DeliveredItems > req.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": gin.H{"deliveredItems": "Delivered items cannot exceed the order quantity"},
			},
		})
		return
	}

	o, err := ctl.store.Create(models.Order{
		OrderNumber:      req.OrderNumber,
		ClientID:         req.ClientID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		OrderDescription: req.OrderDescription,
		Quantity:         req.Quantity,
		ItemType:         req.ItemType,
		Metal:            req.Metal,
		Purity:           req.Purity,
		Size:             req.Size,
		GemName:          req.GemName,
		GemstoneWeight:   req.GemstoneWeight,
		DiamondColor:     req.DiamondColor,
		DiamondClarity:   req.DiamondClarity,
		DiamondWeight:    req.DiamondWeight,
		NumberOfStones:   req.NumberOfStones,
		GrossWeight:      req.GrossWeight,
		NetWeight:        req.NetWeight,
		KarigarID:        req.KarigarID,
		Materials:        req.Materials,
		Stages:           req.Stages,
		Status:           req.Status,
		DeliveredItems:   req.DeliveredItems,
		EstimatedPrice:   req.EstimatedPrice,
		MakingCharges:    req.MakingCharges,
		ExpectedDelivery: expected,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    ctl.view(*o),
	})
}

// Update handles PATCH /api/v1/orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	patch := stores.OrderPatch{
		OrderNumber:      req.OrderNumber,
		ClientID:         req.ClientID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		OrderDescription: req.OrderDescription,
		Quantity:         req.Quantity,
		ItemType:         req.ItemType,
		Metal:            req.Metal,
		Purity:           req.Purity,
		Size:             req.Size,
		GemName:          req.GemName,
		GemstoneWeight:   req.GemstoneWeight,
		DiamondColor:     req.DiamondColor,
		DiamondClarity:   req.DiamondClarity,
		DiamondWeight:    req.DiamondWeight,
		NumberOfStones:   req.NumberOfStones,
		GrossWeight:      req.GrossWeight,
		NetWeight:        req.NetWeight,
		KarigarID:        req.KarigarID,
		Materials:        req.Materials,
		Stages:           req.Stages,
		Status:           req.Status,
		DeliveredItems:   req.DeliveredItems,
		EstimatedPrice:   req.EstimatedPrice,
		MakingCharges:    req.MakingCharges,
	}
	if req.ExpectedDelivery != nil {
		t, err := parseDate(*req.ExpectedDelivery)
		if err != nil {
			respondValidationError(c, err)
			return
		}
		patch.ExpectedDelivery = &t
	}
	if req.ActualDelivery != nil {
		t, err := parseDate(*req.ActualDelivery)
		if err != nil {
			respondValidationError(c, err)
			return
		}
		patch.ActualDelivery = &t
	}

	o, err := ctl.store.Update(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.view(*o),
	})
}

// Delete handles DELETE /api/v1/orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	if err := ctl.store.Remove(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
