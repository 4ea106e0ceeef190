package models

import (
	"time"
)

// Order delivery statuses.
const (
	OrderPending    = "pending"
	OrderInProgress = "in-progress"
	OrderCompleted  = "completed"
	OrderDelivered  = "delivered"
	OrderDelayed    = "delayed"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderPending, OrderInProgress, OrderCompleted, OrderDelivered, OrderDelayed,
}

// Stage is a named step in an order's production pipeline with a completion flag.
type Stage struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EstimatedDays string `json:"estimatedDays"`
	IsComplete    bool   `json:"isComplete"`
}

// DefaultStages returns the standard production pipeline for a new order.
func DefaultStages() []Stage {
	return []Stage{
		{ID: "stage-1", Name: "Design Creation", EstimatedDays: "3"},
		{ID: "stage-2", Name: "Wax Model", EstimatedDays: "2"},
		{ID: "stage-3", Name: "Casting", EstimatedDays: "2"},
		{ID: "stage-4", Name: "Setting", EstimatedDays: "3"},
		{ID: "stage-5", Name: "Polishing", EstimatedDays: "1"},
		{ID: "stage-6", Name: "Quality Check", EstimatedDays: "1"},
	}
}

// Order represents a client's jewelry commission, tracked via production
// stages and materials. ClientID and KarigarID are weak references with
// denormalized display fields alongside.
type Order struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	OrderNumber      string     `gorm:"not null;index" json:"orderNumber"`
	ClientID         string     `gorm:"index" json:"clientId"`
	ClientName       string     `json:"clientName"`
	ClientPhone      string     `json:"clientPhone"`
	OrderDescription string     `json:"orderDescription"`
	Quantity         int        `gorm:"not null;check:quantity > 0" json:"quantity"`
	ItemType         string     `json:"itemType"` // ring, necklace, bangle, ...
	Metal            string     `json:"metal"`
	Purity           string     `json:"purity"` // e.g. 18Kt, 22Kt
	Size             string     `json:"size"`
	GemName          string     `json:"gemName,omitempty"`
	GemstoneWeight   float64    `json:"gemstoneWeight,omitempty"`
	DiamondColor     string     `json:"diamondColor,omitempty"`
	DiamondClarity   string     `json:"diamondClarity,omitempty"`
	DiamondWeight    float64    `json:"diamondWeight,omitempty"`
	NumberOfStones   int        `json:"numberOfStones,omitempty"`
	GrossWeight      float64    `json:"grossWeight"` // grams, 0-1000
	NetWeight        float64    `json:"netWeight"`   // grams, 0-1000
	KarigarID        string     `gorm:"index" json:"karigarId"`
	Materials        []Material `gorm:"serializer:json" json:"materials"`
	Stages           []Stage    `gorm:"serializer:json" json:"stages"`
	Status           string     `gorm:"not null;default:'pending'" json:"status"` // pending, in-progress, completed, delivered, delayed
	DeliveredItems   int        `json:"deliveredItems"`
	RemainingItems   int        `json:"remainingItems"` // invariant: deliveredItems + remainingItems = quantity
	EstimatedPrice   string     `json:"estimatedPrice"`
	MakingCharges    string     `json:"makingCharges"`
	ImageS3Key       *string    `json:"image_s3_key,omitempty"`       // design image uploaded for this order
	ImageURL         *string    `gorm:"-" json:"image_url,omitempty"` // computed, presigned URL for the design image
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	ExpectedDelivery time.Time  `json:"expectedDeliveryDate"`
	ActualDelivery   *time.Time `json:"actualDeliveryDate,omitempty"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ValidOrderStatus reports whether s is one of the enumerated order statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}
