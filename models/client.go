package models

import (
	"time"
)

// Client statuses accepted by the status-only update endpoint.
const (
	ClientActive   = "active"
	ClientInactive = "inactive"
)

// ClientStatuses lists every valid client status.
var ClientStatuses = []string{ClientActive, ClientInactive}

// Client represents a customer of the workshop
type Client struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Status      string    `gorm:"not null;default:'active'" json:"status"` // active, inactive
	TotalOrders int       `json:"totalOrders"`                             // informational counter
	TotalValue  string    `json:"totalValue"`                              // informational currency string
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// ValidClientStatus reports whether s is one of the enumerated client statuses.
func ValidClientStatus(s string) bool {
	for _, v := range ClientStatuses {
		if s == v {
			return true
		}
	}
	return false
}
