package models

import (
	"time"
)

// Karigar statuses accepted by the status-only update endpoint.
const (
	KarigarAvailable   = "available"
	KarigarBusy        = "busy"
	KarigarUnavailable = "unavailable"
)

// KarigarStatuses lists every valid karigar status.
var KarigarStatuses = []string{KarigarAvailable, KarigarBusy, KarigarUnavailable}

// Karigar represents an artisan registered with the workshop
type Karigar struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Skill         string    `gorm:"not null" json:"skill"` // e.g. Stone Setting, Polishing, Engraving, Casting, Design, Filigree
	Experience    string    `json:"experience"`
	Location      string    `json:"location"`
	Status        string    `gorm:"not null;default:'available'" json:"status"` // available, busy, unavailable
	ContactNumber string    `json:"contactNumber"`
	Rating        float64   `gorm:"check:rating >= 0 AND rating <= 5" json:"rating"`
	Assignments   int       `json:"assignments"` // completed-assignment count, informational
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Karigar model
func (Karigar) TableName() string {
	return "karigars"
}

// ValidKarigarStatus reports whether s is one of the enumerated karigar statuses.
func ValidKarigarStatus(s string) bool {
	for _, v := range KarigarStatuses {
		if s == v {
			return true
		}
	}
	return false
}
