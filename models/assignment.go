package models

import (
	"time"
)

// Assignment statuses.
const (
	AssignmentNotStarted = "not-started"
	AssignmentInProgress = "in-progress"
	AssignmentCompleted  = "completed"
	AssignmentDelayed    = "delayed"
)

// AssignmentStatuses lists every valid assignment status.
var AssignmentStatuses = []string{
	AssignmentNotStarted, AssignmentInProgress, AssignmentCompleted, AssignmentDelayed,
}

// Assignment priorities. These are chosen by the user on the form, a policy
// distinct from the deadline-derived priority used for orders.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a unit of work inside an assignment, toggled complete by the karigar.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Assignment represents a unit of work given to a karigar, tracked via
// tasks and materials. KarigarID is a weak reference: the karigar record
// may have been removed, resolution happens at read time.
type Assignment struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Client      string     `json:"client"` // free-text client name
	KarigarID   string     `gorm:"index" json:"karigarId"`
	StartDate   time.Time  `json:"startDate"`
	Deadline    time.Time  `json:"deadline"` // invariant: deadline >= startDate, enforced at creation
	Status      string     `gorm:"not null;default:'not-started'" json:"status"` // not-started, in-progress, completed, delayed
	Priority    string     `gorm:"not null;default:'medium'" json:"priority"`    // low, medium, high
	Progress    int        `json:"progress"`                                     // 0-100, derived from task completion
	Payment     string     `json:"payment"`
	Tasks       []Task     `gorm:"serializer:json" json:"tasks"`
	Materials   []Material `gorm:"serializer:json" json:"materials"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Assignment model
func (Assignment) TableName() string {
	return "assignments"
}

// ValidAssignmentStatus reports whether s is one of the enumerated assignment statuses.
func ValidAssignmentStatus(s string) bool {
	for _, v := range AssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}
