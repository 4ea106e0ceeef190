// Package derive holds the pure derivation logic shared by the dashboard
// and resource endpoints: completion percentages, deadline arithmetic, and
// the two deadline-classification policies. Everything here is deterministic
// and safe for concurrent use.
package derive

import (
	"math"
	"time"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// Urgency classifies how close an assignment is to its deadline.
type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "due-soon"
	UrgencyNormal  Urgency = "normal"
)

// Thresholds for the two deadline policies. Assignments use the urgency
// band for display; orders derive a low/medium/high priority from day
// counts. The two policies are intentionally separate.
const (
	DueSoonDays = 3

	HighPriorityDays   = 7
	MediumPriorityDays = 14
)

// StageProgress returns the integer completion percentage of an order's
// stage list: round(100 * complete / total). An empty list is 0% complete,
// not an error.
func StageProgress(stages []models.Stage) int {
	if len(stages) == 0 {
		return 0
	}
	complete := 0
	for _, s := range stages {
		if s.IsComplete {
			complete++
		}
	}
	return int(math.Round(100 * float64(complete) / float64(len(stages))))
}

// TaskProgress returns the integer completion percentage of an assignment's
// task list. Same zero-length policy as StageProgress.
func TaskProgress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	complete := 0
	for _, t := range tasks {
		if t.Completed {
			complete++
		}
	}
	return int(math.Round(100 * float64(complete) / float64(len(tasks))))
}

// CurrentStage returns the name of the first incomplete stage, or
// "Completed" when every stage is done (or the list is empty).
func CurrentStage(stages []models.Stage) string {
	for _, s := range stages {
		if !s.IsComplete {
			return s.Name
		}
	}
	return "Completed"
}

// DaysRemaining returns the whole days from today until the deadline,
// rounding partial days up. Negative when overdue, zero when due today.
// Both instants are truncated to calendar dates in their own locations
// before subtracting, so time-of-day never shifts the result.
func DaysRemaining(deadline, today time.Time) int {
	d := dateOnly(deadline)
	t := dateOnly(today)
	diff := d.Sub(t)
	return int(math.Ceil(diff.Hours() / 24))
}

// UrgencyBand maps a days-remaining count to its urgency classification.
func UrgencyBand(daysRemaining int) Urgency {
	switch {
	case daysRemaining < 0:
		return UrgencyOverdue
	case daysRemaining < DueSoonDays:
		return UrgencyDueSoon
	default:
		return UrgencyNormal
	}
}

// PriorityFromDeadline derives an order's priority from its deadline:
// high under 7 days, medium in [7,14), low at 14 or more. Boundaries are
// half-open, so exactly 7 days out is medium and exactly 14 is low.
func PriorityFromDeadline(deadline, today time.Time) string {
	days := DaysRemaining(deadline, today)
	switch {
	case days < HighPriorityDays:
		return models.PriorityHigh
	case days < MediumPriorityDays:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
