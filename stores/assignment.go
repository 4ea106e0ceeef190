package stores

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karigarstudio/karigar-studio-api/derive"
	"github.com/karigarstudio/karigar-studio-api/models"
)

// AssignmentStore is the storage contract for assignment records.
type AssignmentStore interface {
	List() ([]models.Assignment, error)
	GetByID(id string) (*models.Assignment, error)
	Create(a models.Assignment) (*models.Assignment, error)
	Update(id string, patch AssignmentPatch) (*models.Assignment, error)
	Remove(id string) error
}

// AssignmentPatch carries the fields a PATCH may change. Task and material
// lists are replaced wholesale, never merged element-wise.
type AssignmentPatch struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Client      *string            `json:"client"`
	KarigarID   *string            `json:"karigarId"`
	StartDate   *time.Time         `json:"startDate"`
	Deadline    *time.Time         `json:"deadline"`
	Status      *string            `json:"status"`
	Priority    *string            `json:"priority"`
	Progress    *int               `json:"progress"`
	Payment     *string            `json:"payment"`
	Tasks       *[]models.Task     `json:"tasks"`
	Materials   *[]models.Material `json:"materials"`
}

func (p AssignmentPatch) apply(a *models.Assignment) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Client != nil {
		a.Client = *p.Client
	}
	if p.KarigarID != nil {
		a.KarigarID = *p.KarigarID
	}
	if p.StartDate != nil {
		a.StartDate = *p.StartDate
	}
	if p.Deadline != nil {
		a.Deadline = *p.Deadline
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Progress != nil {
		a.Progress = *p.Progress
	}
	if p.Payment != nil {
		a.Payment = *p.Payment
	}
	if p.Tasks != nil {
		a.Tasks = *p.Tasks
	}
	if p.Materials != nil {
		a.Materials = *p.Materials
	}
}

// normalizeAssignment keeps the stored progress consistent with the task
// list. Task completion is the source of truth; a directly-set percentage
// only survives when the assignment has no tasks at all.
func normalizeAssignment(a *models.Assignment) {
	if len(a.Tasks) > 0 {
		a.Progress = derive.TaskProgress(a.Tasks)
	}
	if a.Progress < 0 {
		a.Progress = 0
	}
	if a.Progress > 100 {
		a.Progress = 100
	}
}

// GormAssignmentStore persists assignments in the assignments table.
type GormAssignmentStore struct {
	db *gorm.DB
}

// NewGormAssignmentStore constructs a database-backed assignment store.
func NewGormAssignmentStore(db *gorm.DB) *GormAssignmentStore {
	return &GormAssignmentStore{db: db}
}

func (s *GormAssignmentStore) List() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.Order("created_at").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (s *GormAssignmentStore) GetByID(id string) (*models.Assignment, error) {
	var a models.Assignment
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get assignment %s: %w", id, err)
	}
	return &a, nil
}

func (s *GormAssignmentStore) Create(a models.Assignment) (*models.Assignment, error) {
	a.ID = uuid.NewString()
	if a.Status == "" {
		a.Status = models.AssignmentNotStarted
	}
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	normalizeAssignment(&a)
	if err := s.db.Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return &a, nil
}

func (s *GormAssignmentStore) Update(id string, patch AssignmentPatch) (*models.Assignment, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	patch.apply(a)
	normalizeAssignment(a)
	if err := s.db.Save(a).Error; err != nil {
		return nil, fmt.Errorf("update assignment %s: %w", id, err)
	}
	return a, nil
}

// Remove deletes the assignment if present. Removing an absent id is not an error.
func (s *GormAssignmentStore) Remove(id string) error {
	if err := s.db.Delete(&models.Assignment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("remove assignment %s: %w", id, err)
	}
	return nil
}
