package stores

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// MemoryAssignmentStore keeps assignments in an ordered in-process slice.
type MemoryAssignmentStore struct {
	mu          sync.RWMutex
	assignments []models.Assignment
}

// NewMemoryAssignmentStore constructs an empty volatile assignment store.
func NewMemoryAssignmentStore() *MemoryAssignmentStore {
	return &MemoryAssignmentStore{}
}

func (s *MemoryAssignmentStore) List() ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out, nil
}

func (s *MemoryAssignmentStore) GetByID(id string) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			a := s.assignments[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAssignmentStore) Create(a models.Assignment) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.NewString()
	if a.Status == "" {
		a.Status = models.AssignmentNotStarted
	}
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	normalizeAssignment(&a)
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.assignments = append(s.assignments, a)
	return &a, nil
}

func (s *MemoryAssignmentStore) Update(id string, patch AssignmentPatch) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			patch.apply(&s.assignments[i])
			normalizeAssignment(&s.assignments[i])
			s.assignments[i].UpdatedAt = time.Now()
			a := s.assignments[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAssignmentStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}
