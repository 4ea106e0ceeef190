package stores

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// MemoryKarigarStore keeps karigars in an ordered in-process slice. A lock
// serializes writers, so concurrent mutations cannot interleave mid-merge.
type MemoryKarigarStore struct {
	mu       sync.RWMutex
	karigars []models.Karigar
}

// NewMemoryKarigarStore constructs an empty volatile karigar store.
func NewMemoryKarigarStore() *MemoryKarigarStore {
	return &MemoryKarigarStore{}
}

func (s *MemoryKarigarStore) List() ([]models.Karigar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Karigar, len(s.karigars))
	copy(out, s.karigars)
	return out, nil
}

func (s *MemoryKarigarStore) GetByID(id string) (*models.Karigar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.karigars {
		if s.karigars[i].ID == id {
			k := s.karigars[i]
			return &k, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryKarigarStore) Create(k models.Karigar) (*models.Karigar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k.ID = uuid.NewString()
	if k.Status == "" {
		k.Status = models.KarigarAvailable
	}
	now := time.Now()
	k.CreatedAt = now
	k.UpdatedAt = now
	s.karigars = append(s.karigars, k)
	return &k, nil
}

func (s *MemoryKarigarStore) Update(id string, patch KarigarPatch) (*models.Karigar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.karigars {
		if s.karigars[i].ID == id {
			patch.apply(&s.karigars[i])
			s.karigars[i].UpdatedAt = time.Now()
			k := s.karigars[i]
			return &k, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryKarigarStore) UpdateStatus(id, status string) (*models.Karigar, error) {
	if !models.ValidKarigarStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(id, KarigarPatch{Status: &status})
}

func (s *MemoryKarigarStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.karigars {
		if s.karigars[i].ID == id {
			s.karigars = append(s.karigars[:i], s.karigars[i+1:]...)
			return nil
		}
	}
	return nil
}
