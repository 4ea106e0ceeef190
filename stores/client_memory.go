package stores

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// MemoryClientStore keeps clients in an ordered in-process slice.
type MemoryClientStore struct {
	mu      sync.RWMutex
	clients []models.Client
}

// NewMemoryClientStore constructs an empty volatile client store.
func NewMemoryClientStore() *MemoryClientStore {
	return &MemoryClientStore{}
}

func (s *MemoryClientStore) List() ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

func (s *MemoryClientStore) GetByID(id string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			c := s.clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryClientStore) Create(c models.Client) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	if c.Status == "" {
		c.Status = models.ClientActive
	}
	if c.TotalValue == "" {
		c.TotalValue = "0"
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.clients = append(s.clients, c)
	return &c, nil
}

func (s *MemoryClientStore) Update(id string, patch ClientPatch) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			patch.apply(&s.clients[i])
			s.clients[i].UpdatedAt = time.Now()
			c := s.clients[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryClientStore) UpdateStatus(id, status string) (*models.Client, error) {
	if !models.ValidClientStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(id, ClientPatch{Status: &status})
}

func (s *MemoryClientStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return nil
}
