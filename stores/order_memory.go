package stores

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// MemoryOrderStore keeps orders in an in-process slice, newest first to
// match the database backing's created_at desc ordering.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMemoryOrderStore constructs an empty volatile order store.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) List() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryOrderStore) ListByClient(clientID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for i := range s.orders {
		if s.orders[i].ClientID == clientID {
			out = append(out, s.orders[i])
		}
	}
	return out, nil
}

func (s *MemoryOrderStore) GetByID(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryOrderStore) Create(o models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	normalizeOrder(&o)
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	// prepend, newest first
	s.orders = append([]models.Order{o}, s.orders...)
	return &o, nil
}

func (s *MemoryOrderStore) Update(id string, patch OrderPatch) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			patch.apply(&s.orders[i])
			normalizeOrder(&s.orders[i])
			s.orders[i].UpdatedAt = time.Now()
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryOrderStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return nil
}
