package stores

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// ClientStore is the storage contract for client records.
type ClientStore interface {
	List() ([]models.Client, error)
	GetByID(id string) (*models.Client, error)
	Create(c models.Client) (*models.Client, error)
	Update(id string, patch ClientPatch) (*models.Client, error)
	UpdateStatus(id, status string) (*models.Client, error)
	Remove(id string) error
}

// ClientPatch carries the fields a PATCH may change.
type ClientPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Status      *string `json:"status"`
	TotalOrders *int    `json:"totalOrders"`
	TotalValue  *string `json:"totalValue"`
}

func (p ClientPatch) apply(c *models.Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.TotalOrders != nil {
		c.TotalOrders = *p.TotalOrders
	}
	if p.TotalValue != nil {
		c.TotalValue = *p.TotalValue
	}
}

// GormClientStore persists clients in the clients table.
type GormClientStore struct {
	db *gorm.DB
}

// NewGormClientStore constructs a database-backed client store.
func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

func (s *GormClientStore) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("created_at").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *GormClientStore) GetByID(id string) (*models.Client, error) {
	var c models.Client
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client %s: %w", id, err)
	}
	return &c, nil
}

func (s *GormClientStore) Create(c models.Client) (*models.Client, error) {
	c.ID = uuid.NewString()
	if c.Status == "" {
		c.Status = models.ClientActive
	}
	if c.TotalValue == "" {
		c.TotalValue = "0"
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &c, nil
}

func (s *GormClientStore) Update(id string, patch ClientPatch) (*models.Client, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	patch.apply(c)
	if err := s.db.Save(c).Error; err != nil {
		return nil, fmt.Errorf("update client %s: %w", id, err)
	}
	return c, nil
}

func (s *GormClientStore) UpdateStatus(id, status string) (*models.Client, error) {
	if !models.ValidClientStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(id, ClientPatch{Status: &status})
}

// Remove deletes the client if present. Removing an absent id is not an error.
func (s *GormClientStore) Remove(id string) error {
	if err := s.db.Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("remove client %s: %w", id, err)
	}
	return nil
}
