package stores

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// KarigarStore is the storage contract for karigar records.
type KarigarStore interface {
	List() ([]models.Karigar, error)
	GetByID(id string) (*models.Karigar, error)
	Create(k models.Karigar) (*models.Karigar, error)
	Update(id string, patch KarigarPatch) (*models.Karigar, error)
	UpdateStatus(id, status string) (*models.Karigar, error)
	Remove(id string) error
}

// KarigarPatch carries the fields a PATCH may change. Nil fields are left
// untouched; set fields are merged shallowly into the stored record.
type KarigarPatch struct {
	Name          *string  `json:"name"`
	Skill         *string  `json:"skill"`
	Experience    *string  `json:"experience"`
	Location      *string  `json:"location"`
	Status        *string  `json:"status"`
	ContactNumber *string  `json:"contactNumber"`
	Rating        *float64 `json:"rating"`
	Assignments   *int     `json:"assignments"`
}

func (p KarigarPatch) apply(k *models.Karigar) {
	if p.Name != nil {
		k.Name = *p.Name
	}
	if p.Skill != nil {
		k.Skill = *p.Skill
	}
	if p.Experience != nil {
		k.Experience = *p.Experience
	}
	if p.Location != nil {
		k.Location = *p.Location
	}
	if p.Status != nil {
		k.Status = *p.Status
	}
	if p.ContactNumber != nil {
		k.ContactNumber = *p.ContactNumber
	}
	if p.Rating != nil {
		k.Rating = *p.Rating
	}
	if p.Assignments != nil {
		k.Assignments = *p.Assignments
	}
}

// GormKarigarStore persists karigars in the karigars table.
type GormKarigarStore struct {
	db *gorm.DB
}

// NewGormKarigarStore constructs a database-backed karigar store.
func NewGormKarigarStore(db *gorm.DB) *GormKarigarStore {
	return &GormKarigarStore{db: db}
}

func (s *GormKarigarStore) List() ([]models.Karigar, error) {
	var karigars []models.Karigar
	if err := s.db.Order("created_at").Find(&karigars).Error; err != nil {
		return nil, fmt.Errorf("list karigars: %w", err)
	}
	return karigars, nil
}

func (s *GormKarigarStore) GetByID(id string) (*models.Karigar, error) {
	var k models.Karigar
	if err := s.db.First(&k, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get karigar %s: %w", id, err)
	}
	return &k, nil
}

func (s *GormKarigarStore) Create(k models.Karigar) (*models.Karigar, error) {
	k.ID = uuid.NewString()
	if k.Status == "" {
		k.Status = models.KarigarAvailable
	}
	if err := s.db.Create(&k).Error; err != nil {
		return nil, fmt.Errorf("create karigar: %w", err)
	}
	return &k, nil
}

func (s *GormKarigarStore) Update(id string, patch KarigarPatch) (*models.Karigar, error) {
	k, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	patch.apply(k)
	if err := s.db.Save(k).Error; err != nil {
		return nil, fmt.Errorf("update karigar %s: %w", id, err)
	}
	return k, nil
}

func (s *GormKarigarStore) UpdateStatus(id, status string) (*models.Karigar, error) {
	if !models.ValidKarigarStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(id, KarigarPatch{Status: &status})
}

// Remove deletes the karigar if present. Removing an absent id is not an error.
func (s *GormKarigarStore) Remove(id string) error {
	if err := s.db.Delete(&models.Karigar{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("remove karigar %s: %w", id, err)
	}
	return nil
}
