package stores

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// OrderStore is the storage contract for order records.
type OrderStore interface {
	List() ([]models.Order, error)
	ListByClient(clientID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(o models.Order) (*models.Order, error)
	Update(id string, patch OrderPatch) (*models.Order, error)
	Remove(id string) error
}

// OrderPatch carries the fields a PATCH may change. Material and stage
// lists are replaced wholesale. RemainingItems is never patched directly:
// it is recomputed from quantity and delivered count on every mutation.
type OrderPatch struct {
	OrderNumber      *string            `json:"orderNumber"`
	ClientID         *string            `json:"clientId"`
	ClientName       *string            `json:"clientName"`
	ClientPhone      *string            `json:"clientPhone"`
	OrderDescription *string            `json:"orderDescription"`
	Quantity         *int               `json:"quantity"`
	ItemType         *string            `json:"itemType"`
	Metal            *string            `json:"metal"`
	Purity           *string            `json:"purity"`
	Size             *string            `json:"size"`
	GemName          *string            `json:"gemName"`
	GemstoneWeight   *float64           `json:"gemstoneWeight"`
	DiamondColor     *string            `json:"diamondColor"`
	DiamondClarity   *string            `json:"diamondClarity"`
	DiamondWeight    *float64           `json:"diamondWeight"`
	NumberOfStones   *int               `json:"numberOfStones"`
	GrossWeight      *float64           `json:"grossWeight"`
	NetWeight        *float64           `json:"netWeight"`
	KarigarID        *string            `json:"karigarId"`
	Materials        *[]models.Material `json:"materials"`
	Stages           *[]models.Stage    `json:"stages"`
	Status           *string            `json:"status"`
	DeliveredItems   *int               `json:"deliveredItems"`
	EstimatedPrice   *string            `json:"estimatedPrice"`
	MakingCharges    *string            `json:"makingCharges"`
	ImageS3Key       *string            `json:"image_s3_key"`
	ExpectedDelivery *time.Time         `json:"expectedDeliveryDate"`
	ActualDelivery   *time.Time         `json:"actualDeliveryDate"`
}

func (p OrderPatch) apply(o *models.Order) {
	if p.OrderNumber != nil {
		o.OrderNumber = *p.OrderNumber
	}
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		o.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		o.ClientPhone = *p.ClientPhone
	}
	if p.OrderDescription != nil {
		o.OrderDescription = *p.OrderDescription
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.ItemType != nil {
		o.ItemType = *p.ItemType
	}
	if p.Metal != nil {
		o.Metal = *p.Metal
	}
	if p.Purity != nil {
		o.Purity = *p.Purity
	}
	if p.Size != nil {
		o.Size = *p.Size
	}
	if p.GemName != nil {
		o.GemName = *p.GemName
	}
	if p.GemstoneWeight != nil {
		o.GemstoneWeight = *p.GemstoneWeight
	}
	if p.DiamondColor != nil {
		o.DiamondColor = *p.DiamondColor
	}
	if p.DiamondClarity != nil {
		o.DiamondClarity = *p.DiamondClarity
	}
	if p.DiamondWeight != nil {
		o.DiamondWeight = *p.DiamondWeight
	}
	if p.NumberOfStones != nil {
		o.NumberOfStones = *p.NumberOfStones
	}
	if p.GrossWeight != nil {
		o.GrossWeight = *p.GrossWeight
	}
	if p.NetWeight != nil {
		o.NetWeight = *p.NetWeight
	}
	if p.KarigarID != nil {
		o.KarigarID = *p.KarigarID
	}
	if p.Materials != nil {
		o.Materials = *p.Materials
	}
	if p.Stages != nil {
		o.Stages = *p.Stages
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.DeliveredItems != nil {
		o.DeliveredItems = *p.DeliveredItems
	}
	if p.EstimatedPrice != nil {
		o.EstimatedPrice = *p.EstimatedPrice
	}
	if p.MakingCharges != nil {
		o.MakingCharges = *p.MakingCharges
	}
	if p.ImageS3Key != nil {
		o.ImageS3Key = p.ImageS3Key
	}
	if p.ExpectedDelivery != nil {
		o.ExpectedDelivery = *p.ExpectedDelivery
	}
	if p.ActualDelivery != nil {
		o.ActualDelivery = p.ActualDelivery
	}
}

// normalizeOrder re-establishes deliveredItems + remainingItems = quantity
// after any mutation that touched either side.
func normalizeOrder(o *models.Order) {
	if o.DeliveredItems < 0 {
		o.DeliveredItems = 0
	}
	if o.DeliveredItems > o.Quantity {
		o.DeliveredItems = o.Quantity
	}
	o.RemainingItems = o.Quantity - o.DeliveredItems
	if len(o.Stages) == 0 {
		o.Stages = models.DefaultStages()
	}
}

// GormOrderStore persists orders in the orders table.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore constructs a database-backed order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *GormOrderStore) ListByClient(clientID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders for client %s: %w", clientID, err)
	}
	return orders, nil
}

func (s *GormOrderStore) GetByID(id string) (*models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &o, nil
}

func (s *GormOrderStore) Create(o models.Order) (*models.Order, error) {
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	normalizeOrder(&o)
	if err := s.db.Create(&o).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &o, nil
}

func (s *GormOrderStore) Update(id string, patch OrderPatch) (*models.Order, error) {
	o, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	patch.apply(o)
	normalizeOrder(o)
	if err := s.db.Save(o).Error; err != nil {
		return nil, fmt.Errorf("update order %s: %w", id, err)
	}
	return o, nil
}

// Remove deletes the order if present. Removing an absent id is not an error.
func (s *GormOrderStore) Remove(id string) error {
	if err := s.db.Delete(&models.Order{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("remove order %s: %w", id, err)
	}
	return nil
}
