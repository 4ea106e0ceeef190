package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karigarstudio/karigar-studio-api/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderNumber:      "ORD-2025-0042",
		ClientID:         "client-1",
		ClientName:       "Meera Jewellers",
		ClientPhone:      "+919812345671",
		OrderDescription: "Diamond solitaire engagement ring, six-prong setting",
		Quantity:         10,
		ItemType:         "ring",
		Metal:            "Gold",
		Purity:           "18Kt",
		Size:             "14",
		DiamondWeight:    0.52,
		NumberOfStones:   1,
		GrossWeight:      8.4,
		NetWeight:        7.9,
		KarigarID:        "karigar-1",
		Status:           models.OrderInProgress,
		DeliveredItems:   3,
		EstimatedPrice:   "185000",
		MakingCharges:    "12000",
		ExpectedDelivery: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Stages:           models.DefaultStages(),
	}
}

func TestOrderDeliveredRemainingInvariant(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.Create(sampleOrder())
			require.NoError(t, err)
			assert.Equal(t, 7, created.RemainingItems, "10 ordered, 3 delivered")

			// every mutation path touching either side re-establishes the invariant
			delivered := 6
			updated, err := store.Update(created.ID, OrderPatch{DeliveredItems: &delivered})
			require.NoError(t, err)
			assert.Equal(t, 4, updated.RemainingItems)

			quantity := 12
			updated, err = store.Update(created.ID, OrderPatch{Quantity: &quantity})
			require.NoError(t, err)
			assert.Equal(t, 12, updated.Quantity)
			assert.Equal(t, 6, updated.DeliveredItems)
			assert.Equal(t, 6, updated.RemainingItems)

			got, err := store.GetByID(created.ID)
			require.NoError(t, err)
			assert.Equal(t, got.Quantity, got.DeliveredItems+got.RemainingItems)
		})
	}
}

func TestOrderDeliveredClampedToQuantity(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.Create(sampleOrder())
			require.NoError(t, err)

			delivered := 25 // more than the order quantity
			updated, err := store.Update(created.ID, OrderPatch{DeliveredItems: &delivered})
			require.NoError(t, err)
			assert.Equal(t, updated.Quantity, updated.DeliveredItems)
			assert.Equal(t, 0, updated.RemainingItems)
		})
	}
}

func TestOrderCreateFillsDefaultStages(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			o := sampleOrder()
			o.Stages = nil
			created, err := store.Create(o)
			require.NoError(t, err)
			require.Len(t, created.Stages, 6)
			assert.Equal(t, "Design Creation", created.Stages[0].Name)
			assert.Equal(t, "Quality Check", created.Stages[5].Name)
		})
	}
}

func TestOrderStagesReplacedWholesale(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.Create(sampleOrder())
			require.NoError(t, err)

			stages := created.Stages
			stages[0].IsComplete = true
			stages[1].IsComplete = true
			updated, err := store.Update(created.ID, OrderPatch{Stages: &stages})
			require.NoError(t, err)

			assert.True(t, updated.Stages[0].IsComplete)
			assert.True(t, updated.Stages[1].IsComplete)
			assert.False(t, updated.Stages[2].IsComplete)
		})
	}
}

func TestOrderListByClient(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			a := sampleOrder()
			a.ClientID = "client-a"
			b := sampleOrder()
			b.ClientID = "client-b"

			_, err := store.Create(a)
			require.NoError(t, err)
			_, err = store.Create(b)
			require.NoError(t, err)

			got, err := store.ListByClient("client-a")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "client-a", got[0].ClientID)

			none, err := store.ListByClient("client-z")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestOrderUpdateNotFound(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			status := models.OrderDelivered
			_, err := store.Update("missing", OrderPatch{Status: &status})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestOrderRemoveIdempotent(t *testing.T) {
	for name, store := range orderBackings(t) {
		t.Run(name, func(t *testing.T) {
			created, err := store.Create(sampleOrder())
			require.NoError(t, err)
			require.NoError(t, store.Remove(created.ID))
			assert.NoError(t, store.Remove(created.ID))
		})
	}
}
