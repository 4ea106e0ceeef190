// Package stores provides the resource stores for karigars, clients,
// assignments and orders. Each resource is defined by an interface with two
// backings: a GORM-backed table for durable deployments and an in-process
// collection for demo mode and tests. The backing is chosen once at startup
// via the STORE_BACKEND configuration key, never per call.
package stores

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound signals a legitimate absence: the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidStatus signals a status value outside the resource's enumeration.
var ErrInvalidStatus = errors.New("invalid status value")

// Stores bundles one store per resource. Constructed once at process start
// and handed to the controllers; nothing in this package holds package-level
// mutable state.
type Stores struct {
	Karigars    KarigarStore
	Clients     ClientStore
	Assignments AssignmentStore
	Orders      OrderStore
}

// NewGormStores builds the database-backed store set.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Karigars:    NewGormKarigarStore(db),
		Clients:     NewGormClientStore(db),
		Assignments: NewGormAssignmentStore(db),
		Orders:      NewGormOrderStore(db),
	}
}

// NewMemoryStores builds the volatile in-process store set. Records do not
// survive a restart.
func NewMemoryStores() *Stores {
	return &Stores{
		Karigars:    NewMemoryKarigarStore(),
		Clients:     NewMemoryClientStore(),
		Assignments: NewMemoryAssignmentStore(),
		Orders:      NewMemoryOrderStore(),
	}
}
