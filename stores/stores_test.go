package stores

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/karigarstudio/karigar-studio-api/models"
)

// newTestDB opens a fresh in-memory sqlite database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Karigar{}, &models.Client{}, &models.Assignment{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// Both backings must satisfy the same contract, so every store test runs
// against the memory and the database implementation.
func karigarBackings(t *testing.T) map[string]KarigarStore {
	t.Helper()
	return map[string]KarigarStore{
		"memory":   NewMemoryKarigarStore(),
		"database": NewGormKarigarStore(newTestDB(t)),
	}
}

func clientBackings(t *testing.T) map[string]ClientStore {
	t.Helper()
	return map[string]ClientStore{
		"memory":   NewMemoryClientStore(),
		"database": NewGormClientStore(newTestDB(t)),
	}
}

func assignmentBackings(t *testing.T) map[string]AssignmentStore {
	t.Helper()
	return map[string]AssignmentStore{
		"memory":   NewMemoryAssignmentStore(),
		"database": NewGormAssignmentStore(newTestDB(t)),
	}
}

func orderBackings(t *testing.T) map[string]OrderStore {
	t.Helper()
	return map[string]OrderStore{
		"memory":   NewMemoryOrderStore(),
		"database": NewGormOrderStore(newTestDB(t)),
	}
}
