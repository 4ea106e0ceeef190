package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain runs before all tests in the config package.
// It ensures GO_ENV is set to "test" so a misconfigured run can never
// touch a development or production database.
func TestMain(m *testing.M) {
	if env := os.Getenv("GO_ENV"); env != "test" {
		fmt.Fprintf(os.Stderr, "SAFETY CHECK FAILED: config tests must run with GO_ENV=test (current: %q).\nRun: GO_ENV=test go test ./...\n", env)
		os.Exit(1)
	}

	os.Exit(m.Run())
}
