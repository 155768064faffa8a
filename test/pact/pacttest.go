//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "stockroom-api"
	ConsumerName = "picker-app"

	StateCatalogBaseline = "catalog baseline"
	StateOrderWithItems  = "order ORD-301 with stocked items exists"
	StateOrderMissing    = "no order with id ORD-999"
)

const (
	ExistingOrderID = "ORD-301"
	MissingOrderID  = "ORD-999"

	WidgetProductID   = "P-101"
	WidgetProductName = "Widget"
	ShelfLocationID   = "L-7"
	ShelfLocationName = "Shelf A"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the picker app consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleInstructionPayload provides stable test data for pick-list interactions.
func ExampleInstructionPayload() map[string]any {
	return map[string]any{
		"productName":    WidgetProductName,
		"productId":      WidgetProductID,
		"quantityToPick": 3,
		"availableLocations": []map[string]any{
			{"id": ShelfLocationID, "name": ShelfLocationName, "address": "Aisle 1"},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
