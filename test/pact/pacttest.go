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
	ProviderName = "pizza-store-api"
	ConsumerName = "pizza-storefront"

	StateMenuAvailable = "menu is available"
	StateCartBaseline  = "cart baseline"
	StateOrderExists   = "order with id order_1718186400000_pact00001 exists"
	StateOrderMissing  = "no order with id order_0_missing00"
)

const (
	ExistingOrderID = "order_1718186400000_pact00001"
	MissingOrderID  = "order_0_missing00"

	ExampleSessionID = "pact-session"
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

// PactFile returns the canonical pact file path for the storefront consumer.
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

// ExampleCartItemPayload provides stable test data for add-to-cart interactions.
func ExampleCartItemPayload() map[string]any {
	return map[string]any{
		"pizzaId":  2,
		"size":     "Large",
		"toppings": []string{"Bacon", "Olives"},
		"quantity": 1,
	}
}

// ExampleCheckoutPayload provides stable checkout form data.
func ExampleCheckoutPayload() map[string]any {
	return map[string]any{
		"name":    "Pact Customer",
		"phone":   "555-0100",
		"address": "1 Contract Lane",
		"city":    "Doughton",
		"zip":     "12345",
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
