package mongo

import (
	"testing"
	"time"

	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

// Compile-time checks that both repositories implement their ports. These
// fail the test build on any signature drift or undefined identifier inside
// the package, which no handler-level test would reach.
var (
	_ ports.UserRepository    = (*UserRepository)(nil)
	_ ports.ProductRepository = (*ProductRepository)(nil)
)

func TestTimeoutsArePositive(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"connect":   defaultConnectTimeout,
		"operation": operationTimeout,
	} {
		if d <= 0 {
			t.Fatalf("%s timeout must be positive, got %v", name, d)
		}
	}
}
