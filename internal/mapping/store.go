package mapping

import (
	"context"
	"errors"
	"strings"
)

// Mapping records the downstream ids a dedupe key resolved to on the
// last successful sync.
type Mapping struct {
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId,omitempty"`
}

var (
	ErrNotFound = errors.New("mapping not found")

	// ErrUnavailable is returned by the noop store; callers treat it the
	// same as a write that didn't stick.
	ErrUnavailable = errors.New("mapping store unavailable")
)

// Store is the optional durable key -> ids map. Implementations must be
// safe to call when the backing service is unreachable: errors from Get
// degrade to "not found" and errors from Set are recorded, never fatal.
type Store interface {
	Get(ctx context.Context, key string) (*Mapping, error)
	Set(ctx context.Context, key string, m Mapping) error
	// Available reports whether lookups can possibly succeed. A false
	// here routes the reconciler to the name-tag search fallback.
	Available() bool
}

// Key builds the store key for a dedupe key within a location.
func Key(locationID, dedupeKey string) string {
	return locationID + ":" + strings.ToLower(dedupeKey)
}
