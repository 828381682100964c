package mapping

import "context"

// NoopStore stands in when no durable store is configured. Every lookup
// misses and every write reports unavailable, which routes the
// reconciler to the name-tag fallback.
type NoopStore struct{}

var _ Store = NoopStore{}

func (NoopStore) Get(context.Context, string) (*Mapping, error) {
	return nil, ErrNotFound
}

func (NoopStore) Set(context.Context, string, Mapping) error {
	return ErrUnavailable
}

func (NoopStore) Available() bool {
	return false
}
