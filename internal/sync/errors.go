package sync

import "fmt"

// ValidationError rejects a request before any downstream call.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// CollectionNotFoundError aborts the request when the resolver found no
// match; Observed carries the collection names that were there, for
// diagnosability.
type CollectionNotFoundError struct {
	Name     string
	Observed []string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection %q not found", e.Name)
}

// InvariantError marks a downstream response this system cannot proceed
// from, e.g. a create that returned no identifier.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return e.Msg
}
