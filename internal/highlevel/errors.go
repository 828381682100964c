package highlevel

import "fmt"

// StatusError captures non-2xx HTTP responses from the catalog API.
// Callers read the status from here rather than re-parsing the body.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
	URL        string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s request failed: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: status %d: %s", e.Operation, e.StatusCode, e.Body)
}
