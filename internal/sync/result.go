package sync

import "shopsync/internal/highlevel"

// Modes of operation resolved by the locate step.
const (
	ModeCreate = "create"
	ModeUpdate = "update"
)

// Price actions taken by the reconcile step.
const (
	PriceActionCreate         = "create"
	PriceActionReplace        = "replace"
	PriceActionUpdate         = "update"
	PriceActionCreateFallback = "create_fallback"
)

// Result is the structured outcome of one sync. Soft failures (price,
// mapping, verify) live inside it; hard failures are returned as errors
// and never produce a Result.
type Result struct {
	Success    bool               `json:"success"`
	Mode       string             `json:"mode"`
	ProductID  string             `json:"productId"`
	Collection CollectionResult   `json:"collection"`
	Price      *PriceResult       `json:"price,omitempty"`
	Mapping    *MappingResult     `json:"mapping,omitempty"`
	Product    *highlevel.Product `json:"product,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
}

type CollectionResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceResult reports what the price stage did, including deletes issued
// by sku dedupe and any soft failure.
type PriceResult struct {
	Action     string   `json:"action"`
	PriceID    string   `json:"priceId,omitempty"`
	DeletedIDs []string `json:"deletedPriceIds,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// MappingResult reports the mapping persistence outcome.
type MappingResult struct {
	Key       string `json:"key"`
	Persisted bool   `json:"persisted"`
	Error     string `json:"error,omitempty"`
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
