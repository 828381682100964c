package highlevel

import (
	"encoding/json"
	"strings"
)

// List envelopes observed in the wild: a named wrapper, {"data":[...]},
// {"items":[...]}, or a bare array. Empty or unknown bodies normalize to
// nil rather than failing.
func normalizeList(data []byte, wrapperKeys ...string) []json.RawMessage {
	if len(data) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil
	}

	keys := append(wrapperKeys, "data", "items")
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &items); err == nil {
			return items
		}
	}
	return nil
}

// normalizeObject unwraps a single-entity payload that may arrive bare or
// under a named wrapper or {"data":{...}}.
func normalizeObject(data []byte, wrapperKeys ...string) json.RawMessage {
	if len(data) == 0 {
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil
	}

	keys := append(wrapperKeys, "data")
	for _, key := range keys {
		if raw, ok := envelope[key]; ok && isObject(raw) {
			return raw
		}
	}
	return data
}

func isObject(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "{")
}

// idCandidatePaths is the ordered list of places a created entity's
// identifier has been observed across tenants. Order matters: first
// non-empty hit wins. New tenant quirks get appended here.
var idCandidatePaths = []string{
	"_id",
	"id",
	"productId",
	"priceId",
	"product._id",
	"product.id",
	"price._id",
	"price.id",
	"data._id",
	"data.id",
}

// extractID pulls an entity identifier out of a create/update response
// without assuming which envelope shape the tenant returns.
func extractID(data json.RawMessage) string {
	for _, path := range idCandidatePaths {
		if id := lookupPath(data, path); id != "" {
			return id
		}
	}
	return ""
}

func lookupPath(data json.RawMessage, path string) string {
	current := data
	parts := strings.Split(path, ".")
	for i, part := range parts {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(current, &envelope); err != nil {
			return ""
		}
		raw, ok := envelope[part]
		if !ok {
			return ""
		}
		if i == len(parts)-1 {
			var id string
			if err := json.Unmarshal(raw, &id); err != nil {
				return ""
			}
			return id
		}
		current = raw
	}
	return ""
}
