package highlevel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListCollections returns the location's product collections. Always
// re-fetched per request; the collection catalog can change and a stale
// id would misroute products.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	raw, err := c.do(ctx, "collection list", http.MethodGet, "/products/collections", nil, nil)
	if err != nil {
		return nil, err
	}

	items := normalizeList(raw, "collections")
	collections := make([]Collection, 0, len(items))
	for _, item := range items {
		var col Collection
		if err := json.Unmarshal(item, &col); err != nil {
			return nil, fmt.Errorf("parse collection list response: %w", err)
		}
		collections = append(collections, col)
	}
	return collections, nil
}
