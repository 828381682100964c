package highlevel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// SearchProducts queries products by free text. Used by the name-tag
// dedupe fallback when no mapping store is configured.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]Product, error) {
	params := url.Values{}
	params.Set("search", term)

	raw, err := c.do(ctx, "product search", http.MethodGet, "/products/", params, nil)
	if err != nil {
		return nil, err
	}

	items := normalizeList(raw, "products")
	products := make([]Product, 0, len(items))
	for _, item := range items {
		var p Product
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("parse product search response: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct reads one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	raw, err := c.do(ctx, "product read", http.MethodGet, "/products/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(normalizeObject(raw, "product"), &product); err != nil {
		return nil, fmt.Errorf("parse product read response: %w", err)
	}
	if product.ID == "" {
		product.ID = id
	}
	return &product, nil
}

// CreateProduct creates a product and resolves the new identifier from
// whichever envelope shape the tenant returns. An empty ID on the result
// means no identifier could be extracted; callers must treat that as fatal.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*Product, error) {
	payload.LocationID = c.locationID

	raw, err := c.do(ctx, "product create", http.MethodPost, "/products/", nil, payload)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(normalizeObject(raw, "product"), &product); err != nil {
		return nil, fmt.Errorf("parse product create response: %w", err)
	}
	if product.ID == "" {
		product.ID = extractID(raw)
	}
	return &product, nil
}

// UpdateProduct replaces the product record. The API rejects partial
// payloads, so callers always send the complete record.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload ProductPayload) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	payload.LocationID = c.locationID

	raw, err := c.do(ctx, "product update", http.MethodPut, "/products/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := json.Unmarshal(normalizeObject(raw, "product"), &product); err != nil {
		return nil, fmt.Errorf("parse product update response: %w", err)
	}
	if product.ID == "" {
		product.ID = id
	}
	return &product, nil
}
