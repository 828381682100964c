package highlevel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ListPrices returns all prices attached to a product.
func (c *Client) ListPrices(ctx context.Context, productID string) ([]Price, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	raw, err := c.do(ctx, "price list", http.MethodGet, "/products/"+url.PathEscape(productID)+"/price", nil, nil)
	if err != nil {
		return nil, err
	}

	items := normalizeList(raw, "prices")
	prices := make([]Price, 0, len(items))
	for _, item := range items {
		var p Price
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("parse price list response: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// CreatePrice creates a price under a product.
func (c *Client) CreatePrice(ctx context.Context, productID string, payload PricePayload) (*Price, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	payload.LocationID = c.locationID
	payload.ProductID = productID

	raw, err := c.do(ctx, "price create", http.MethodPost, "/products/"+url.PathEscape(productID)+"/price", nil, payload)
	if err != nil {
		return nil, err
	}

	var price Price
	if err := json.Unmarshal(normalizeObject(raw, "price"), &price); err != nil {
		return nil, fmt.Errorf("parse price create response: %w", err)
	}
	if price.ID == "" {
		price.ID = extractID(raw)
	}
	return &price, nil
}

// UpdatePrice updates a price in place. Not supported on all tenants;
// callers fall back to delete-then-create when this fails.
func (c *Client) UpdatePrice(ctx context.Context, productID, priceID string, payload PricePayload) (*Price, error) {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(priceID) == "" {
		return nil, fmt.Errorf("product ID and price ID are required")
	}
	payload.LocationID = c.locationID
	payload.ProductID = productID

	raw, err := c.do(ctx, "price update", http.MethodPut,
		"/products/"+url.PathEscape(productID)+"/price/"+url.PathEscape(priceID), nil, payload)
	if err != nil {
		return nil, err
	}

	var price Price
	if err := json.Unmarshal(normalizeObject(raw, "price"), &price); err != nil {
		return nil, fmt.Errorf("parse price update response: %w", err)
	}
	if price.ID == "" {
		price.ID = priceID
	}
	return &price, nil
}

// DeletePrice removes a price from a product.
func (c *Client) DeletePrice(ctx context.Context, productID, priceID string) error {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(priceID) == "" {
		return fmt.Errorf("product ID and price ID are required")
	}

	_, err := c.do(ctx, "price delete", http.MethodDelete,
		"/products/"+url.PathEscape(productID)+"/price/"+url.PathEscape(priceID), nil, nil)
	return err
}
