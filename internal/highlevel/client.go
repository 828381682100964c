package highlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopsync/internal/config"
)

const (
	// DefaultBaseURL is the HighLevel services API base URL.
	DefaultBaseURL = "https://services.leadconnectorhq.com"

	// DefaultAPIVersion is sent in the Version header on every call.
	DefaultAPIVersion = "2021-07-28"
)

// Client calls HighLevel catalog APIs with bearer auth and the
// location correlation parameters the API requires on every call.
type Client struct {
	baseURL    string
	token      string
	version    string
	locationID string
	httpClient *http.Client
}

// NewClient creates a catalog client scoped to one location.
func NewClient(cfg config.HighLevelConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, errors.New("API token is required")
	}
	if strings.TrimSpace(cfg.LocationID) == "" {
		return nil, errors.New("location ID is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	version := strings.TrimSpace(cfg.APIVersion)
	if version == "" {
		version = DefaultAPIVersion
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.APIToken,
		version:    version,
		locationID: cfg.LocationID,
		httpClient: httpClient,
	}, nil
}

// LocationID returns the location this client is scoped to.
func (c *Client) LocationID() string {
	return c.locationID
}

// do issues one request with correlation params attached and the body fully
// read. Non-2xx responses come back as *StatusError.
func (c *Client) do(ctx context.Context, operation, method, path string, params url.Values, payload any) (json.RawMessage, error) {
	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse %s URL: %w", operation, err)
	}

	if params == nil {
		params = url.Values{}
	}
	// The API rejects calls missing any of these three.
	params.Set("altId", c.locationID)
	params.Set("altType", "location")
	params.Set("locationId", c.locationID)
	reqURL.RawQuery = params.Encode()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", operation, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Version", c.version)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil { // ensure body is fully read for connection reuse
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		trimmed := strings.TrimSpace(buf.String())
		slog.ErrorContext(ctx, "catalog API rejected request",
			"operation", operation,
			"status", resp.StatusCode,
			"url", reqURL.String(),
			"body", trimmed,
		)
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       trimmed,
			URL:        reqURL.String(),
		}
	}

	return buf.Bytes(), nil
}
