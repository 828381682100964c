package sync

import (
	"strings"

	"shopsync/internal/highlevel"
)

// SyncRequest is the caller-supplied intent for one product sync.
type SyncRequest struct {
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	CollectionName string       `json:"collectionName"`
	Images         []string     `json:"images,omitempty"`
	Media          []MediaInput `json:"media,omitempty"`
	Price          *PriceInput  `json:"price,omitempty"`
	SKU            string       `json:"sku,omitempty"`
	ExternalID     string       `json:"externalId,omitempty"`
	Upsert         bool         `json:"upsert,omitempty"`
	// AvailableInStore defaults to true when omitted.
	AvailableInStore *bool  `json:"availableInStore,omitempty"`
	ProductType      string `json:"productType,omitempty"`
	SeoTitle         string `json:"seoTitle,omitempty"`
	SeoDescription   string `json:"seoDescription,omitempty"`
}

// MediaInput is an explicit media object; when present it takes
// precedence over the plain Images list.
type MediaInput struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Type       string `json:"type,omitempty"`
	IsFeatured bool   `json:"isFeatured,omitempty"`
}

// PriceInput carries the optional price to reconcile.
type PriceInput struct {
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency,omitempty"`
	CompareAt *float64 `json:"compareAt,omitempty"`
	Type      string   `json:"type,omitempty"`
	SKU       string   `json:"sku,omitempty"`
}

// Validate rejects requests before any downstream call is made.
func (r *SyncRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(r.CollectionName) == "" {
		return &ValidationError{Field: "collectionName", Msg: "collectionName is required"}
	}
	if r.Upsert && r.DedupeKey() == "" {
		// Silently treating keyless upserts as "create" would mint
		// duplicates the caller asked to avoid.
		return &ValidationError{Field: "sku", Msg: "upsert requires a sku or externalId"}
	}
	if r.Price != nil {
		if r.Price.Amount < 0 {
			return &ValidationError{Field: "price.amount", Msg: "price amount must be >= 0"}
		}
		if r.Price.CompareAt != nil && *r.Price.CompareAt < 0 {
			return &ValidationError{Field: "price.compareAt", Msg: "compareAt must be >= 0"}
		}
	}
	return nil
}

// DedupeKey derives the business key: lowercased sku, else lowercased
// externalId, else empty meaning "no deduplication possible".
func (r *SyncRequest) DedupeKey() string {
	if sku := strings.TrimSpace(r.SKU); sku != "" {
		return strings.ToLower(sku)
	}
	if ext := strings.TrimSpace(r.ExternalID); ext != "" {
		return strings.ToLower(ext)
	}
	return ""
}

// PriceSKU is the sku attached to the price record; the request-level
// sku doubles as the price sku when none is given explicitly.
func (r *SyncRequest) PriceSKU() string {
	if r.Price == nil {
		return ""
	}
	if sku := strings.TrimSpace(r.Price.SKU); sku != "" {
		return sku
	}
	return strings.TrimSpace(r.SKU)
}

// Available resolves the availableInStore default.
func (r *SyncRequest) Available() bool {
	if r.AvailableInStore == nil {
		return true
	}
	return *r.AvailableInStore
}

// Type resolves the productType default.
func (r *SyncRequest) Type() string {
	if t := strings.TrimSpace(r.ProductType); t != "" {
		return t
	}
	return "PHYSICAL"
}

// MediaList builds the downstream media list. Explicit media objects win
// over the plain image URL list; with images the first one is featured.
func (r *SyncRequest) MediaList() []highlevel.Media {
	if len(r.Media) > 0 {
		medias := make([]highlevel.Media, 0, len(r.Media))
		for _, m := range r.Media {
			if strings.TrimSpace(m.URL) == "" {
				continue
			}
			mediaType := m.Type
			if mediaType == "" {
				mediaType = "image"
			}
			medias = append(medias, highlevel.Media{
				URL:        m.URL,
				Title:      m.Title,
				Type:       mediaType,
				IsFeatured: m.IsFeatured,
			})
		}
		return medias
	}

	medias := make([]highlevel.Media, 0, len(r.Images))
	for i, img := range r.Images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		medias = append(medias, highlevel.Media{
			URL:        img,
			Type:       "image",
			IsFeatured: i == 0,
		})
	}
	return medias
}
