package highlevel

import "encoding/json"

// Collection is a downstream product collection.
type Collection struct {
	ID   string
	Name string
}

// Tenants disagree on whether identifiers arrive as "_id" or "id".
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = firstNonEmpty(raw.MongoID, raw.ID)
	c.Name = raw.Name
	return nil
}

// Media is one product image or video entry.
type Media struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Type       string `json:"type,omitempty"`
	IsFeatured bool   `json:"isFeatured,omitempty"`
}

// Product is a downstream catalog product as read back from the API.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Medias           []Media  `json:"medias,omitempty"`
	CollectionIDs    []string `json:"collectionIds,omitempty"`
	AvailableInStore *bool    `json:"availableInStore,omitempty"`
	ProductType      string   `json:"productType,omitempty"`
	SeoTitle         string   `json:"seoTitle,omitempty"`
	SeoDescription   string   `json:"seoDescription,omitempty"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type product Product // drop methods to avoid recursion
	var raw struct {
		product
		MongoID string  `json:"_id"`
		Media   []Media `json:"media"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Product(raw.product)
	p.ID = firstNonEmpty(raw.MongoID, raw.product.ID)
	if len(p.Medias) == 0 {
		p.Medias = raw.Media
	}
	return nil
}

// Price is a downstream price record scoped under a product.
type Price struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product,omitempty"`
	Name      string   `json:"name,omitempty"`
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency,omitempty"`
	Type      string   `json:"type,omitempty"`
	SKU       string   `json:"sku,omitempty"`
	CompareAt *float64 `json:"compareAtPrice,omitempty"`
}

func (p *Price) UnmarshalJSON(data []byte) error {
	type price Price
	var raw struct {
		price
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Price(raw.price)
	p.ID = firstNonEmpty(raw.MongoID, raw.price.ID)
	return nil
}

// ProductPayload is the full record sent on product create and update.
// The API rejects partial updates, so every field the caller wants kept
// must be present on every write.
type ProductPayload struct {
	Name             string  `json:"name"`
	LocationID       string  `json:"locationId"`
	Description      string  `json:"description,omitempty"`
	ProductType      string  `json:"productType"`
	AvailableInStore bool    `json:"availableInStore"`
	Medias           []Media `json:"medias,omitempty"`
	// CollectionIDs routes the product; exactly one entry in practice.
	CollectionIDs  []string `json:"collectionIds"`
	SeoTitle       string   `json:"seoTitle,omitempty"`
	SeoDescription string   `json:"seoDescription,omitempty"`
}

// PricePayload is the record sent on price create and update.
type PricePayload struct {
	Name       string   `json:"name"`
	LocationID string   `json:"locationId"`
	ProductID  string   `json:"product,omitempty"`
	Amount     float64  `json:"amount"`
	Currency   string   `json:"currency"`
	Type       string   `json:"type"`
	SKU        string   `json:"sku,omitempty"`
	CompareAt  *float64 `json:"compareAtPrice,omitempty"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
