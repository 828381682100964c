package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"shopsync/internal/collections"
	"shopsync/internal/highlevel"
	"shopsync/internal/mapping"
)

// CatalogAPI is the slice of the catalog client the reconciler uses.
type CatalogAPI interface {
	ListCollections(ctx context.Context) ([]highlevel.Collection, error)
	SearchProducts(ctx context.Context, term string) ([]highlevel.Product, error)
	GetProduct(ctx context.Context, id string) (*highlevel.Product, error)
	CreateProduct(ctx context.Context, payload highlevel.ProductPayload) (*highlevel.Product, error)
	UpdateProduct(ctx context.Context, id string, payload highlevel.ProductPayload) (*highlevel.Product, error)
	ListPrices(ctx context.Context, productID string) ([]highlevel.Price, error)
	CreatePrice(ctx context.Context, productID string, payload highlevel.PricePayload) (*highlevel.Price, error)
	UpdatePrice(ctx context.Context, productID, priceID string, payload highlevel.PricePayload) (*highlevel.Price, error)
	DeletePrice(ctx context.Context, productID, priceID string) error
}

// Reconciler decides create-vs-update for each sync and owns all
// duplicate-avoidance policy. Product create/update failures are fatal;
// everything after the product is durable fails softly into the Result.
type Reconciler struct {
	catalog    CatalogAPI
	resolver   *collections.Resolver
	store      mapping.Store
	locationID string
}

func NewReconciler(catalog CatalogAPI, store mapping.Store, locationID string) *Reconciler {
	return &Reconciler{
		catalog:    catalog,
		resolver:   collections.NewResolver(catalog),
		store:      store,
		locationID: locationID,
	}
}

// dedupeTag embeds the business key in a searchable product name. This
// is the fallback discovery mechanism when no mapping store is
// configured; the tag must survive downstream name storage unchanged.
func dedupeTag(key string) string {
	return "[DBE:" + key + "]"
}

// Run executes one sync: resolve collection, locate existing, create or
// update the product, reconcile the price, persist the mapping, verify.
func (r *Reconciler) Run(ctx context.Context, req *SyncRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	col, observed, err := r.resolver.Resolve(ctx, req.CollectionName)
	if err != nil {
		return nil, err
	}
	if col.ID == "" {
		return nil, &CollectionNotFoundError{Name: req.CollectionName, Observed: observed}
	}

	mode, productID, priorPriceID, err := r.locateExisting(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Mode: mode,
		Collection: CollectionResult{
			ID:   col.ID,
			Name: col.Name,
		},
	}

	productID, err = r.writeProduct(ctx, req, col.ID, mode, productID)
	if err != nil {
		return nil, err
	}
	result.ProductID = productID

	// The product is durable from here on; remaining stages only warn.
	if req.Price != nil {
		result.Price = r.reconcilePrice(ctx, req, mode, productID, priorPriceID)
		if result.Price.Error != "" {
			result.warn("price: " + result.Price.Error)
		}
	}

	if req.Upsert && req.DedupeKey() != "" && r.store.Available() {
		result.Mapping = r.persistMapping(ctx, req, productID, result.Price)
		if result.Mapping.Error != "" {
			result.warn("mapping: " + result.Mapping.Error)
		}
	}

	product, err := r.catalog.GetProduct(ctx, productID)
	if err != nil {
		slog.WarnContext(ctx, "verification read failed", "productId", productID, "error", err)
		result.warn("verify: " + err.Error())
	} else {
		result.Product = product
	}

	result.Success = true
	return result, nil
}

// locateExisting decides create-vs-update. Callers who did not opt into
// upsert always get a fresh product, even when one with the same sku
// already exists.
func (r *Reconciler) locateExisting(ctx context.Context, req *SyncRequest) (mode, productID, priceID string, err error) {
	if !req.Upsert {
		return ModeCreate, "", "", nil
	}

	key := req.DedupeKey()

	if r.store.Available() {
		m, err := r.store.Get(ctx, mapping.Key(r.locationID, key))
		if err != nil {
			if !errors.Is(err, mapping.ErrNotFound) {
				// A broken store must not block the sync.
				slog.WarnContext(ctx, "mapping store lookup failed", "key", key, "error", err)
			}
			return ModeCreate, "", "", nil
		}
		slog.InfoContext(ctx, "located existing product via mapping store",
			"key", key, "productId", m.ProductID, "priceId", m.PriceID)
		return ModeUpdate, m.ProductID, m.PriceID, nil
	}

	tag := dedupeTag(key)
	products, err := r.catalog.SearchProducts(ctx, tag)
	if err != nil {
		return "", "", "", fmt.Errorf("search for existing product: %w", err)
	}

	tagged := tag + " " + req.Name
	match, ok := lo.Find(products, func(p highlevel.Product) bool {
		return strings.Contains(p.Name, tag) || p.Name == tagged
	})
	if !ok {
		return ModeCreate, "", "", nil
	}
	slog.InfoContext(ctx, "located existing product via name tag", "key", key, "productId", match.ID)
	// No prior price id is recoverable through the tag search.
	return ModeUpdate, match.ID, "", nil
}

// writeProduct creates or updates the full product record. Create is
// always followed by a forced full update: the API does not durably
// honor availability and collection assignment at creation time.
func (r *Reconciler) writeProduct(ctx context.Context, req *SyncRequest, collectionID, mode, productID string) (string, error) {
	payload := highlevel.ProductPayload{
		Name:             req.Name,
		Description:      req.Description,
		ProductType:      req.Type(),
		AvailableInStore: req.Available(),
		Medias:           req.MediaList(),
		CollectionIDs:    []string{collectionID},
		SeoTitle:         req.SeoTitle,
		SeoDescription:   req.SeoDescription,
	}

	// Only the tag-search fallback needs the key in the name; with a
	// mapping store the name stays exactly as the caller supplied it.
	if req.Upsert && req.DedupeKey() != "" && !r.store.Available() {
		payload.Name = dedupeTag(req.DedupeKey()) + " " + req.Name
	}

	if mode == ModeUpdate {
		if _, err := r.catalog.UpdateProduct(ctx, productID, payload); err != nil {
			return "", err
		}
		return productID, nil
	}

	created, err := r.catalog.CreateProduct(ctx, payload)
	if err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", &InvariantError{Msg: "product create response contained no identifier"}
	}

	if _, err := r.catalog.UpdateProduct(ctx, created.ID, payload); err != nil {
		return "", err
	}
	return created.ID, nil
}

// reconcilePrice keeps at most one live price per sku under upsert. All
// failures here are soft: the product already succeeded and is not
// rolled back.
func (r *Reconciler) reconcilePrice(ctx context.Context, req *SyncRequest, mode, productID, priorPriceID string) *PriceResult {
	payload := highlevel.PricePayload{
		Name:      req.Name,
		Amount:    req.Price.Amount,
		Currency:  defaultString(req.Price.Currency, "USD"),
		Type:      defaultString(req.Price.Type, "one_time"),
		SKU:       req.PriceSKU(),
		CompareAt: req.Price.CompareAt,
	}

	sku := req.PriceSKU()
	if req.Upsert && sku != "" {
		return r.replacePriceBySKU(ctx, productID, sku, payload)
	}

	if mode == ModeUpdate && priorPriceID != "" {
		price, err := r.catalog.UpdatePrice(ctx, productID, priorPriceID, payload)
		if err == nil {
			return &PriceResult{Action: PriceActionUpdate, PriceID: price.ID}
		}
		slog.WarnContext(ctx, "price update failed, creating replacement",
			"productId", productID, "priceId", priorPriceID, "error", err)
		created, createErr := r.catalog.CreatePrice(ctx, productID, payload)
		if createErr != nil {
			return &PriceResult{Action: PriceActionCreateFallback, Error: createErr.Error()}
		}
		// Duplicate risk accepted and reported, not hidden.
		return &PriceResult{Action: PriceActionCreateFallback, PriceID: created.ID}
	}

	created, err := r.catalog.CreatePrice(ctx, productID, payload)
	if err != nil {
		return &PriceResult{Action: PriceActionCreate, Error: err.Error()}
	}
	return &PriceResult{Action: PriceActionCreate, PriceID: created.ID}
}

// replacePriceBySKU deletes every price carrying the sku, then creates
// one fresh price. Delete-then-create because the price update endpoint
// is not supported on all tenants.
func (r *Reconciler) replacePriceBySKU(ctx context.Context, productID, sku string, payload highlevel.PricePayload) *PriceResult {
	result := &PriceResult{Action: PriceActionReplace}

	prices, err := r.catalog.ListPrices(ctx, productID)
	if err != nil {
		result.Error = fmt.Sprintf("list prices: %v", err)
		return result
	}

	stale := lo.Filter(prices, func(p highlevel.Price, _ int) bool {
		return strings.EqualFold(p.SKU, sku)
	})
	for _, p := range stale {
		if err := r.catalog.DeletePrice(ctx, productID, p.ID); err != nil {
			// Collected, not fatal; the create below still runs.
			slog.WarnContext(ctx, "stale price delete failed",
				"productId", productID, "priceId", p.ID, "error", err)
			continue
		}
		result.DeletedIDs = append(result.DeletedIDs, p.ID)
	}

	created, err := r.catalog.CreatePrice(ctx, productID, payload)
	if err != nil {
		result.Error = fmt.Sprintf("create price: %v", err)
		return result
	}
	result.PriceID = created.ID
	return result
}

func (r *Reconciler) persistMapping(ctx context.Context, req *SyncRequest, productID string, price *PriceResult) *MappingResult {
	key := mapping.Key(r.locationID, req.DedupeKey())
	m := mapping.Mapping{ProductID: productID}
	if price != nil {
		m.PriceID = price.PriceID
	}

	if err := r.store.Set(ctx, key, m); err != nil {
		slog.WarnContext(ctx, "mapping persist failed", "key", key, "error", err)
		return &MappingResult{Key: key, Error: err.Error()}
	}
	return &MappingResult{Key: key, Persisted: true}
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
