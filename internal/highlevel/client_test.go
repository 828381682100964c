package highlevel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopsync/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.HighLevelConfig{
		APIToken:   "token-123",
		LocationID: "loc_1",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, server
}

func TestNewClient_RequiresTokenAndLocation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(config.HighLevelConfig{LocationID: "loc_1"}); err == nil {
		t.Fatal("expected error for missing token")
	}
	if _, err := NewClient(config.HighLevelConfig{APIToken: "tok"}); err == nil {
		t.Fatal("expected error for missing location")
	}
}

func TestListCollections_SetsAuthAndCorrelationParams(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		_, _ = w.Write([]byte(`{"collections":[{"_id":"col_1","name":"Gadgets"}]}`))
	})

	cols, err := client.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("list collections: %v", err)
	}
	if len(cols) != 1 || cols[0].ID != "col_1" || cols[0].Name != "Gadgets" {
		t.Fatalf("unexpected collections: %+v", cols)
	}

	if capturedReq == nil {
		t.Fatal("expected request to be captured")
	}
	if capturedReq.URL.Path != "/products/collections" {
		t.Fatalf("unexpected path: %s", capturedReq.URL.Path)
	}
	query := capturedReq.URL.Query()
	if got := query.Get("altId"); got != "loc_1" {
		t.Fatalf("unexpected altId: %q", got)
	}
	if got := query.Get("altType"); got != "location" {
		t.Fatalf("unexpected altType: %q", got)
	}
	if got := query.Get("locationId"); got != "loc_1" {
		t.Fatalf("unexpected locationId: %q", got)
	}
	if got := capturedReq.Header.Get("Authorization"); got != "Bearer token-123" {
		t.Fatalf("unexpected Authorization header: %q", got)
	}
	if got := capturedReq.Header.Get("Version"); got != DefaultAPIVersion {
		t.Fatalf("unexpected Version header: %q", got)
	}
}

func TestCreateProduct_InjectsLocationAndResolvesID(t *testing.T) {
	t.Parallel()

	var capturedBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&capturedBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"product":{"_id":"prod_9","name":"Widget"}}`))
	})

	product, err := client.CreateProduct(context.Background(), ProductPayload{
		Name:          "Widget",
		ProductType:   "PHYSICAL",
		CollectionIDs: []string{"col_1"},
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if product.ID != "prod_9" {
		t.Fatalf("unexpected product id: %q", product.ID)
	}
	if capturedBody["locationId"] != "loc_1" {
		t.Fatalf("payload missing locationId: %v", capturedBody)
	}
}

func TestDeletePrice_PathAndMethod(t *testing.T) {
	t.Parallel()

	var capturedReq *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeletePrice(context.Background(), "prod_1", "price_1"); err != nil {
		t.Fatalf("delete price: %v", err)
	}
	if capturedReq.Method != http.MethodDelete {
		t.Fatalf("unexpected method: %s", capturedReq.Method)
	}
	if capturedReq.URL.Path != "/products/prod_1/price/price_1" {
		t.Fatalf("unexpected path: %s", capturedReq.URL.Path)
	}
}

func TestDo_Non2xxBecomesStatusError(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"name is required"}`))
	})

	_, err := client.GetProduct(context.Background(), "prod_1")
	if err == nil {
		t.Fatal("expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", statusErr.StatusCode)
	}
	if statusErr.Body != `{"message":"name is required"}` {
		t.Fatalf("unexpected body: %q", statusErr.Body)
	}
	if statusErr.URL == "" || statusErr.URL[:len(server.URL)] != server.URL {
		t.Fatalf("unexpected url: %q", statusErr.URL)
	}
}

func TestSearchProducts_BareArrayEnvelope(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "[DBE:w-100]" {
			t.Errorf("unexpected search term: %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":"prod_1","name":"[DBE:w-100] Widget"}]`))
	})

	products, err := client.SearchProducts(context.Background(), "[DBE:w-100]")
	if err != nil {
		t.Fatalf("search products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "prod_1" {
		t.Fatalf("unexpected products: %+v", products)
	}
}
