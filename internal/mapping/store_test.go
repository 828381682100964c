package mapping

import (
	"context"
	"errors"
	"testing"
)

func TestKey_LowercasesDedupeKey(t *testing.T) {
	t.Parallel()

	if got := Key("loc_1", "W-100"); got != "loc_1:w-100" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestMemoryStore_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "loc_1:w-100"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	want := Mapping{ProductID: "prod_1", PriceID: "price_1"}
	if err := store.Set(ctx, "loc_1:w-100", want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "loc_1:w-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !store.Available() {
		t.Fatal("memory store should report available")
	}
}

func TestFileStore_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	if _, err := store.Get(ctx, "loc_1:w-100"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	want := Mapping{ProductID: "prod_1", PriceID: "price_1"}
	if err := store.Set(ctx, "loc_1:w-100", want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "loc_1:w-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	// Overwrite keeps a single mapping per key.
	if err := store.Set(ctx, "loc_1:w-100", Mapping{ProductID: "prod_2"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, "loc_1:w-100")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got.ProductID != "prod_2" || got.PriceID != "" {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

func TestNoopStore_DegradesWithoutRaising(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NoopStore{}

	if store.Available() {
		t.Fatal("noop store must report unavailable")
	}
	if _, err := store.Get(ctx, "loc_1:w-100"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Set(ctx, "loc_1:w-100", Mapping{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
