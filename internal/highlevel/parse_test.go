package highlevel

import (
	"encoding/json"
	"testing"
)

func TestNormalizeList_Envelopes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want int
	}{
		{"named wrapper", `{"products":[{"id":"a"},{"id":"b"}]}`, 2},
		{"data wrapper", `{"data":[{"id":"a"}]}`, 1},
		{"items wrapper", `{"items":[{"id":"a"}]}`, 1},
		{"bare array", `[{"id":"a"},{"id":"b"},{"id":"c"}]`, 3},
		{"empty body", ``, 0},
		{"unknown envelope", `{"total":3}`, 0},
		{"not json", `oops`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := normalizeList([]byte(tc.data), "products")
			if len(items) != tc.want {
				t.Fatalf("got %d items, want %d", len(items), tc.want)
			}
		})
	}
}

func TestNormalizeObject_Unwraps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want string
	}{
		{"bare", `{"id":"a","name":"x"}`, "a"},
		{"named wrapper", `{"product":{"id":"a"}}`, "a"},
		{"data wrapper", `{"data":{"id":"a"}}`, "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var obj struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(normalizeObject([]byte(tc.data), "product"), &obj); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if obj.ID != tc.want {
				t.Fatalf("got id %q, want %q", obj.ID, tc.want)
			}
		})
	}
}

func TestExtractID_CandidateOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want string
	}{
		{"mongo id", `{"_id":"m1"}`, "m1"},
		{"plain id", `{"id":"p1"}`, "p1"},
		{"mongo wins over plain", `{"_id":"m1","id":"p1"}`, "m1"},
		{"nested product", `{"product":{"_id":"n1"}}`, "n1"},
		{"nested data", `{"data":{"id":"d1"}}`, "d1"},
		{"productId key", `{"productId":"pr1"}`, "pr1"},
		{"nothing", `{"name":"widget"}`, ""},
		{"non-string id", `{"id":42}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractID([]byte(tc.data)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProductUnmarshal_FieldNameVariants(t *testing.T) {
	t.Parallel()

	var p Product
	if err := json.Unmarshal([]byte(`{"_id":"x","name":"Widget","media":[{"url":"http://img"}]}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "x" {
		t.Fatalf("unexpected id: %q", p.ID)
	}
	if len(p.Medias) != 1 || p.Medias[0].URL != "http://img" {
		t.Fatalf("media alias not honored: %+v", p.Medias)
	}
}
