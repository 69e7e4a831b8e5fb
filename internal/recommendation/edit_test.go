package recommendation

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func product(name string) RecommendedProduct {
	return RecommendedProduct{
		Manufacturer:      "Acme Coatings",
		ProductName:       name,
		PricePerUnit:      100,
		PackagingSize:     10,
		StockAvailability: "in stock",
	}
}

func twoLayerRec() *SystemRecommendation {
	return &SystemRecommendation{
		SystemID: "sys-1",
		Layers: []SystemLayer{
			{
				Role:               "primer",
				RecommendedProduct: product("Prime A"),
				ReasonForSelection: "lowest VOC primer",
				Alternatives:       []RecommendedProduct{product("Prime B"), product("Prime C")},
			},
			{
				Role:               "top",
				RecommendedProduct: product("Top A"),
				ReasonForSelection: "UV stable",
				Alternatives:       []RecommendedProduct{product("Top B")},
			},
		},
	}
}

func layerNames(layer SystemLayer) []string {
	names := []string{layer.RecommendedProduct.ProductName}
	for _, alt := range layer.Alternatives {
		names = append(names, alt.ProductName)
	}
	sort.Strings(names)
	return names
}

func TestSwapProduct_Basic(t *testing.T) {
	rec := twoLayerRec()
	alt := rec.Layers[0].Alternatives[0] // Prime B

	if err := SwapProduct(rec, 0, alt); err != nil {
		t.Fatalf("SwapProduct error: %v", err)
	}

	layer := rec.Layers[0]
	if layer.RecommendedProduct.ProductName != "Prime B" {
		t.Fatalf("recommended product = %q, want Prime B", layer.RecommendedProduct.ProductName)
	}
	for _, a := range layer.Alternatives {
		if a.ProductName == "Prime B" {
			t.Fatalf("chosen product still present in alternatives")
		}
	}
	found := false
	for _, a := range layer.Alternatives {
		if a.ProductName == "Prime A" {
			found = true
		}
	}
	if !found {
		t.Fatalf("old product missing from alternatives: %+v", layer.Alternatives)
	}
	if !strings.HasPrefix(layer.ReasonForSelection, "User selected alternative. Original reason: ") {
		t.Fatalf("audit prefix missing: %q", layer.ReasonForSelection)
	}
	if !strings.HasSuffix(layer.ReasonForSelection, "lowest VOC primer") {
		t.Fatalf("previous reason not preserved: %q", layer.ReasonForSelection)
	}
}

func TestSwapProduct_PreservesMultiset(t *testing.T) {
	rec := twoLayerRec()
	before := layerNames(rec.Layers[0])

	if err := SwapProduct(rec, 0, rec.Layers[0].Alternatives[1]); err != nil {
		t.Fatalf("SwapProduct error: %v", err)
	}

	after := layerNames(rec.Layers[0])
	if len(before) != len(after) {
		t.Fatalf("multiset size changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("multiset changed: %v -> %v", before, after)
		}
	}
}

func TestSwapProduct_Involutive(t *testing.T) {
	rec := twoLayerRec()
	original := rec.Layers[0]
	origNames := layerNames(original)

	b := original.Alternatives[0]
	if err := SwapProduct(rec, 0, b); err != nil {
		t.Fatalf("first swap: %v", err)
	}
	a := RecommendedProduct{}
	for _, alt := range rec.Layers[0].Alternatives {
		if alt.ProductName == "Prime A" {
			a = alt
		}
	}
	if err := SwapProduct(rec, 0, a); err != nil {
		t.Fatalf("second swap: %v", err)
	}

	layer := rec.Layers[0]
	if layer.RecommendedProduct.ProductName != original.RecommendedProduct.ProductName {
		t.Fatalf("recommended product not restored: %q", layer.RecommendedProduct.ProductName)
	}
	names := layerNames(layer)
	for i := range origNames {
		if names[i] != origNames[i] {
			t.Fatalf("multiset not restored: %v vs %v", names, origNames)
		}
	}
	// Reason is append-only and intentionally does not round-trip.
	if !strings.Contains(layer.ReasonForSelection, original.ReasonForSelection) {
		t.Fatalf("audit trail lost original reason: %q", layer.ReasonForSelection)
	}
}

func TestSwapProduct_AuditTrailGrows(t *testing.T) {
	rec := twoLayerRec()
	prev := rec.Layers[0].ReasonForSelection
	for i := 0; i < 3; i++ {
		alt := rec.Layers[0].Alternatives[0]
		if err := SwapProduct(rec, 0, alt); err != nil {
			t.Fatalf("swap %d: %v", i, err)
		}
		cur := rec.Layers[0].ReasonForSelection
		if !strings.Contains(cur, prev) || len(cur) <= len(prev) {
			t.Fatalf("reason did not grow monotonically: %q -> %q", prev, cur)
		}
		prev = cur
	}
}

func TestSwapProduct_RemovesDuplicatesByPredicate(t *testing.T) {
	rec := twoLayerRec()
	// Force a duplicate that the invariant says should never exist.
	rec.Layers[0].Alternatives = append(rec.Layers[0].Alternatives, product("Prime B"))

	if err := SwapProduct(rec, 0, product("Prime B")); err != nil {
		t.Fatalf("SwapProduct error: %v", err)
	}
	for _, alt := range rec.Layers[0].Alternatives {
		if alt.ProductName == "Prime B" {
			t.Fatalf("duplicate survived the swap: %+v", rec.Layers[0].Alternatives)
		}
	}
}

func TestSwapProduct_OtherLayersUntouched(t *testing.T) {
	rec := twoLayerRec()
	other := rec.Layers[1]

	if err := SwapProduct(rec, 0, rec.Layers[0].Alternatives[0]); err != nil {
		t.Fatalf("SwapProduct error: %v", err)
	}
	got := rec.Layers[1]
	if got.RecommendedProduct.ProductName != other.RecommendedProduct.ProductName ||
		got.ReasonForSelection != other.ReasonForSelection ||
		len(got.Alternatives) != len(other.Alternatives) {
		t.Fatalf("unrelated layer changed: %+v", got)
	}
}

func TestSwapProduct_IndexOutOfRange(t *testing.T) {
	rec := twoLayerRec()
	if err := SwapProduct(rec, 2, product("X")); !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}
	if err := SwapProduct(rec, -1, product("X")); !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex for negative index, got %v", err)
	}
}

func TestReplaceLayer(t *testing.T) {
	rec := twoLayerRec()
	repl := SystemLayer{
		Role:               "primer",
		RecommendedProduct: product("Prime Z"),
		ReasonForSelection: "manually edited",
	}
	if err := ReplaceLayer(rec, 0, repl); err != nil {
		t.Fatalf("ReplaceLayer error: %v", err)
	}
	if rec.Layers[0].RecommendedProduct.ProductName != "Prime Z" {
		t.Fatalf("layer not replaced: %+v", rec.Layers[0])
	}
	if err := ReplaceLayer(rec, 5, repl); !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}
}
