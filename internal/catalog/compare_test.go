package catalog

import "testing"

func TestRows_RendersUnknownMarkers(t *testing.T) {
	rows := Rows([]CandidateProduct{{ID: "p1", ProductName: "Bare Product"}})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Manufacturer != Unknown || row.Price != Unknown || row.VOCgPerL != Unknown ||
		row.CoverageM2PerL != Unknown || row.CureTimeHours != Unknown || row.PackageSize != Unknown {
		t.Fatalf("missing unknown markers: %+v", row)
	}
	if row.LayerTypes != Unknown {
		t.Fatalf("layer types = %q, want %q", row.LayerTypes, Unknown)
	}
}

func TestRows_FormatsValues(t *testing.T) {
	rows := Rows([]CandidateProduct{
		{
			ID:           "p1",
			ProductName:  "FlexiSeal PU",
			Manufacturer: "FlexiCoat Systems",
			LayerType:    []string{"membrane", "base"},
			Specs: ProductSpecs{
				VOCgPerL:           f(80),
				CoverageM2PerL:     f(1),
				CureTimeHoursAt23C: f(24),
			},
			PricePerUnit:       f(350),
			PackagingSizeLOrKg: f(25),
		},
	})
	row := rows[0]
	if row.LayerTypes != "membrane, base" {
		t.Fatalf("layer types = %q", row.LayerTypes)
	}
	if row.Price != "350 $" {
		t.Fatalf("price = %q", row.Price)
	}
	if row.PackageSize != "25 L/kg" {
		t.Fatalf("package size = %q", row.PackageSize)
	}
	if row.VOCgPerL != "80" {
		t.Fatalf("voc = %q", row.VOCgPerL)
	}
}

func TestRows_UnnamedProduct(t *testing.T) {
	rows := Rows([]CandidateProduct{{ID: "p1"}})
	if rows[0].ProductName != "Unnamed Product" {
		t.Fatalf("product name = %q", rows[0].ProductName)
	}
}

func TestRows_EmptyCatalogue(t *testing.T) {
	if rows := Rows(nil); len(rows) != 0 {
		t.Fatalf("expected empty rows, got %+v", rows)
	}
}

func TestAddLayerType(t *testing.T) {
	types := DefaultLayerTypes()
	n := len(types)

	types = AddLayerType(types, "sealer")
	if len(types) != n+1 || types[n] != "sealer" {
		t.Fatalf("sealer not appended: %v", types)
	}
	types = AddLayerType(types, "sealer")
	if len(types) != n+1 {
		t.Fatalf("duplicate appended: %v", types)
	}
	types = AddLayerType(types, "")
	if len(types) != n+1 {
		t.Fatalf("empty appended: %v", types)
	}
}

func TestDefaultProducts_FreshIDs(t *testing.T) {
	a := DefaultProducts()
	b := DefaultProducts()
	if a[0].ID == b[0].ID {
		t.Fatalf("seed ids reused across calls")
	}
	for _, p := range a {
		if p.ID == "" {
			t.Fatalf("seed product without id: %+v", p)
		}
	}
}
