package recommendation

import (
	"errors"
	"testing"
)

func TestApplyLayerEdits_TypedFields(t *testing.T) {
	rec := twoLayerRec()
	err := ApplyLayerEdits(rec, 0,
		EditTopLevelField{Field: FieldCompatibilityNotes, Value: "verified with TDS"},
		EditRecommendedProductField{Field: ProductTDSURL, Text: "https://example.com/tds.pdf"},
		EditRecommendedProductField{Field: ProductPricePerUnit, Number: 150},
		EditApplicationField{Field: AppNumberOfCoats, Number: 2},
		EditApplicationField{Field: AppEquipment, Text: "airless sprayer"},
	)
	if err != nil {
		t.Fatalf("ApplyLayerEdits error: %v", err)
	}
	layer := rec.Layers[0]
	if layer.CompatibilityNotes != "verified with TDS" {
		t.Fatalf("compatibility notes = %q", layer.CompatibilityNotes)
	}
	if layer.RecommendedProduct.TDSURL != "https://example.com/tds.pdf" {
		t.Fatalf("tds url = %q", layer.RecommendedProduct.TDSURL)
	}
	if layer.RecommendedProduct.PricePerUnit != 150 {
		t.Fatalf("price = %v", layer.RecommendedProduct.PricePerUnit)
	}
	if layer.ApplicationRecommendation.RecommendedNumberOfCoats != 2 {
		t.Fatalf("coats = %d", layer.ApplicationRecommendation.RecommendedNumberOfCoats)
	}
	if layer.ApplicationRecommendation.Equipment != "airless sprayer" {
		t.Fatalf("equipment = %q", layer.ApplicationRecommendation.Equipment)
	}
}

func TestApplyLayerEdits_FailedBatchLeavesLayerUntouched(t *testing.T) {
	rec := twoLayerRec()
	before := rec.Layers[0]

	err := ApplyLayerEdits(rec, 0,
		EditTopLevelField{Field: FieldRole, Value: "membrane"},
		EditApplicationField{Field: AppNumberOfCoats, Number: -1},
	)
	if !errors.Is(err, ErrEditValue) {
		t.Fatalf("expected ErrEditValue, got %v", err)
	}
	if rec.Layers[0].Role != before.Role {
		t.Fatalf("failed batch mutated the layer: role = %q", rec.Layers[0].Role)
	}
}

func TestApplyLayerEdits_RejectsBadValues(t *testing.T) {
	rec := twoLayerRec()
	cases := []LayerEdit{
		EditApplicationField{Field: AppNumberOfCoats, Number: 1.5},
		EditApplicationField{Field: AppFilmThickness, Number: -10},
		EditApplicationField{Field: AppDryingTime, Number: -1},
		EditRecommendedProductField{Field: ProductPricePerUnit, Number: -5},
		EditRecommendedProductField{Field: "no_such_field"},
		EditTopLevelField{Field: "no_such_field"},
		EditApplicationField{Field: "no_such_field"},
	}
	for i, edit := range cases {
		if err := ApplyLayerEdits(rec, 0, edit); !errors.Is(err, ErrEditValue) {
			t.Fatalf("case %d: expected ErrEditValue, got %v", i, err)
		}
	}
}

func TestApplyLayerEdits_IndexOutOfRange(t *testing.T) {
	rec := twoLayerRec()
	err := ApplyLayerEdits(rec, 7, EditTopLevelField{Field: FieldRole, Value: "x"})
	if !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}
}
