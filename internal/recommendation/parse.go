package recommendation

import (
	"fmt"
	"math"
	"strings"

	"stratify/internal/util/jsonutil"
)

// ValidationKind classifies why generator output was rejected.
type ValidationKind string

const (
	// KindMalformedJSON means the stripped text did not parse as JSON.
	KindMalformedJSON ValidationKind = "malformed_json"
	// KindMissingField means a required structural field was absent or empty.
	KindMissingField ValidationKind = "missing_field"
)

// ValidationError reports a precise structural failure. It never wraps a
// panic: missing optional fields are filled with zero values, not errors.
type ValidationError struct {
	Kind    ValidationKind
	Detail  string
	Snippet string
}

func (e *ValidationError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("recommendation: %s: %s (got: %s)", e.Kind, e.Detail, e.Snippet)
	}
	return fmt.Sprintf("recommendation: %s: %s", e.Kind, e.Detail)
}

const snippetLimit = 160

func snippet(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) > snippetLimit {
		s = s[:snippetLimit] + "..."
	}
	return s
}

// Parse coerces raw generator text into a SystemRecommendation.
//
// The text may arrive wrapped in markdown code fences; those are stripped
// first. A parse failure yields KindMalformedJSON with a snippet of the
// offending text. Structural checks require at least one layer, a non-empty
// role and recommended product per layer; score fields are clamped into
// [0,100] and the total cost is rounded to two decimals. Parse is a pure
// transform and never cross-validates against the local catalogue.
func Parse(raw string) (*SystemRecommendation, error) {
	body := jsonutil.StripFences(raw)
	var rec SystemRecommendation
	if err := jsonutil.UnmarshalFlex([]byte(body), &rec); err != nil {
		return nil, &ValidationError{
			Kind:    KindMalformedJSON,
			Detail:  err.Error(),
			Snippet: snippet(body),
		}
	}
	if err := checkShape(&rec); err != nil {
		return nil, err
	}
	normalize(&rec)
	return &rec, nil
}

func checkShape(rec *SystemRecommendation) error {
	if len(rec.Layers) == 0 {
		return &ValidationError{Kind: KindMissingField, Detail: "layers is empty"}
	}
	for i, layer := range rec.Layers {
		if strings.TrimSpace(layer.Role) == "" {
			return &ValidationError{
				Kind:   KindMissingField,
				Detail: fmt.Sprintf("layers[%d].role is empty", i),
			}
		}
		if strings.TrimSpace(layer.RecommendedProduct.ProductName) == "" {
			return &ValidationError{
				Kind:   KindMissingField,
				Detail: fmt.Sprintf("layers[%d].recommended_product.product_name is empty", i),
			}
		}
	}
	return nil
}

// normalize clamps out-of-range scores and rounds money; generator output
// is flagged nowhere else, a missing optional simply stays at its zero value.
func normalize(rec *SystemRecommendation) {
	rec.PerformanceScores.Durability = clampScore(rec.PerformanceScores.Durability)
	rec.PerformanceScores.CostEfficiency = clampScore(rec.PerformanceScores.CostEfficiency)
	rec.PerformanceScores.EaseOfApplication = clampScore(rec.PerformanceScores.EaseOfApplication)
	rec.PerformanceScores.Environmental = clampScore(rec.PerformanceScores.Environmental)
	rec.ConfidenceScore = clampScore(rec.ConfidenceScore)
	rec.EstimatedConsumption.TotalMaterialCost = round2(rec.EstimatedConsumption.TotalMaterialCost)
	for i := range rec.EstimatedConsumption.PerProduct {
		rec.EstimatedConsumption.PerProduct[i].UnitsNeeded = round2(rec.EstimatedConsumption.PerProduct[i].UnitsNeeded)
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
