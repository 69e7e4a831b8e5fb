// Package recommendation defines the multi-layer system recommendation
// schema the reasoning service must populate, the validator that coerces
// untrusted generator text into it, and the edit operations that mutate a
// validated recommendation without breaking its list invariants.
package recommendation

import "stratify/internal/catalog"

// RecommendedProduct is a generator-selected product attached to a layer.
// It is addressed by product_name, never by a local catalogue id: it
// originates outside the catalogue and may not correspond 1:1 to an entry.
type RecommendedProduct struct {
	Manufacturer      string         `json:"manufacturer"`
	ProductName       string         `json:"product_name"`
	ProductCode       string         `json:"product_code,omitempty"`
	Specs             map[string]any `json:"specs,omitempty"`
	PricePerUnit      float64        `json:"price_per_unit"`
	PackagingSize     float64        `json:"packaging_size"`
	TDSURL            string         `json:"tds_url,omitempty"`
	SDSURL            string         `json:"sds_url,omitempty"`
	StockAvailability string         `json:"stock_availability"`
}

// ApplicationRecommendation carries the per-layer application instructions.
type ApplicationRecommendation struct {
	MixingInstructions             string  `json:"mixing_instructions"`
	RecommendedNumberOfCoats       int     `json:"recommended_number_of_coats"`
	RecommendedFilmThicknessMicron float64 `json:"recommended_film_thickness_micron"`
	DryingTimeBetweenCoatsHours    float64 `json:"drying_time_between_coats_hours"`
	Equipment                      string  `json:"equipment"`
}

// SystemLayer is one coat in the recommended build-up.
//
// Invariant: no element of Alternatives shares a product_name with
// RecommendedProduct. ReasonForSelection is an append-only audit trail;
// edits prefix, never rewrite.
type SystemLayer struct {
	Role                      string                    `json:"role"`
	RecommendedProduct        RecommendedProduct        `json:"recommended_product"`
	ReasonForSelection        string                    `json:"reason_for_selection"`
	Alternatives              []RecommendedProduct      `json:"alternatives"`
	CompatibilityNotes        string                    `json:"compatibility_notes"`
	ApplicationRecommendation ApplicationRecommendation `json:"application_recommendation"`
}

// CompatibilityEntry is one cell of the layer-to-layer compatibility matrix.
type CompatibilityEntry struct {
	LayerA     string `json:"layer_a"`
	LayerB     string `json:"layer_b"`
	Compatible bool   `json:"compatible"`
	Notes      string `json:"notes"`
}

// ProductConsumption is the per-product material estimate.
type ProductConsumption struct {
	ProductName string  `json:"product_name"`
	UnitsNeeded float64 `json:"units_needed"`
	TotalQty    string  `json:"total_qty"`
}

// ConsumptionEstimate aggregates material need and cost for the whole system.
type ConsumptionEstimate struct {
	PerProduct        []ProductConsumption `json:"per_product"`
	TotalMaterialCost float64              `json:"total_material_cost"`
	Currency          string               `json:"currency"`
}

// PerformanceScores are the generator's 0-100 self-assessments.
type PerformanceScores struct {
	Durability        int `json:"durability"`
	CostEfficiency    int `json:"cost_efficiency"`
	EaseOfApplication int `json:"ease_of_application"`
	Environmental     int `json:"environmental"`
}

// SystemRecommendation is the canonical recommendation document. It is
// created wholesale from a validated generator response, mutated only
// through the edit operations in this package, replaced wholesale by the
// next successful generation, and discarded on reset.
type SystemRecommendation struct {
	SystemID               string                 `json:"system_id"`
	SystemName             string                 `json:"system_name"`
	Summary                string                 `json:"summary"`
	Project                catalog.ProjectDetails `json:"project"`
	Layers                 []SystemLayer          `json:"layers"`
	CompatibilityMatrix    []CompatibilityEntry   `json:"compatibility_matrix"`
	EstimatedConsumption   ConsumptionEstimate    `json:"estimated_consumption"`
	PerformanceScores      PerformanceScores      `json:"performance_scores"`
	ConfidenceScore        int                    `json:"confidence_score"`
	References             []string               `json:"references"`
	ExportFormatsAvailable []string               `json:"export_formats_available,omitempty"`
}
