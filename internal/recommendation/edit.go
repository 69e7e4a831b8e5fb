package recommendation

import (
	"errors"
	"fmt"
)

// ErrLayerIndex marks an edit that referenced a layer outside the current
// recommendation. Call sites derive indices from a snapshot of the same
// recommendation, so hitting this is a programmer error, not user input.
var ErrLayerIndex = errors.New("recommendation: layer index out of range")

// swapAuditPrefix is the one-way audit marker prepended on every swap.
// Repeated swaps nest it; the trail is append-only and never rewritten.
const swapAuditPrefix = "User selected alternative. Original reason: "

func checkIndex(rec *SystemRecommendation, index int) error {
	if index < 0 || index >= len(rec.Layers) {
		return fmt.Errorf("%w: %d of %d layers", ErrLayerIndex, index, len(rec.Layers))
	}
	return nil
}

// ReplaceLayer swaps layers[index] wholesale for the caller-supplied value.
// The caller owns the internal consistency of the replacement, alternatives
// included; no invariant recomputation happens here. This mirrors the
// direct-edit form, where the entire layer sub-record is saved in one step.
func ReplaceLayer(rec *SystemRecommendation, index int, layer SystemLayer) error {
	if err := checkIndex(rec, index); err != nil {
		return err
	}
	rec.Layers[index] = layer
	return nil
}

// SwapProduct promotes one of a layer's alternatives to the active
// recommended product and benches the previous selection.
//
// The alternatives list is purged of the chosen product by name (by
// predicate, not index, so a duplicate never survives), the old product is
// appended, and the selection reason gains the audit prefix. The product
// multiset {recommended} ∪ alternatives is conserved, the operation is its
// own inverse for a given product pair, and no other layer is touched.
func SwapProduct(rec *SystemRecommendation, index int, chosen RecommendedProduct) error {
	if err := checkIndex(rec, index); err != nil {
		return err
	}
	layer := &rec.Layers[index]
	old := layer.RecommendedProduct

	layer.RecommendedProduct = chosen

	kept := make([]RecommendedProduct, 0, len(layer.Alternatives))
	for _, alt := range layer.Alternatives {
		if alt.ProductName == chosen.ProductName {
			continue
		}
		kept = append(kept, alt)
	}
	layer.Alternatives = append(kept, old)

	layer.ReasonForSelection = swapAuditPrefix + layer.ReasonForSelection
	return nil
}
