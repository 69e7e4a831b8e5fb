package recommendation

import (
	"errors"
	"fmt"
	"math"
)

// Each editable layer field is a member of a tagged union with a typed
// payload, dispatched by switch. There is no dynamic path lookup: a field
// that is not enumerated here cannot be edited.

// ErrEditValue marks an edit payload that violates a field's range.
var ErrEditValue = errors.New("recommendation: invalid edit value")

// LayerEdit is one field-level edit applied to a single layer.
type LayerEdit interface {
	apply(*SystemLayer) error
}

// TopLevelField enumerates the editable free-form fields directly on a layer.
type TopLevelField string

const (
	FieldRole               TopLevelField = "role"
	FieldReasonForSelection TopLevelField = "reason_for_selection"
	FieldCompatibilityNotes TopLevelField = "compatibility_notes"
)

// EditTopLevelField replaces a layer-level text field.
type EditTopLevelField struct {
	Field TopLevelField
	Value string
}

func (e EditTopLevelField) apply(layer *SystemLayer) error {
	switch e.Field {
	case FieldRole:
		layer.Role = e.Value
	case FieldReasonForSelection:
		layer.ReasonForSelection = e.Value
	case FieldCompatibilityNotes:
		layer.CompatibilityNotes = e.Value
	default:
		return fmt.Errorf("%w: unknown layer field %q", ErrEditValue, e.Field)
	}
	return nil
}

// ProductField enumerates the editable fields of the recommended product.
type ProductField string

const (
	ProductManufacturer      ProductField = "manufacturer"
	ProductName              ProductField = "product_name"
	ProductCode              ProductField = "product_code"
	ProductTDSURL            ProductField = "tds_url"
	ProductSDSURL            ProductField = "sds_url"
	ProductStockAvailability ProductField = "stock_availability"
	ProductPricePerUnit      ProductField = "price_per_unit"
	ProductPackagingSize     ProductField = "packaging_size"
)

// EditRecommendedProductField edits one field of the active product.
// Text carries string fields, Number the numeric ones.
type EditRecommendedProductField struct {
	Field  ProductField
	Text   string
	Number float64
}

func (e EditRecommendedProductField) apply(layer *SystemLayer) error {
	p := &layer.RecommendedProduct
	switch e.Field {
	case ProductManufacturer:
		p.Manufacturer = e.Text
	case ProductName:
		p.ProductName = e.Text
	case ProductCode:
		p.ProductCode = e.Text
	case ProductTDSURL:
		p.TDSURL = e.Text
	case ProductSDSURL:
		p.SDSURL = e.Text
	case ProductStockAvailability:
		p.StockAvailability = e.Text
	case ProductPricePerUnit:
		if e.Number < 0 {
			return fmt.Errorf("%w: negative price_per_unit", ErrEditValue)
		}
		p.PricePerUnit = e.Number
	case ProductPackagingSize:
		if e.Number < 0 {
			return fmt.Errorf("%w: negative packaging_size", ErrEditValue)
		}
		p.PackagingSize = e.Number
	default:
		return fmt.Errorf("%w: unknown product field %q", ErrEditValue, e.Field)
	}
	return nil
}

// ApplicationField enumerates the editable application-recommendation fields.
type ApplicationField string

const (
	AppMixingInstructions ApplicationField = "mixing_instructions"
	AppNumberOfCoats      ApplicationField = "recommended_number_of_coats"
	AppFilmThickness      ApplicationField = "recommended_film_thickness_micron"
	AppDryingTime         ApplicationField = "drying_time_between_coats_hours"
	AppEquipment          ApplicationField = "equipment"
)

// EditApplicationField edits one application-recommendation field.
type EditApplicationField struct {
	Field  ApplicationField
	Text   string
	Number float64
}

func (e EditApplicationField) apply(layer *SystemLayer) error {
	a := &layer.ApplicationRecommendation
	switch e.Field {
	case AppMixingInstructions:
		a.MixingInstructions = e.Text
	case AppEquipment:
		a.Equipment = e.Text
	case AppNumberOfCoats:
		if e.Number < 0 || e.Number != math.Trunc(e.Number) {
			return fmt.Errorf("%w: recommended_number_of_coats must be an integer >= 0", ErrEditValue)
		}
		a.RecommendedNumberOfCoats = int(e.Number)
	case AppFilmThickness:
		if e.Number < 0 {
			return fmt.Errorf("%w: negative recommended_film_thickness_micron", ErrEditValue)
		}
		a.RecommendedFilmThicknessMicron = e.Number
	case AppDryingTime:
		if e.Number < 0 {
			return fmt.Errorf("%w: negative drying_time_between_coats_hours", ErrEditValue)
		}
		a.DryingTimeBetweenCoatsHours = e.Number
	default:
		return fmt.Errorf("%w: unknown application field %q", ErrEditValue, e.Field)
	}
	return nil
}

// ApplyLayerEdits applies the edits in order to layers[index]. The layer is
// only written back if every edit succeeds, so a failed batch leaves the
// recommendation untouched.
func ApplyLayerEdits(rec *SystemRecommendation, index int, edits ...LayerEdit) error {
	if err := checkIndex(rec, index); err != nil {
		return err
	}
	layer := rec.Layers[index]
	layer.Alternatives = append([]RecommendedProduct(nil), layer.Alternatives...)
	for _, edit := range edits {
		if err := edit.apply(&layer); err != nil {
			return err
		}
	}
	rec.Layers[index] = layer
	return nil
}
