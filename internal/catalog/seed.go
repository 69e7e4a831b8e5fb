package catalog

import "github.com/google/uuid"

// DefaultLayerTypes is the starting layer-role vocabulary. Users can extend
// it at runtime; see AddLayerType.
func DefaultLayerTypes() []string {
	return []string{"primer", "base", "top", "membrane", "adhesive", "insulation", "optional"}
}

// AddLayerType appends a new role tag unless it is empty or already present.
func AddLayerType(types []string, newType string) []string {
	if newType == "" {
		return types
	}
	for _, t := range types {
		if t == newType {
			return types
		}
	}
	return append(types, newType)
}

func f(v float64) *float64 { return &v }

// DefaultProject is the seed project descriptor the session starts from and
// returns to on reset.
func DefaultProject() ProjectDetails {
	return ProjectDetails{
		SystemName:              "Waterproof Balcony Flooring",
		AreaM2:                  50,
		Substrate:               "Concrete",
		Environment:             "Outdoor, UV-exposed, Pedestrian Traffic",
		TrafficType:             "Pedestrian",
		PerformanceRequirements: []string{"Waterproof", "Flexible", "UV Stable", "Crack-bridging"},
		Constraints: Constraints{
			BudgetPerM2:      f(80),
			MaxVOCgPerL:      f(100),
			TempRangeC:       TempRange{-10, 40},
			CureTimeHoursMax: f(48),
		},
	}
}

// DefaultProducts is the seed catalogue. Fresh ids are assigned on every
// call so a reset never resurrects ids handed out earlier.
func DefaultProducts() []CandidateProduct {
	return []CandidateProduct{
		{
			ID:           uuid.NewString(),
			Manufacturer: "AquaProof Inc.",
			ProductName:  "AquaPrime 100",
			ProductCode:  "AP-100",
			LayerType:    []string{"primer"},
			Description:  "A two-component, solvent-free epoxy primer for concrete substrates.",
			Specs: ProductSpecs{
				VOCgPerL:           f(50),
				CoverageM2PerL:     f(8),
				CureTimeHoursAt23C: f(4),
				TemperatureRangeC:  &TempRange{-20, 80},
			},
			PricePerUnit:       f(120),
			PackagingSizeLOrKg: f(5),
		},
		{
			ID:           uuid.NewString(),
			Manufacturer: "FlexiCoat Systems",
			ProductName:  "FlexiSeal PU",
			ProductCode:  "FC-PU25",
			LayerType:    []string{"membrane", "base"},
			Description:  "A liquid-applied, polyurethane-based waterproofing membrane with excellent crack-bridging capabilities.",
			Specs: ProductSpecs{
				VOCgPerL:           f(80),
				CoverageM2PerL:     f(1),
				CureTimeHoursAt23C: f(24),
				TemperatureRangeC:  &TempRange{-30, 90},
			},
			PricePerUnit:       f(350),
			PackagingSizeLOrKg: f(25),
		},
		{
			ID:           uuid.NewString(),
			Manufacturer: "FlexiCoat Systems",
			ProductName:  "TopGuard UV+",
			ProductCode:  "FC-TG-UV",
			LayerType:    []string{"top"},
			Description:  "A UV-stable, aliphatic polyurethane top coat for protecting waterproofing membranes.",
			Specs: ProductSpecs{
				VOCgPerL:           f(95),
				CoverageM2PerL:     f(6),
				CureTimeHoursAt23C: f(12),
				TemperatureRangeC:  &TempRange{-30, 90},
			},
			PricePerUnit:       f(250),
			PackagingSizeLOrKg: f(10),
		},
		{
			ID:           uuid.NewString(),
			Manufacturer: "StoneHard Co.",
			ProductName:  "EpoxyShield 5000",
			ProductCode:  "SH-5000",
			LayerType:    []string{"base", "top"},
			Description:  "A high-build, solvented epoxy coating for heavy-duty industrial floors. High VOC.",
			Specs: ProductSpecs{
				VOCgPerL:           f(250),
				CoverageM2PerL:     f(4),
				CureTimeHoursAt23C: f(72),
				TemperatureRangeC:  &TempRange{5, 50},
			},
			PricePerUnit:       f(400),
			PackagingSizeLOrKg: f(20),
		},
	}
}
