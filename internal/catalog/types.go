package catalog

// TempRange is an inclusive (min, max) pair in degrees Celsius,
// serialized as a two-element JSON array.
type TempRange [2]float64

func (r TempRange) Min() float64 { return r[0] }
func (r TempRange) Max() float64 { return r[1] }

// Valid reports whether min <= max. Only locally authored ranges are
// checked; generator output is never coerced through this.
func (r TempRange) Valid() bool { return r[0] <= r[1] }

// Constraints are the hard limits a project imposes on product selection.
// Optional numerics are pointers: nil means "no constraint", not zero.
type Constraints struct {
	BudgetPerM2      *float64  `json:"budget_per_m2,omitempty"`
	MaxVOCgPerL      *float64  `json:"max_voc_g_per_L,omitempty"`
	TempRangeC       TempRange `json:"temp_range_C"`
	CureTimeHoursMax *float64  `json:"cure_time_hours_max,omitempty"`
}

// ProjectDetails describes the job the advisor is selecting a system for.
// Immutable once embedded in an outbound request.
type ProjectDetails struct {
	SystemName              string      `json:"system_name"`
	AreaM2                  float64     `json:"area_m2"`
	Substrate               string      `json:"substrate"`
	Environment             string      `json:"environment"`
	TrafficType             string      `json:"traffic_type"`
	PerformanceRequirements []string    `json:"performance_requirements"`
	Constraints             Constraints `json:"constraints"`
}

// ProductSpecs carries the technical datasheet numbers of a candidate.
// Every field is individually optional; absence means "unknown", which is
// distinct from zero and must survive a marshal round trip.
type ProductSpecs struct {
	VOCgPerL           *float64   `json:"voc_g_per_L,omitempty"`
	CoverageM2PerL     *float64   `json:"coverage_m2_per_L,omitempty"`
	CureTimeHoursAt23C *float64   `json:"cure_time_hours_at_23C,omitempty"`
	TemperatureRangeC  *TempRange `json:"temperature_range_C,omitempty"`
}

// CandidateProduct is a locally authored catalogue entry. ID is an opaque
// local identifier assigned at creation; it is never reused and never sent
// to the reasoning service.
type CandidateProduct struct {
	ID                 string       `json:"id,omitempty"`
	Manufacturer       string       `json:"manufacturer"`
	ProductName        string       `json:"product_name"`
	ProductCode        string       `json:"product_code,omitempty"`
	LayerType          []string     `json:"layer_type"`
	Description        string       `json:"description,omitempty"`
	TDSURL             string       `json:"tds_url,omitempty"`
	SDSURL             string       `json:"sds_url,omitempty"`
	Specs              ProductSpecs `json:"specs"`
	PricePerUnit       *float64     `json:"price_per_unit,omitempty"`
	PackagingSizeLOrKg *float64     `json:"packaging_size_L_or_kg,omitempty"`
}

// StripID returns a copy of the product with the local id removed, the
// form every outbound payload uses.
func (p CandidateProduct) StripID() CandidateProduct {
	p.ID = ""
	return p
}
