package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown is the display marker for an absent optional value.
const Unknown = "N/A"

// DisplayRow is one fully rendered comparison-table row. Every field is a
// display string; optional values absent from the product render as the
// Unknown marker instead of an empty cell.
type DisplayRow struct {
	ID             string `json:"id"`
	ProductName    string `json:"product_name"`
	Manufacturer   string `json:"manufacturer"`
	LayerTypes     string `json:"layer_types"`
	Price          string `json:"price"`
	PackageSize    string `json:"package_size"`
	VOCgPerL       string `json:"voc_g_per_L"`
	CoverageM2PerL string `json:"coverage_m2_per_L"`
	CureTimeHours  string `json:"cure_time_hours"`
}

// Rows flattens the catalogue into directly renderable rows. Pure and
// total: it never filters, sorts, or validates.
func Rows(products []CandidateProduct) []DisplayRow {
	rows := make([]DisplayRow, 0, len(products))
	for _, p := range products {
		name := p.ProductName
		if name == "" {
			name = "Unnamed Product"
		}
		rows = append(rows, DisplayRow{
			ID:             p.ID,
			ProductName:    name,
			Manufacturer:   textOrUnknown(p.Manufacturer),
			LayerTypes:     joinOrUnknown(p.LayerType),
			Price:          numOrUnknown(p.PricePerUnit, " $"),
			PackageSize:    numOrUnknown(p.PackagingSizeLOrKg, " L/kg"),
			VOCgPerL:       numOrUnknown(p.Specs.VOCgPerL, ""),
			CoverageM2PerL: numOrUnknown(p.Specs.CoverageM2PerL, ""),
			CureTimeHours:  numOrUnknown(p.Specs.CureTimeHoursAt23C, ""),
		})
	}
	return rows
}

func textOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unknown
	}
	return s
}

func joinOrUnknown(items []string) string {
	if len(items) == 0 {
		return Unknown
	}
	return strings.Join(items, ", ")
}

func numOrUnknown(v *float64, unit string) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprintf("%s%s", strconv.FormatFloat(*v, 'f', -1, 64), unit)
}
