package advisor

import (
	"bytes"
	"fmt"
	"strings"
)

// promptSpec defines the sections of an instruction prompt. The serialized
// project/catalogue payload is not rendered here; the client appends it
// under its own INPUT FIELDS heading.
type promptSpec struct {
	Role         string
	Instruction  string
	OutputSchema string
	Rules        []string
}

func (s promptSpec) render() string {
	var buf bytes.Buffer
	writeSection(&buf, "SYSTEM ROLE", s.Role)
	writeSection(&buf, "USER INSTRUCTION", s.Instruction)
	writeSection(&buf, "OUTPUT JSON SCHEMA (required)", s.OutputSchema)
	writeSection(&buf, "ADDITIONAL RULES", formatList(s.Rules))
	return strings.TrimSpace(buf.String()) + "\n"
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}

func formatList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// recommendationSchemaJSON is the field-for-field output contract the
// generator must satisfy. Kept as literal text so the prompt shows the
// model exactly the wire shape the validator will parse.
const recommendationSchemaJSON = `{
  "system_id": "string",
  "system_name": "string",
  "summary": "string",
  "project": { "system_name": "string", "area_m2": "number", "substrate": "string", "environment": "string", "traffic_type": "string", "performance_requirements": ["string"], "constraints": {} },
  "layers": [
    {
      "role": "string",
      "recommended_product": { "manufacturer": "string", "product_name": "string", "product_code": "string", "specs": {}, "price_per_unit": "number", "packaging_size": "number", "tds_url": "string", "sds_url": "string", "stock_availability": "string" },
      "reason_for_selection": "string",
      "alternatives": [ {} ],
      "compatibility_notes": "string",
      "application_recommendation": { "mixing_instructions": "string", "recommended_number_of_coats": "number", "recommended_film_thickness_micron": "number", "drying_time_between_coats_hours": "number", "equipment": "string" }
    }
  ],
  "compatibility_matrix": [ {"layer_a":"role", "layer_b":"role", "compatible":true|false, "notes":"string"} ],
  "estimated_consumption": { "per_product": [ {"product_name":"string", "units_needed":"number", "total_qty":"string"} ], "total_material_cost": "number", "currency": "string" },
  "performance_scores": { "durability": "0-100", "cost_efficiency": "0-100", "ease_of_application": "0-100", "environmental": "0-100" },
  "confidence_score": "0-100",
  "references": [ "list of used product names or TDS links" ],
  "export_formats_available": ["json","csv","pdf"]
}`

// recommendationPrompt is the fixed instruction block for system generation.
func recommendationPrompt() string {
	return promptSpec{
		Role: "You are an experienced materials engineer and product selection assistant for flooring, " +
			"waterproofing and thermal-insulation systems. Use construction best practice, product " +
			"compatibility, and practical application constraints.",
		Instruction: "Input will be provided with fields describing the project and a catalogue of candidate " +
			"products. Produce a single JSON object exactly matching the schema below. Do NOT include any " +
			"extra commentary, code fences, or explanation - output pure JSON only.",
		OutputSchema: recommendationSchemaJSON,
		Rules: []string{
			"Score products against the project's constraints (budget, VOC, temp_range).",
			"If no candidate product meets a hard constraint (e.g., max_voc), set \"confidence_score\" lower and explain which constraint fails inside \"summary\".",
			"Keep numbers consistent (units: m2, L, kg, micron, degrees C, g/L, hours).",
			"When calculating consumption, round to 2 decimal places.",
			"When product data is missing for an important spec, mark fields as null and reduce confidence_score accordingly.",
		},
	}.render()
}

// descriptionPrompt is the fixed instruction for the prose sibling call.
func descriptionPrompt() string {
	return promptSpec{
		Role: "You are a technical writer for construction-material datasheets.",
		Instruction: "Based on the following product data, write a concise, professional, and technical " +
			"product description suitable for a data sheet. Focus on the key features and typical " +
			"applications. Do not invent new properties. Respond with the description text only.",
	}.render()
}
