package recommendation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalBody = `{
  "system_id": "x",
  "system_name": "Test System",
  "summary": "ok",
  "layers": [
    {
      "role": "primer",
      "recommended_product": {"manufacturer": "Acme", "product_name": "Prime A", "price_per_unit": 10, "packaging_size": 5, "stock_availability": "in stock"},
      "reason_for_selection": "cheap",
      "alternatives": [],
      "compatibility_notes": "",
      "application_recommendation": {"mixing_instructions": "", "recommended_number_of_coats": 1, "recommended_film_thickness_micron": 100, "drying_time_between_coats_hours": 4, "equipment": "roller"}
    }
  ],
  "compatibility_matrix": [],
  "estimated_consumption": {"per_product": [], "total_material_cost": 123.456, "currency": "USD"},
  "performance_scores": {"durability": 90, "cost_efficiency": 80, "ease_of_application": 70, "environmental": 60},
  "confidence_score": 85,
  "references": []
}`

func TestParse_PlainJSON(t *testing.T) {
	rec, err := Parse(minimalBody)
	require.NoError(t, err)
	assert.Equal(t, "x", rec.SystemID)
	assert.Equal(t, "primer", rec.Layers[0].Role)
	assert.Equal(t, 85, rec.ConfidenceScore)
}

func TestParse_StripsCodeFences(t *testing.T) {
	for _, wrapped := range []string{
		"```json\n" + minimalBody + "\n```",
		"```\n" + minimalBody + "\n```",
		"\n  ```json\n" + minimalBody + "\n```  \n",
	} {
		rec, err := Parse(wrapped)
		require.NoError(t, err, "input: %.40q", wrapped)
		assert.Equal(t, "x", rec.SystemID)
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, err := Parse("sorry, I cannot help")
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindMalformedJSON, verr.Kind)
	assert.Contains(t, verr.Snippet, "sorry")
}

func TestParse_RequiresLayers(t *testing.T) {
	for _, body := range []string{
		`{"system_id":"x","layers":[]}`,
		`{"system_id":"x"}`,
		`{"system_id":"x","layers":[{"role":"","recommended_product":{"product_name":"A"}}]}`,
		`{"system_id":"x","layers":[{"role":"primer","recommended_product":{"product_name":""}}]}`,
	} {
		_, err := Parse(body)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "body: %s", body)
		assert.Equal(t, KindMissingField, verr.Kind, "body: %s", body)
	}
}

func TestParse_ClampsScores(t *testing.T) {
	body := `{
	  "layers": [{"role": "primer", "recommended_product": {"product_name": "A"}}],
	  "performance_scores": {"durability": 150, "cost_efficiency": -3, "ease_of_application": 100, "environmental": 0},
	  "confidence_score": 400
	}`
	rec, err := Parse(body)
	require.NoError(t, err)
	assert.Equal(t, 100, rec.PerformanceScores.Durability)
	assert.Equal(t, 0, rec.PerformanceScores.CostEfficiency)
	assert.Equal(t, 100, rec.PerformanceScores.EaseOfApplication)
	assert.Equal(t, 0, rec.PerformanceScores.Environmental)
	assert.Equal(t, 100, rec.ConfidenceScore)
}

func TestParse_RoundsCost(t *testing.T) {
	rec, err := Parse(minimalBody)
	require.NoError(t, err)
	assert.Equal(t, 123.46, rec.EstimatedConsumption.TotalMaterialCost)
}

func TestParse_MissingOptionalsAreZero(t *testing.T) {
	body := `{"layers":[{"role":"top","recommended_product":{"product_name":"T"}}]}`
	rec, err := Parse(body)
	require.NoError(t, err)
	assert.Empty(t, rec.Summary)
	assert.Nil(t, rec.Layers[0].Alternatives)
	assert.Empty(t, rec.Layers[0].RecommendedProduct.ProductCode)
	assert.Zero(t, rec.ConfidenceScore)
}

func TestParse_DoublyEncodedPayload(t *testing.T) {
	quoted, err := Parse(`"{\"layers\":[{\"role\":\"top\",\"recommended_product\":{\"product_name\":\"T\"}}]}"`)
	require.NoError(t, err)
	assert.Equal(t, "top", quoted.Layers[0].Role)
}
