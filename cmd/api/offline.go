package main

// offlineRecommendationJSON is the canned reply served by the fake client
// when STRATIFY_FAKE_LLM is set. It recommends the seed catalogue the
// session also starts with, so the offline loop is coherent end to end.
const offlineRecommendationJSON = `{
  "system_id": "offline-balcony-pu",
  "system_name": "PU Waterproofing System (offline)",
  "summary": "Offline canned recommendation: epoxy primer, PU membrane, aliphatic PU top coat. All layers meet the 100 g/L VOC limit.",
  "project": {
    "system_name": "Waterproof Balcony Flooring",
    "area_m2": 50,
    "substrate": "Concrete",
    "environment": "Outdoor, UV-exposed, Pedestrian Traffic",
    "traffic_type": "Pedestrian",
    "performance_requirements": ["Waterproof", "Flexible", "UV Stable", "Crack-bridging"],
    "constraints": {"budget_per_m2": 80, "max_voc_g_per_L": 100, "temp_range_C": [-10, 40], "cure_time_hours_max": 48}
  },
  "layers": [
    {
      "role": "primer",
      "recommended_product": {"manufacturer": "AquaProof Inc.", "product_name": "AquaPrime 100", "product_code": "AP-100", "specs": {"voc_g_per_L": 50}, "price_per_unit": 120, "packaging_size": 5, "stock_availability": "in stock"},
      "reason_for_selection": "Solvent-free epoxy primer with low VOC and fast cure on concrete.",
      "alternatives": [],
      "compatibility_notes": "Compatible with PU membranes after 4 h cure.",
      "application_recommendation": {"mixing_instructions": "Mix components A and B for 3 minutes.", "recommended_number_of_coats": 1, "recommended_film_thickness_micron": 120, "drying_time_between_coats_hours": 4, "equipment": "roller"}
    },
    {
      "role": "membrane",
      "recommended_product": {"manufacturer": "FlexiCoat Systems", "product_name": "FlexiSeal PU", "product_code": "FC-PU25", "specs": {"voc_g_per_L": 80}, "price_per_unit": 350, "packaging_size": 25, "stock_availability": "in stock"},
      "reason_for_selection": "Crack-bridging PU membrane within the VOC limit.",
      "alternatives": [
        {"manufacturer": "StoneHard Co.", "product_name": "EpoxyShield 5000", "product_code": "SH-5000", "specs": {"voc_g_per_L": 250}, "price_per_unit": 400, "packaging_size": 20, "stock_availability": "in stock"}
      ],
      "compatibility_notes": "Apply within 24 h of priming.",
      "application_recommendation": {"mixing_instructions": "Single component, stir before use.", "recommended_number_of_coats": 2, "recommended_film_thickness_micron": 1000, "drying_time_between_coats_hours": 12, "equipment": "notched trowel"}
    },
    {
      "role": "top",
      "recommended_product": {"manufacturer": "FlexiCoat Systems", "product_name": "TopGuard UV+", "product_code": "FC-TG-UV", "specs": {"voc_g_per_L": 95}, "price_per_unit": 250, "packaging_size": 10, "stock_availability": "in stock"},
      "reason_for_selection": "Aliphatic PU top coat, UV stable for exposed balconies.",
      "alternatives": [],
      "compatibility_notes": "Compatible with FlexiSeal PU.",
      "application_recommendation": {"mixing_instructions": "Stir before use.", "recommended_number_of_coats": 2, "recommended_film_thickness_micron": 150, "drying_time_between_coats_hours": 6, "equipment": "roller"}
    }
  ],
  "compatibility_matrix": [
    {"layer_a": "primer", "layer_b": "membrane", "compatible": true, "notes": "Recoat window 24 h."},
    {"layer_a": "membrane", "layer_b": "top", "compatible": true, "notes": "Same manufacturer system."}
  ],
  "estimated_consumption": {
    "per_product": [
      {"product_name": "AquaPrime 100", "units_needed": 1.25, "total_qty": "6.25 L"},
      {"product_name": "FlexiSeal PU", "units_needed": 4, "total_qty": "100 L"},
      {"product_name": "TopGuard UV+", "units_needed": 1.67, "total_qty": "16.7 L"}
    ],
    "total_material_cost": 1967.5,
    "currency": "USD"
  },
  "performance_scores": {"durability": 85, "cost_efficiency": 70, "ease_of_application": 75, "environmental": 80},
  "confidence_score": 82,
  "references": ["AquaPrime 100", "FlexiSeal PU", "TopGuard UV+"]
}`
