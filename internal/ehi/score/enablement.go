package score

import "github.com/ecosystem-labs/ehi/internal/ehi/schema"

// scoreEnablement grades developer experience: docs, API quality, and how fast
// a newcomer gets to a working hello-world (lower minutes score higher).
func scoreEnablement(m *schema.Metrics) schema.DimensionBreakdown {
	return scoreDimension(enablementSubcategories, m)
}

var enablementSubcategories = []Subcategory{
	{
		Name: "documentation",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.DocumentationScore }},
	},
	{
		Name: "api_quality",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.APIQualityScore }},
	},
	{
		Name: "time_to_hello_world",
		Rule: InverseLadder{
			Value:  func(m *schema.Metrics) *float64 { return m.TimeToHelloWorldMins },
			Limits: [4]float64{5, 15, 30, 60},
		},
	},
	{
		Name: "developer_resources",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.DeveloperResourcesScore }},
	},
	{
		Name: "support_accessibility",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.SupportAccessibilityScore }},
	},
}
