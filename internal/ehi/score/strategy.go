package score

import "github.com/ecosystem-labs/ehi/internal/ehi/schema"

// scoreEcosystemStrategy grades how deliberately the company invests in and
// evolves its ecosystem.
func scoreEcosystemStrategy(m *schema.Metrics) schema.DimensionBreakdown {
	return scoreDimension(strategySubcategories, m)
}

var strategySubcategories = []Subcategory{
	{
		Name: "extension_points",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.ExtensionPointCount },
			Thresholds: [4]float64{1, 3, 5, 10},
		},
	},
	{
		Name: "ecosystem_leadership",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.EcosystemLeadershipScore }},
	},
	{
		Name: "ecosystem_investment",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.EcosystemInvestmentScore }},
	},
	{
		Name: "adaptability",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.AdaptabilityScore }},
	},
	{
		Name: "strategic_alignment",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.StrategicAlignmentScore }},
	},
}
