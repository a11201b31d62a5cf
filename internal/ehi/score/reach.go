package score

import "github.com/ecosystem-labs/ehi/internal/ehi/schema"

// scoreReachDistribution grades how widely the product is integrated and
// distributed across the market.
func scoreReachDistribution(m *schema.Metrics) schema.DimensionBreakdown {
	return scoreDimension(reachSubcategories, m)
}

var reachSubcategories = []Subcategory{
	{
		Name: "integration_count",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.IntegrationCount },
			Thresholds: [4]float64{5, 20, 50, 100},
		},
	},
	{
		Name: "marketplace_presence",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.MarketplacePresenceScore }},
	},
	{
		Name: "partner_program",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.PartnerProgramScore }},
	},
	{
		Name: "geographic_coverage",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.GeographicCoverageScore }},
	},
	{
		Name: "ecosystem_mentions",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.EcosystemMentionCount },
			Thresholds: [4]float64{5, 10, 25, 50},
		},
	},
}
