package score

import "github.com/ecosystem-labs/ehi/internal/ehi/schema"

// scoreTrustReliability grades how dependable the ecosystem looks to adopters.
//
// Subcategories:
//   - review rating: ladder on the average review-site rating (3.0/3.5/4.0/4.5)
//   - status page: 2 points for having one, up to 2 more for published uptime
//   - security policy, roadmap transparency: assessed 0-4, capped
//   - sentiment: ladder on the scraped sentiment score (0.2/0.4/0.6/0.8)
func scoreTrustReliability(m *schema.Metrics) schema.DimensionBreakdown {
	return scoreDimension(trustSubcategories, m)
}

var trustSubcategories = []Subcategory{
	{
		Name: "review_rating",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.ReviewRatingAvg },
			Thresholds: [4]float64{3.0, 3.5, 4.0, 4.5},
		},
	},
	{
		Name: "status_page_uptime",
		Rule: GateThenLadder{
			Gate:       func(m *schema.Metrics) *bool { return m.HasStatusPage },
			Base:       2,
			Secondary:  func(m *schema.Metrics) *float64 { return m.UptimePercentage },
			Thresholds: [2]float64{99.0, 99.9},
		},
	},
	{
		Name: "security_policy",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.SecurityPolicyScore }},
	},
	{
		Name: "roadmap_transparency",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.RoadmapTransparencyScore }},
	},
	{
		Name: "community_sentiment",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.SentimentScore },
			Thresholds: [4]float64{0.2, 0.4, 0.6, 0.8},
		},
	},
}
