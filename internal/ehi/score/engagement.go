package score

import "github.com/ecosystem-labs/ehi/internal/ehi/schema"

// scoreEngagementActivation grades how actively developers participate in the
// ecosystem. GitHub activity comes from the collector; forum and event signals
// are assessed manually until those sources are instrumented.
func scoreEngagementActivation(m *schema.Metrics) schema.DimensionBreakdown {
	return scoreDimension(engagementSubcategories, m)
}

var engagementSubcategories = []Subcategory{
	{
		Name: "github_activity",
		Rule: GitHubActivity{},
	},
	{
		Name: "forum_activity",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.ForumActivityScore }},
	},
	{
		Name: "api_usage_growth",
		Rule: Ladder{
			Value:      func(m *schema.Metrics) *float64 { return m.APIUsageGrowthPct },
			Thresholds: [4]float64{0, 10, 25, 50},
		},
	},
	{
		Name: "contribution_rate",
		Rule: RoundClamp{Value: func(m *schema.Metrics) *float64 { return m.ContributionRate }},
	},
	{
		Name: "event_participation",
		Rule: ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.EventParticipationScore }},
	},
}
