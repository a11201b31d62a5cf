// Package schema defines the metric vocabulary and score record types for the
// Ecosystem Health Index.
//
// Metrics is a closed set of recognized signals. Every field is optional: a nil
// field means the signal was not collected and its subcategory contributes
// nothing to the score. Unknown keys in input documents are ignored.
package schema

// Metrics is one snapshot of raw ecosystem signals for a company.
//
// The *_score fields are caller-supplied assessments already on a 0-4 scale
// (typically from the manual assessment config). The remaining fields are raw
// measurements normalized by the scoring rules.
type Metrics struct {
	// Trust & Reliability
	ReviewRatingAvg          *float64 `json:"review_rating_avg,omitempty" yaml:"review_rating_avg,omitempty"`
	HasStatusPage            *bool    `json:"has_status_page,omitempty" yaml:"has_status_page,omitempty"`
	UptimePercentage         *float64 `json:"uptime_percentage,omitempty" yaml:"uptime_percentage,omitempty"`
	SecurityPolicyScore      *float64 `json:"security_policy_score,omitempty" yaml:"security_policy_score,omitempty"`
	RoadmapTransparencyScore *float64 `json:"roadmap_transparency_score,omitempty" yaml:"roadmap_transparency_score,omitempty"`
	SentimentScore           *float64 `json:"sentiment_score,omitempty" yaml:"sentiment_score,omitempty"`

	// Engagement & Activation
	TotalStars              *float64 `json:"total_stars,omitempty" yaml:"total_stars,omitempty"`
	TotalForks              *float64 `json:"total_forks,omitempty" yaml:"total_forks,omitempty"`
	TotalPRs                *float64 `json:"total_prs,omitempty" yaml:"total_prs,omitempty"`
	ForumActivityScore      *float64 `json:"forum_activity_score,omitempty" yaml:"forum_activity_score,omitempty"`
	APIUsageGrowthPct       *float64 `json:"api_usage_growth_pct,omitempty" yaml:"api_usage_growth_pct,omitempty"`
	ContributionRate        *float64 `json:"contribution_rate,omitempty" yaml:"contribution_rate,omitempty"`
	EventParticipationScore *float64 `json:"event_participation_score,omitempty" yaml:"event_participation_score,omitempty"`

	// Reach & Distribution
	IntegrationCount         *float64 `json:"integration_count,omitempty" yaml:"integration_count,omitempty"`
	MarketplacePresenceScore *float64 `json:"marketplace_presence_score,omitempty" yaml:"marketplace_presence_score,omitempty"`
	PartnerProgramScore      *float64 `json:"partner_program_score,omitempty" yaml:"partner_program_score,omitempty"`
	GeographicCoverageScore  *float64 `json:"geographic_coverage_score,omitempty" yaml:"geographic_coverage_score,omitempty"`
	EcosystemMentionCount    *float64 `json:"ecosystem_mention_count,omitempty" yaml:"ecosystem_mention_count,omitempty"`

	// Enablement & Developer Experience
	DocumentationScore        *float64 `json:"documentation_score,omitempty" yaml:"documentation_score,omitempty"`
	APIQualityScore           *float64 `json:"api_quality_score,omitempty" yaml:"api_quality_score,omitempty"`
	TimeToHelloWorldMins      *float64 `json:"time_to_hello_world_mins,omitempty" yaml:"time_to_hello_world_mins,omitempty"`
	DeveloperResourcesScore   *float64 `json:"developer_resources_score,omitempty" yaml:"developer_resources_score,omitempty"`
	SupportAccessibilityScore *float64 `json:"support_accessibility_score,omitempty" yaml:"support_accessibility_score,omitempty"`

	// Ecosystem Strategy & Evolution
	ExtensionPointCount      *float64 `json:"extension_point_count,omitempty" yaml:"extension_point_count,omitempty"`
	EcosystemLeadershipScore *float64 `json:"ecosystem_leadership_score,omitempty" yaml:"ecosystem_leadership_score,omitempty"`
	EcosystemInvestmentScore *float64 `json:"ecosystem_investment_score,omitempty" yaml:"ecosystem_investment_score,omitempty"`
	AdaptabilityScore        *float64 `json:"adaptability_score,omitempty" yaml:"adaptability_score,omitempty"`
	StrategicAlignmentScore  *float64 `json:"strategic_alignment_score,omitempty" yaml:"strategic_alignment_score,omitempty"`

	// Informational collector output, not scored directly.
	RepoCount           *float64 `json:"repo_count,omitempty" yaml:"repo_count,omitempty"`
	TotalIssues         *float64 `json:"total_issues,omitempty" yaml:"total_issues,omitempty"`
	ContributorCount    *float64 `json:"contributor_count,omitempty" yaml:"contributor_count,omitempty"`
	CommitFrequency     *float64 `json:"commit_frequency,omitempty" yaml:"commit_frequency,omitempty"`
	ResponseTimeAvg     *float64 `json:"response_time_avg,omitempty" yaml:"response_time_avg,omitempty"`
	RecentActivityScore *float64 `json:"recent_activity_score,omitempty" yaml:"recent_activity_score,omitempty"`
}

// Merge returns a copy of m with every non-nil field of overlay taking
// precedence. Neither receiver nor argument is modified.
func (m Metrics) Merge(overlay Metrics) Metrics {
	out := m
	for _, f := range []struct {
		dst **float64
		src *float64
	}{
		{&out.ReviewRatingAvg, overlay.ReviewRatingAvg},
		{&out.UptimePercentage, overlay.UptimePercentage},
		{&out.SecurityPolicyScore, overlay.SecurityPolicyScore},
		{&out.RoadmapTransparencyScore, overlay.RoadmapTransparencyScore},
		{&out.SentimentScore, overlay.SentimentScore},
		{&out.TotalStars, overlay.TotalStars},
		{&out.TotalForks, overlay.TotalForks},
		{&out.TotalPRs, overlay.TotalPRs},
		{&out.ForumActivityScore, overlay.ForumActivityScore},
		{&out.APIUsageGrowthPct, overlay.APIUsageGrowthPct},
		{&out.ContributionRate, overlay.ContributionRate},
		{&out.EventParticipationScore, overlay.EventParticipationScore},
		{&out.IntegrationCount, overlay.IntegrationCount},
		{&out.MarketplacePresenceScore, overlay.MarketplacePresenceScore},
		{&out.PartnerProgramScore, overlay.PartnerProgramScore},
		{&out.GeographicCoverageScore, overlay.GeographicCoverageScore},
		{&out.EcosystemMentionCount, overlay.EcosystemMentionCount},
		{&out.DocumentationScore, overlay.DocumentationScore},
		{&out.APIQualityScore, overlay.APIQualityScore},
		{&out.TimeToHelloWorldMins, overlay.TimeToHelloWorldMins},
		{&out.DeveloperResourcesScore, overlay.DeveloperResourcesScore},
		{&out.SupportAccessibilityScore, overlay.SupportAccessibilityScore},
		{&out.ExtensionPointCount, overlay.ExtensionPointCount},
		{&out.EcosystemLeadershipScore, overlay.EcosystemLeadershipScore},
		{&out.EcosystemInvestmentScore, overlay.EcosystemInvestmentScore},
		{&out.AdaptabilityScore, overlay.AdaptabilityScore},
		{&out.StrategicAlignmentScore, overlay.StrategicAlignmentScore},
		{&out.RepoCount, overlay.RepoCount},
		{&out.TotalIssues, overlay.TotalIssues},
		{&out.ContributorCount, overlay.ContributorCount},
		{&out.CommitFrequency, overlay.CommitFrequency},
		{&out.ResponseTimeAvg, overlay.ResponseTimeAvg},
		{&out.RecentActivityScore, overlay.RecentActivityScore},
	} {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}
	if overlay.HasStatusPage != nil {
		v := *overlay.HasStatusPage
		out.HasStatusPage = &v
	}
	return out
}

// Float returns a pointer to v. Convenience for building Metrics literals.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
