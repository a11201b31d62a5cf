package schema

import "time"

// Dimension names as they appear in persisted score records.
const (
	DimTrustReliability  = "trust_reliability"
	DimEngagement        = "engagement_activation"
	DimReach             = "reach_distribution"
	DimEnablement        = "enablement_dev_experience"
	DimEcosystemStrategy = "ecosystem_strategy"
)

// DimensionOrder is the canonical presentation order for the five dimensions.
var DimensionOrder = []string{
	DimTrustReliability,
	DimEngagement,
	DimReach,
	DimEnablement,
	DimEcosystemStrategy,
}

// DimensionLabels maps dimension keys to human-readable names.
var DimensionLabels = map[string]string{
	DimTrustReliability:  "Trust & Reliability",
	DimEngagement:        "Engagement & Activation",
	DimReach:             "Reach & Distribution",
	DimEnablement:        "Enablement & Dev Experience",
	DimEcosystemStrategy: "Ecosystem Strategy",
}

// SubcategoryScore is one subcategory's contribution within a dimension.
type SubcategoryScore struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max_points"`
}

// DimensionBreakdown pairs a dimension total with its subcategory contributions.
type DimensionBreakdown struct {
	Score         int                `json:"score"`
	Subcategories []SubcategoryScore `json:"subcategories"`
}

// ScoreRecord is the persisted output of one scoring run. Records are immutable
// once produced; each run yields an independent record.
type ScoreRecord struct {
	CompanyName  string         `json:"company_name"`
	Dimensions   map[string]int `json:"dimensions"`
	TotalScore   int            `json:"total_score"`
	Grade        string         `json:"grade"`
	CalculatedAt time.Time      `json:"calculated_at"`

	// Breakdown carries per-subcategory detail for reports and the dashboard.
	// Optional: older records without it still load.
	Breakdown map[string]DimensionBreakdown `json:"breakdown,omitempty"`
}

// MetricsDocument is the on-disk input to scoring: a top-level metrics object,
// optionally accompanied by collector raw data (which scoring ignores).
type MetricsDocument struct {
	CollectionID string         `json:"collection_id,omitempty"`
	Metrics      *Metrics       `json:"metrics"`
	RawData      map[string]any `json:"raw_data,omitempty"`
	CollectedAt  string         `json:"collected_at,omitempty"`
}
