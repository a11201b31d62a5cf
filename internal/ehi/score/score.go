package score

import (
	"time"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// Score evaluates one metrics snapshot and returns a fresh ScoreRecord.
// Deterministic apart from the timestamp; use ScoreAt in tests.
func Score(company string, m *schema.Metrics) *schema.ScoreRecord {
	return ScoreAt(company, m, time.Now().UTC())
}

// ScoreAt is Score with an explicit calculation timestamp.
func ScoreAt(company string, m *schema.Metrics, at time.Time) *schema.ScoreRecord {
	if m == nil {
		m = &schema.Metrics{}
	}

	breakdown := map[string]schema.DimensionBreakdown{
		schema.DimTrustReliability:  scoreTrustReliability(m),
		schema.DimEngagement:        scoreEngagementActivation(m),
		schema.DimReach:             scoreReachDistribution(m),
		schema.DimEnablement:        scoreEnablement(m),
		schema.DimEcosystemStrategy: scoreEcosystemStrategy(m),
	}

	dimensions := make(map[string]int, len(breakdown))
	total := 0
	for name, b := range breakdown {
		dimensions[name] = b.Score
		total += b.Score
	}

	return &schema.ScoreRecord{
		CompanyName:  company,
		Dimensions:   dimensions,
		TotalScore:   total,
		Grade:        numericToGrade(total),
		CalculatedAt: at,
		Breakdown:    breakdown,
	}
}

// numericToGrade converts a 0-100 score to a letter grade.
func numericToGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
