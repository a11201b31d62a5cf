// Package score implements Ecosystem Health Index scoring.
//
// A company is scored on 5 dimensions (trust & reliability, engagement &
// activation, reach & distribution, enablement & developer experience,
// ecosystem strategy). Each dimension sums 5 subcategories worth 0-4 points,
// giving 0-20 per dimension and 0-100 total. Scoring is a pure function over
// one metrics snapshot.
package score

import (
	"math"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// Rule converts raw metric values into a bounded subcategory contribution.
// A rule whose inputs are all absent contributes 0.
type Rule interface {
	Points(m *schema.Metrics) int
}

// Subcategory binds a named signal to its normalization rule.
type Subcategory struct {
	Name string
	Rule Rule
}

// metricFn selects one metric field from a snapshot.
type metricFn func(m *schema.Metrics) *float64

// Ladder counts how many of four ascending thresholds the value meets or
// exceeds, saturating at 4.
type Ladder struct {
	Value      metricFn
	Thresholds [4]float64
}

func (l Ladder) Points(m *schema.Metrics) int {
	v := l.Value(m)
	if v == nil {
		return 0
	}
	points := 0
	for _, t := range l.Thresholds {
		if *v >= t {
			points++
		}
	}
	return points
}

// InverseLadder awards more points for smaller values: value at or below
// Limits[0] scores 4, at or below Limits[1] scores 3, and so on. Values above
// Limits[3] score 0. Used for time-to-hello-world.
type InverseLadder struct {
	Value  metricFn
	Limits [4]float64
}

func (l InverseLadder) Points(m *schema.Metrics) int {
	v := l.Value(m)
	if v == nil {
		return 0
	}
	for i, limit := range l.Limits {
		if *v <= limit {
			return 4 - i
		}
	}
	return 0
}

// ScaleClamp passes through a caller-supplied score capped at 4. There is
// deliberately no floor: a negative input lowers the dimension sum. See the
// design notes before changing this.
type ScaleClamp struct {
	Value metricFn
}

func (c ScaleClamp) Points(m *schema.Metrics) int {
	v := c.Value(m)
	if v == nil {
		return 0
	}
	return int(math.Min(*v, 4))
}

// RoundClamp rounds a raw rate to the nearest integer and caps it at 4.
// Like ScaleClamp it has no floor.
type RoundClamp struct {
	Value metricFn
}

func (c RoundClamp) Points(m *schema.Metrics) int {
	v := c.Value(m)
	if v == nil {
		return 0
	}
	return int(math.Min(math.Round(*v), 4))
}

// GateThenLadder awards Base points when the boolean gate is present and true,
// plus one point per secondary threshold met (up to 2 more). A false or absent
// gate contributes nothing, regardless of the secondary metric.
type GateThenLadder struct {
	Gate       func(m *schema.Metrics) *bool
	Base       int
	Secondary  metricFn
	Thresholds [2]float64
}

func (g GateThenLadder) Points(m *schema.Metrics) int {
	gate := g.Gate(m)
	if gate == nil || !*gate {
		return 0
	}
	points := g.Base
	if v := g.Secondary(m); v != nil {
		for _, t := range g.Thresholds {
			if *v >= t {
				points++
			}
		}
	}
	return points
}

// GitHubActivity is the composite open-source activity signal:
//
//	round((min(stars/100,10) + min(forks/50,10) + min(prs/20,10)) / 7.5)
//
// capped at 4. A missing component contributes 0 to its own term; when all
// three are missing the subcategory is absent and scores 0.
type GitHubActivity struct{}

func (GitHubActivity) Points(m *schema.Metrics) int {
	if m.TotalStars == nil && m.TotalForks == nil && m.TotalPRs == nil {
		return 0
	}
	term := func(v *float64, scale float64) float64 {
		if v == nil {
			return 0
		}
		return math.Min(*v/scale, 10)
	}
	composite := (term(m.TotalStars, 100) + term(m.TotalForks, 50) + term(m.TotalPRs, 20)) / 7.5
	points := int(math.Round(composite))
	if points > 4 {
		points = 4
	}
	return points
}

// FixedPlaceholder pins a subcategory to a constant while its data source is
// not yet instrumented. Kept as an explicit rule so placeholder signals are
// visible in the dimension tables instead of buried in scoring logic.
type FixedPlaceholder struct {
	Value int
}

func (p FixedPlaceholder) Points(*schema.Metrics) int { return p.Value }

// scoreDimension evaluates a dimension's subcategories and returns the clamped
// total with its breakdown.
func scoreDimension(subs []Subcategory, m *schema.Metrics) schema.DimensionBreakdown {
	total := 0
	breakdown := make([]schema.SubcategoryScore, 0, len(subs))
	for _, sub := range subs {
		pts := sub.Rule.Points(m)
		total += pts
		breakdown = append(breakdown, schema.SubcategoryScore{
			Name:   sub.Name,
			Points: pts,
			Max:    4,
		})
	}
	if total > 20 {
		total = 20
	}
	if total < 0 {
		total = 0
	}
	return schema.DimensionBreakdown{Score: total, Subcategories: breakdown}
}
