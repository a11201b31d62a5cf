package score

import (
	"testing"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

func TestLadder(t *testing.T) {
	rule := Ladder{
		Value:      func(m *schema.Metrics) *float64 { return m.ReviewRatingAvg },
		Thresholds: [4]float64{3.0, 3.5, 4.0, 4.5},
	}

	tests := []struct {
		name  string
		value *float64
		want  int
	}{
		{"absent", nil, 0},
		{"below all", schema.Float(2.9), 0},
		{"first threshold", schema.Float(3.0), 1},
		{"between first and second", schema.Float(3.2), 1},
		{"second threshold", schema.Float(3.5), 2},
		{"third threshold", schema.Float(4.0), 3},
		{"top threshold", schema.Float(4.5), 4},
		{"above all", schema.Float(5.0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &schema.Metrics{ReviewRatingAvg: tt.value}
			if got := rule.Points(m); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLadderMonotonic(t *testing.T) {
	rule := Ladder{
		Value:      func(m *schema.Metrics) *float64 { return m.IntegrationCount },
		Thresholds: [4]float64{5, 20, 50, 100},
	}

	prev := -1
	for v := 0.0; v <= 150; v += 0.5 {
		m := &schema.Metrics{IntegrationCount: schema.Float(v)}
		got := rule.Points(m)
		if got < 0 || got > 4 {
			t.Fatalf("Points(%v) = %d, outside [0,4]", v, got)
		}
		if got < prev {
			t.Fatalf("Points(%v) = %d decreased from %d", v, got, prev)
		}
		prev = got
	}
}

func TestInverseLadder(t *testing.T) {
	rule := InverseLadder{
		Value:  func(m *schema.Metrics) *float64 { return m.TimeToHelloWorldMins },
		Limits: [4]float64{5, 15, 30, 60},
	}

	tests := []struct {
		name  string
		value *float64
		want  int
	}{
		{"absent", nil, 0},
		{"five minutes", schema.Float(5), 4},
		{"ten minutes", schema.Float(10), 3},
		{"thirty minutes", schema.Float(30), 2},
		{"forty-five minutes", schema.Float(45), 1},
		{"two hours", schema.Float(120), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &schema.Metrics{TimeToHelloWorldMins: tt.value}
			if got := rule.Points(m); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScaleClamp(t *testing.T) {
	rule := ScaleClamp{Value: func(m *schema.Metrics) *float64 { return m.DocumentationScore }}

	tests := []struct {
		name  string
		value *float64
		want  int
	}{
		{"absent", nil, 0},
		{"in range", schema.Float(3), 3},
		{"at cap", schema.Float(4), 4},
		{"above cap", schema.Float(7), 4},
		// No floor: negative assessments pass through and drag the
		// dimension down. Preserved behavior, not an oversight.
		{"negative passes through", schema.Float(-2), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &schema.Metrics{DocumentationScore: tt.value}
			if got := rule.Points(m); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRoundClamp(t *testing.T) {
	rule := RoundClamp{Value: func(m *schema.Metrics) *float64 { return m.ContributionRate }}

	tests := []struct {
		name  string
		value *float64
		want  int
	}{
		{"absent", nil, 0},
		{"rounds down", schema.Float(1.4), 1},
		{"rounds up", schema.Float(2.6), 3},
		{"caps at four", schema.Float(9.7), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &schema.Metrics{ContributionRate: tt.value}
			if got := rule.Points(m); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGateThenLadder(t *testing.T) {
	rule := GateThenLadder{
		Gate:       func(m *schema.Metrics) *bool { return m.HasStatusPage },
		Base:       2,
		Secondary:  func(m *schema.Metrics) *float64 { return m.UptimePercentage },
		Thresholds: [2]float64{99.0, 99.9},
	}

	tests := []struct {
		name   string
		gate   *bool
		uptime *float64
		want   int
	}{
		{"gate absent", nil, schema.Float(99.95), 0},
		{"gate false", schema.Bool(false), schema.Float(99.95), 0},
		{"gate only", schema.Bool(true), nil, 2},
		{"gate plus low uptime", schema.Bool(true), schema.Float(98.0), 2},
		{"gate plus one threshold", schema.Bool(true), schema.Float(99.5), 3},
		{"gate plus both thresholds", schema.Bool(true), schema.Float(99.95), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &schema.Metrics{HasStatusPage: tt.gate, UptimePercentage: tt.uptime}
			if got := rule.Points(m); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGitHubActivity(t *testing.T) {
	tests := []struct {
		name    string
		metrics schema.Metrics
		want    int
	}{
		{"all absent", schema.Metrics{}, 0},
		{
			name: "moderate activity",
			metrics: schema.Metrics{
				TotalStars: schema.Float(200),
				TotalForks: schema.Float(100),
				TotalPRs:   schema.Float(40),
			},
			// (2 + 2 + 2) / 7.5 = 0.8, rounds to 1
			want: 1,
		},
		{
			name: "saturated terms",
			metrics: schema.Metrics{
				TotalStars: schema.Float(50000),
				TotalForks: schema.Float(20000),
				TotalPRs:   schema.Float(5000),
			},
			// each term caps at 10: 30 / 7.5 = 4
			want: 4,
		},
		{
			name:    "stars only",
			metrics: schema.Metrics{TotalStars: schema.Float(3000)},
			// min(30,10) / 7.5 = 1.33, rounds to 1
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (GitHubActivity{}).Points(&tt.metrics); got != tt.want {
				t.Errorf("Points() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFixedPlaceholder(t *testing.T) {
	rule := FixedPlaceholder{Value: 2}
	if got := rule.Points(&schema.Metrics{}); got != 2 {
		t.Errorf("Points() = %d, want 2", got)
	}
	full := &schema.Metrics{DocumentationScore: schema.Float(4)}
	if got := rule.Points(full); got != 2 {
		t.Errorf("Points() ignores metrics, got %d want 2", got)
	}
}

func TestScoreDimensionClamp(t *testing.T) {
	// Strongly negative caller-supplied scores can push a dimension sum
	// below zero; the dimension clamp floors it at 0.
	m := &schema.Metrics{
		DocumentationScore:        schema.Float(-10),
		APIQualityScore:           schema.Float(-10),
		DeveloperResourcesScore:   schema.Float(1),
		SupportAccessibilityScore: schema.Float(1),
	}
	b := scoreEnablement(m)
	if b.Score != 0 {
		t.Errorf("dimension score = %d, want 0", b.Score)
	}
}
