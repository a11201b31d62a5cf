package collect

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// Aggregate folds per-repository stats into org-level metrics. Pure function;
// the network-facing collector calls it with whatever it managed to fetch.
func Aggregate(repos []RepoStats, daysBack int) *schema.Metrics {
	m := &schema.Metrics{}
	if len(repos) == 0 {
		return m
	}

	var stars, forks, issues, prs, contributors, commits int
	var turnarounds []float64
	starFactorSum := 0.0

	for _, r := range repos {
		stars += r.Stars
		forks += r.Forks
		issues += r.OpenIssues
		prs += r.RecentPRCount
		contributors += r.ContributorCount
		commits += r.RecentCommitCount
		if r.AvgReviewTimeHours != nil {
			turnarounds = append(turnarounds, *r.AvgReviewTimeHours)
		}
		starFactorSum += math.Min(float64(1+r.Stars), 1000)
	}

	m.RepoCount = schema.Float(float64(len(repos)))
	m.TotalStars = schema.Float(float64(stars))
	m.TotalForks = schema.Float(float64(forks))
	m.TotalIssues = schema.Float(float64(issues))
	m.TotalPRs = schema.Float(float64(prs))
	m.ContributorCount = schema.Float(float64(contributors))

	if daysBack > 0 {
		m.CommitFrequency = schema.Float(float64(commits) / float64(daysBack))

		// Activity blended with a capped star factor so a handful of
		// popular repos doesn't dwarf the rest of the org.
		activity := float64(commits+prs) / float64(daysBack)
		starFactor := starFactorSum / float64(len(repos))
		m.RecentActivityScore = schema.Float(activity * starFactor / 100)
	}

	if avg := meanOrNil(turnarounds); avg != nil {
		m.ResponseTimeAvg = avg
	} else {
		m.ResponseTimeAvg = schema.Float(0)
	}

	return m
}

// Save writes the snapshot as indented JSON, creating parent directories as
// needed.
func (s *Snapshot) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
