package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosystem-labs/ehi/internal/ehi/collect"
)

var (
	collectToken   string
	collectDays    int
	collectOutput  string
	collectVerbose bool
)

var collectCmd = &cobra.Command{
	Use:   "collect <organization>",
	Short: "Collect GitHub metrics for an organization",
	Long: `Walks an organization's public repositories and aggregates engagement
signals: stars, forks, issues, recent commits, contributors, and pull-request
turnaround. Forked, archived, and empty repositories are skipped.

The snapshot is written as JSON and can be fed directly to 'ehi score'.`,
	Args: cobra.ExactArgs(1),
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().StringVar(&collectToken, "token", "", "GitHub token (or GITHUB_TOKEN env var)")
	collectCmd.Flags().IntVar(&collectDays, "days", 90, "Days back to analyze for activity signals")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "data/github_metrics.json", "Snapshot output path")
	collectCmd.Flags().BoolVarP(&collectVerbose, "verbose", "v", false, "Log per-repository progress")
}

func runCollect(cmd *cobra.Command, args []string) error {
	org := args[0]

	token := collectToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: no GitHub token, using unauthenticated requests (low rate limit)")
	}

	level := slog.LevelInfo
	if collectVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	collector := collect.New(cmd.Context(), token, logger)
	snap, err := collector.CollectOrganization(cmd.Context(), org, collectDays)
	if err != nil {
		return err
	}

	if err := snap.Save(collectOutput); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Collected metrics for %s (%d repos):\n", org, len(snap.RawData.Organization.Repos))
	printMetricLine(out, "repo_count", snap.Metrics.RepoCount)
	printMetricLine(out, "total_stars", snap.Metrics.TotalStars)
	printMetricLine(out, "total_forks", snap.Metrics.TotalForks)
	printMetricLine(out, "total_issues", snap.Metrics.TotalIssues)
	printMetricLine(out, "total_prs", snap.Metrics.TotalPRs)
	printMetricLine(out, "contributor_count", snap.Metrics.ContributorCount)
	printMetricLine(out, "commit_frequency", snap.Metrics.CommitFrequency)
	printMetricLine(out, "response_time_avg", snap.Metrics.ResponseTimeAvg)
	printMetricLine(out, "recent_activity_score", snap.Metrics.RecentActivityScore)
	fmt.Fprintf(out, "Snapshot saved to %s\n", collectOutput)
	return nil
}

func printMetricLine(out io.Writer, name string, v *float64) {
	if v == nil {
		fmt.Fprintf(out, "  %s: -\n", name)
		return
	}
	fmt.Fprintf(out, "  %s: %g\n", name, *v)
}
