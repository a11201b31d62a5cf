// Package collect gathers public GitHub signals for the engagement dimension
// of the Ecosystem Health Index.
//
// The collector walks an organization's public repositories and aggregates
// stars, forks, issues, recent commits, contributors, and pull-request
// turnaround into a metrics snapshot that feeds straight into scoring.
package collect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// reviewSampleSize caps how many recent PRs per repo are inspected for
// review turnaround.
const reviewSampleSize = 10

// Collector fetches organization metrics from the GitHub API.
type Collector struct {
	gh     *github.Client
	logger *slog.Logger
}

// New creates a Collector. An empty token falls back to unauthenticated
// requests (useful for small public orgs, subject to low rate limits).
func New(ctx context.Context, token string, logger *slog.Logger) *Collector {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}
	return &Collector{gh: client, logger: logger}
}

// RepoStats is the per-repository raw data preserved in snapshots.
type RepoStats struct {
	Name               string   `json:"name"`
	URL                string   `json:"url"`
	Stars              int      `json:"stars"`
	Forks              int      `json:"forks"`
	OpenIssues         int      `json:"open_issues"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	RecentCommitCount  int      `json:"recent_commit_count"`
	ContributorCount   int      `json:"contributor_count"`
	RecentPRCount      int      `json:"recent_pr_count"`
	AvgReviewTimeHours *float64 `json:"avg_review_time_hours"`
}

// Snapshot is the persisted result of one collection run. Its Metrics object
// is directly consumable by the score command.
type Snapshot struct {
	CollectionID string          `json:"collection_id"`
	RawData      RawData         `json:"raw_data"`
	Metrics      *schema.Metrics `json:"metrics"`
	CollectedAt  time.Time       `json:"collected_at"`
}

// RawData preserves the organization-level detail behind the aggregates.
type RawData struct {
	Organization OrgData `json:"organization"`
}

// OrgData is the raw per-organization collection result.
type OrgData struct {
	Name        string      `json:"name"`
	URL         string      `json:"url"`
	Repos       []RepoStats `json:"repos"`
	CollectedAt time.Time   `json:"collected_at"`
}

// CollectOrganization fetches and aggregates metrics for an organization,
// looking daysBack days into the past for activity signals.
func (c *Collector) CollectOrganization(ctx context.Context, orgName string, daysBack int) (*Snapshot, error) {
	org, _, err := c.gh.Organizations.Get(ctx, orgName)
	if err != nil {
		return nil, fmt.Errorf("fetching organization %s: %w", orgName, err)
	}

	repos, err := c.listPublicRepos(ctx, orgName)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -daysBack)
	var stats []RepoStats
	for _, repo := range repos {
		// Forks, archived, and empty repos say nothing about the
		// company's own ecosystem activity.
		if repo.GetFork() || repo.GetArchived() || repo.GetSize() == 0 {
			continue
		}
		rs := c.collectRepo(ctx, orgName, repo, since)
		stats = append(stats, rs)
		c.logger.Debug("collected repository",
			"repo", rs.Name,
			"stars", rs.Stars,
			"recent_commits", rs.RecentCommitCount,
		)
	}

	now := time.Now().UTC()
	snap := &Snapshot{
		CollectionID: uuid.NewString(),
		RawData: RawData{
			Organization: OrgData{
				Name:        org.GetName(),
				URL:         org.GetHTMLURL(),
				Repos:       stats,
				CollectedAt: now,
			},
		},
		Metrics:     Aggregate(stats, daysBack),
		CollectedAt: now,
	}

	c.logger.Info("collection complete",
		"org", orgName,
		"collection_id", snap.CollectionID,
		"repos", len(stats),
	)
	return snap, nil
}

func (c *Collector) listPublicRepos(ctx context.Context, orgName string) ([]*github.Repository, error) {
	var all []*github.Repository
	opts := &github.RepositoryListByOrgOptions{
		Type:        "public",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := c.gh.Repositories.ListByOrg(ctx, orgName, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repositories for %s: %w", orgName, err)
		}
		all = append(all, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// collectRepo gathers stats for one repository. Individual fetch failures are
// logged and leave that signal at zero, matching the rest of the pipeline's
// absent-means-zero behavior.
func (c *Collector) collectRepo(ctx context.Context, orgName string, repo *github.Repository, since time.Time) RepoStats {
	rs := RepoStats{
		Name:       repo.GetName(),
		URL:        repo.GetHTMLURL(),
		Stars:      repo.GetStargazersCount(),
		Forks:      repo.GetForksCount(),
		OpenIssues: repo.GetOpenIssuesCount(),
		CreatedAt:  repo.GetCreatedAt().Format(time.RFC3339),
		UpdatedAt:  repo.GetUpdatedAt().Format(time.RFC3339),
	}

	commits, err := c.countCommits(ctx, orgName, rs.Name, since)
	if err != nil {
		c.logger.Warn("counting commits failed", "repo", rs.Name, "error", err)
	} else {
		rs.RecentCommitCount = commits
	}

	contributors, err := c.countContributors(ctx, orgName, rs.Name)
	if err != nil {
		c.logger.Warn("counting contributors failed", "repo", rs.Name, "error", err)
	} else {
		rs.ContributorCount = contributors
	}

	prCount, avgReview, err := c.recentPullStats(ctx, orgName, rs.Name, since)
	if err != nil {
		c.logger.Warn("fetching pull requests failed", "repo", rs.Name, "error", err)
	} else {
		rs.RecentPRCount = prCount
		rs.AvgReviewTimeHours = avgReview
	}

	return rs
}

func (c *Collector) countCommits(ctx context.Context, owner, repo string, since time.Time) (int, error) {
	count := 0
	opts := &github.CommitsListOptions{
		Since:       since,
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		commits, resp, err := c.gh.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return 0, err
		}
		count += len(commits)
		if resp.NextPage == 0 {
			return count, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Collector) countContributors(ctx context.Context, owner, repo string) (int, error) {
	count := 0
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		contributors, resp, err := c.gh.Repositories.ListContributors(ctx, owner, repo, opts)
		if err != nil {
			return 0, err
		}
		count += len(contributors)
		if resp.NextPage == 0 {
			return count, nil
		}
		opts.Page = resp.NextPage
	}
}

// recentPullStats counts PRs created inside the window and averages the
// creation-to-last-update turnaround (in hours) over the newest
// reviewSampleSize of them.
func (c *Collector) recentPullStats(ctx context.Context, owner, repo string, since time.Time) (int, *float64, error) {
	count := 0
	var turnarounds []float64
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		pulls, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return 0, nil, err
		}
		for _, pr := range pulls {
			created := pr.GetCreatedAt().Time
			if !created.After(since) {
				// Sorted by creation desc: everything after this
				// is outside the window.
				return count, meanOrNil(turnarounds), nil
			}
			count++
			if len(turnarounds) < reviewSampleSize {
				updated := pr.GetUpdatedAt().Time
				turnarounds = append(turnarounds, updated.Sub(created).Hours())
			}
		}
		if resp.NextPage == 0 {
			return count, meanOrNil(turnarounds), nil
		}
		opts.Page = resp.NextPage
	}
}

func meanOrNil(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	return &mean
}
