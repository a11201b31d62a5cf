package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
	"github.com/ecosystem-labs/ehi/internal/ehi/score"
	"github.com/ecosystem-labs/ehi/internal/ehi/store"
)

func writeScoresFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "scores.json")
	now := time.Now().UTC().Truncate(time.Second)

	acme := score.ScoreAt("acme", &schema.Metrics{
		ReviewRatingAvg:  schema.Float(4.6),
		HasStatusPage:    schema.Bool(true),
		UptimePercentage: schema.Float(99.95),
	}, now)
	globex := score.ScoreAt("globex", &schema.Metrics{}, now)

	for _, rec := range []*schema.ScoreRecord{acme, globex} {
		if err := store.Append(path, rec); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func TestReportCommandTerm(t *testing.T) {
	path := writeScoresFile(t, t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"report", path, "--company", "", "--format", "term"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "acme") || !strings.Contains(got, "globex") {
		t.Errorf("expected both companies in output, got:\n%s", got)
	}
	if !strings.Contains(got, "EHI 8/100") {
		t.Errorf("expected acme total in output, got:\n%s", got)
	}
}

func TestReportCommandCompanyFilter(t *testing.T) {
	path := writeScoresFile(t, t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"report", path, "--company", "globex", "--format", "term"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "globex") {
		t.Errorf("expected globex in output, got:\n%s", got)
	}
	if strings.Contains(got, "acme") {
		t.Errorf("did not expect acme in filtered output, got:\n%s", got)
	}
}

func TestReportCommandSVG(t *testing.T) {
	dir := t.TempDir()
	path := writeScoresFile(t, dir)
	outDir := filepath.Join(dir, "reports")

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"report", path,
		"--company", "acme",
		"--format", "svg",
		"--output", outDir,
	})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"acme_radar.svg", "acme_dimensions.svg"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s does not start with an svg element", name)
		}
	}
	if !strings.Contains(out.String(), "wrote ") {
		t.Error("expected written paths in output")
	}
}

func TestReportCommandUnknownFormat(t *testing.T) {
	path := writeScoresFile(t, t.TempDir())

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"report", path, "--company", "", "--format", "csv"})
	err := RootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("error %q does not mention unknown format", err)
	}
}

func TestReportCommandEmptyHistory(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope.json"),
		"--company", "",
		"--format", "term",
	})
	err := RootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for empty history")
	}
	if !strings.Contains(err.Error(), "no score records") {
		t.Errorf("error %q does not mention missing records", err)
	}
}
