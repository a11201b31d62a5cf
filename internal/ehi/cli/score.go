package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ecosystem-labs/ehi/internal/ehi/config"
	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
	"github.com/ecosystem-labs/ehi/internal/ehi/score"
	"github.com/ecosystem-labs/ehi/internal/ehi/store"
)

var (
	scoreCompany string
	scoreOutput  string
	scoreConfig  string
	scoreJSON    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <metrics-file>",
	Short: "Score a metrics snapshot into an EHI record",
	Long: `Scores a metrics JSON document (as produced by 'ehi collect' or written by
hand) and appends the resulting record to the score history.

The input must have a top-level "metrics" object. Unknown keys are ignored;
missing keys contribute 0 to their subcategory. An optional --config YAML file
overlays manually assessed scores on top of the collected metrics.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreCompany, "company", "c", "", "Company name for the score record (required unless set in --config)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "data/ehi_scores.json", "Score history file to append to")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Manual assessment overlay (YAML)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output the record as JSON instead of a table")
}

func runScore(cmd *cobra.Command, args []string) error {
	metrics, err := loadMetricsFile(args[0])
	if err != nil {
		return err
	}

	company := scoreCompany
	if scoreConfig != "" {
		assessment, err := config.Load(scoreConfig)
		if err != nil {
			return err
		}
		merged := metrics.Merge(assessment.Metrics)
		metrics = &merged
		if company == "" {
			company = assessment.Company
		}
	}
	if company == "" {
		return fmt.Errorf("company name required (--company or the config file's company field)")
	}

	rec := score.Score(company, metrics)

	if err := store.Append(scoreOutput, rec); err != nil {
		return err
	}

	if scoreJSON {
		out, _ := json.MarshalIndent(rec, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	printRecord(cmd.OutOrStdout(), rec)
	fmt.Fprintf(cmd.OutOrStdout(), "\nRecord appended to %s\n", scoreOutput)
	return nil
}

func loadMetricsFile(path string) (*schema.Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metrics file: %w", err)
	}

	var doc schema.MetricsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Metrics == nil {
		return nil, fmt.Errorf("%s has no top-level \"metrics\" object", path)
	}
	return doc.Metrics, nil
}

func printRecord(out io.Writer, rec *schema.ScoreRecord) {
	fmt.Fprintf(out, "ECOSYSTEM HEALTH: %s  [%s] %d/100\n", rec.CompanyName, rec.Grade, rec.TotalScore)
	fmt.Fprintln(out, strings.Repeat("─", 60))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, dim := range schema.DimensionOrder {
		fmt.Fprintf(w, "  %s\t%d/20\n", schema.DimensionLabels[dim], rec.Dimensions[dim])
		w.Flush()
		for _, sub := range rec.Breakdown[dim].Subcategories {
			if sub.Points == 0 {
				continue
			}
			fmt.Fprintf(out, "    - %s: %d/%d\n", sub.Name, sub.Points, sub.Max)
		}
	}
}
