package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecosystem-labs/ehi/internal/ehi/report"
	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
	"github.com/ecosystem-labs/ehi/internal/ehi/store"
)

var (
	reportCompany string
	reportFormat  string
	reportOutput  string
)

var reportCmd = &cobra.Command{
	Use:   "report <scores-file>",
	Short: "Render charts from the score history",
	Long: `Renders score records as charts. With --format term (the default) a
colorized bar chart is printed per company; with --format svg a radar chart
and a dimension bar chart are written as SVG files.

Without --company the latest record of every company is rendered.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportCompany, "company", "c", "", "Render only this company's latest record")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "term", "Output format: term or svg")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "reports", "Directory for SVG output")
}

func runReport(cmd *cobra.Command, args []string) error {
	records, err := store.Load(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no score records in %s", args[0])
	}

	var selected []schema.ScoreRecord
	if reportCompany != "" {
		latest := store.Latest(records, reportCompany)
		if latest == nil {
			return fmt.Errorf("no score records for %s", reportCompany)
		}
		selected = []schema.ScoreRecord{*latest}
	} else {
		selected = store.LatestPerCompany(records)
	}

	switch reportFormat {
	case "term":
		for i := range selected {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			report.RenderTerminal(cmd.OutOrStdout(), &selected[i])
		}
		return nil
	case "svg":
		for i := range selected {
			paths, err := report.WriteSVGs(&selected[i], reportOutput)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want term or svg)", reportFormat)
	}
}
