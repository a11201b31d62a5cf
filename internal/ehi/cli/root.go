// Package cli wires the ehi subcommands.
package cli

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// RootCmd is the ehi command-line entrypoint.
var RootCmd = &cobra.Command{
	Use:   "ehi",
	Short: "Ecosystem Health Index — score a company's developer ecosystem",
	Long: `EHI scores a company's ecosystem health on five dimensions:

  Trust & Reliability          — reviews, uptime, security posture
  Engagement & Activation      — GitHub activity, forums, API usage
  Reach & Distribution         — integrations, marketplaces, partners
  Enablement & Dev Experience  — docs, API quality, time to hello-world
  Ecosystem Strategy           — extension points, investment, alignment

Each dimension is worth 0-20 points for a 0-100 total. Collect raw signals
with 'ehi collect', score them with 'ehi score', and explore results with
'ehi report' or the 'ehi serve' dashboard.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(scoreCmd)
	RootCmd.AddCommand(collectCmd)
	RootCmd.AddCommand(reportCmd)
	RootCmd.AddCommand(serveCmd)
}
