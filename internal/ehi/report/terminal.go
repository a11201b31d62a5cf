package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

const termBarWidth = 20

var (
	termTitle  = lipgloss.NewStyle().Bold(true)
	termDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	termGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	termYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	termRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func termStyle(score int) lipgloss.Style {
	switch {
	case score >= 14:
		return termGreen
	case score >= 8:
		return termYellow
	default:
		return termRed
	}
}

// RenderTerminal writes a colorized per-dimension bar chart for a record.
func RenderTerminal(w io.Writer, rec *schema.ScoreRecord) {
	fmt.Fprintln(w, termTitle.Render(fmt.Sprintf("%s — EHI %d/100 [%s]", rec.CompanyName, rec.TotalScore, rec.Grade)))
	fmt.Fprintln(w, termDim.Render(rec.CalculatedAt.Format("2006-01-02 15:04 MST")))
	fmt.Fprintln(w)

	for _, dim := range schema.DimensionOrder {
		score := rec.Dimensions[dim]
		filled := termBarWidth * score / axisMax
		bar := strings.Repeat("█", filled) + strings.Repeat("░", termBarWidth-filled)
		fmt.Fprintf(w, "  %-28s %s %2d/20\n",
			schema.DimensionLabels[dim],
			termStyle(score).Render(bar),
			score,
		)
	}
}
