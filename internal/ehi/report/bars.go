package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

const (
	barWidth  = 520
	barHeight = 26
	barGap    = 14
	barLabelW = 210
	barScaleW = 260
)

// barColor grades a 0-20 dimension score into a traffic-light hex color.
func barColor(score int) string {
	switch {
	case score >= 14:
		return "#2da44e" // green
	case score >= 8:
		return "#d4a72c" // yellow
	default:
		return "#cf222e" // red
	}
}

// BarsSVG renders the five dimension scores as horizontal bars, color-graded
// by value.
func BarsSVG(rec *schema.ScoreRecord) string {
	rows := len(schema.DimensionOrder)
	height := rows*(barHeight+barGap) + barGap + 36

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		barWidth, height, barWidth, height)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	fmt.Fprintf(&b, `<text x="12" y="22" font-family="sans-serif" font-size="14" font-weight="bold" fill="#1f2328">%s — EHI %d/100 (%s)</text>`,
		escape(rec.CompanyName), rec.TotalScore, rec.Grade)

	y := 36 + barGap
	for _, dim := range schema.DimensionOrder {
		score := rec.Dimensions[dim]
		w := float64(barScaleW) * float64(score) / axisMax

		fmt.Fprintf(&b, `<text x="12" y="%d" font-family="sans-serif" font-size="12" fill="#57606a">%s</text>`,
			y+barHeight/2+4, schema.DimensionLabels[dim])
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#eaeef2" rx="4"/>`,
			barLabelW, y, barScaleW, barHeight)
		if score > 0 {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%.1f" height="%d" fill="%s" rx="4"/>`,
				barLabelW, y, w, barHeight, barColor(score))
		}
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="#1f2328">%d/20</text>`,
			barLabelW+barScaleW+10, y+barHeight/2+4, score)

		y += barHeight + barGap
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// WriteSVGs writes the radar and bar charts for a record into dir, returning
// the written file paths.
func WriteSVGs(rec *schema.ScoreRecord, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	slug := strings.ToLower(strings.ReplaceAll(rec.CompanyName, " ", "_"))
	paths := []string{
		filepath.Join(dir, slug+"_radar.svg"),
		filepath.Join(dir, slug+"_dimensions.svg"),
	}
	contents := []string{RadarSVG(rec), BarsSVG(rec)}

	for i, path := range paths {
		if err := os.WriteFile(path, []byte(contents[i]), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return paths, nil
}
