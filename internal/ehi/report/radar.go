// Package report renders score records as radar/bar charts (SVG) and as a
// colorized terminal summary. Purely presentational; no scoring logic.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

const (
	radarSize   = 420
	radarRadius = 150
	// Dimension axis maximum. Radar rings are drawn at 5/10/15/20.
	axisMax = 20
)

// RadarSVG renders the five dimension scores as a radar chart with the total
// score annotated in the center.
func RadarSVG(rec *schema.ScoreRecord) string {
	cx, cy := float64(radarSize)/2, float64(radarSize)/2

	// One axis per dimension, starting at 12 o'clock, clockwise.
	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(len(schema.DimensionOrder))
	}
	point := func(i int, r float64) (float64, float64) {
		a := angle(i)
		return cx + r*math.Cos(a), cy + r*math.Sin(a)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		radarSize, radarSize, radarSize, radarSize)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	// Grid rings at 5-point intervals.
	for ring := 1; ring <= 4; ring++ {
		r := radarRadius * float64(ring) / 4
		var pts []string
		for i := range schema.DimensionOrder {
			x, y := point(i, r)
			pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="none" stroke="#d0d7de" stroke-width="1"/>`,
			strings.Join(pts, " "))
	}

	// Axes and labels.
	for i, dim := range schema.DimensionOrder {
		x, y := point(i, radarRadius)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d0d7de" stroke-width="1"/>`,
			cx, cy, x, y)

		lx, ly := point(i, radarRadius+24)
		anchor := "middle"
		if lx > cx+10 {
			anchor = "start"
		} else if lx < cx-10 {
			anchor = "end"
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#57606a" text-anchor="%s">%s</text>`,
			lx, ly, anchor, schema.DimensionLabels[dim])
	}

	// Score polygon.
	var pts []string
	for i, dim := range schema.DimensionOrder {
		r := radarRadius * float64(rec.Dimensions[dim]) / axisMax
		x, y := point(i, r)
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	fmt.Fprintf(&b, `<polygon points="%s" fill="#218bff" fill-opacity="0.25" stroke="#218bff" stroke-width="2"/>`,
		strings.Join(pts, " "))

	// Total score annotation.
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="26" font-weight="bold" fill="#1f2328" text-anchor="middle">%d</text>`,
		cx, cy-2, rec.TotalScore)
	fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" fill="#57606a" text-anchor="middle">EHI / 100 (%s)</text>`,
		cx, cy+16, rec.Grade)

	b.WriteString(`</svg>`)
	return b.String()
}
