package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocable/internal/nbr"
	"github.com/alexiusacademia/gocable/internal/sizing"
)

// DrawSizingBars creates an ASCII bar chart of the voltage drop of every
// candidate section, with the drop limit marked.
func DrawSizingBars(res *sizing.Result) string {
	var sb strings.Builder

	barWidth := 40

	// Scale so the limit always sits inside the chart
	maxPct := nbr.MaxVoltageDropPct * 1.5
	for _, row := range res.Rows {
		maxPct = max(maxPct, row.DropPct)
	}
	scale := float64(barWidth) / maxPct
	limitCol := int(nbr.MaxVoltageDropPct * scale)

	sb.WriteString("\n")
	sb.WriteString("  VOLTAGE DROP BY CROSS-SECTION\n")
	sb.WriteString("  ─────────────────────────────\n\n")

	for _, row := range res.Rows {
		barLen := int(row.DropPct * scale)
		if barLen > barWidth {
			barLen = barWidth
		}

		var bar strings.Builder
		for i := 0; i < barWidth; i++ {
			switch {
			case i == limitCol:
				bar.WriteString("┆")
			case i < barLen && row.AmpacityExceeded:
				bar.WriteString("░")
			case i < barLen:
				bar.WriteString("█")
			default:
				bar.WriteString(" ")
			}
		}

		marker := ""
		if res.Recommended != nil && row.SectionMM2 == res.Recommended.SectionMM2 {
			marker = " ◄─ RECOMMENDED"
		} else if row.AmpacityExceeded {
			marker = " (overload)"
		}

		sb.WriteString(fmt.Sprintf("  %6.1f mm² │%s│ %6.2f%%%s\n", row.SectionMM2, bar.String(), row.DropPct, marker))
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  ┆   = %.0f%% drop limit\n", nbr.MaxVoltageDropPct))
	sb.WriteString("  ███ = within ampacity\n")
	sb.WriteString("  ░░░ = current exceeds ampacity\n")

	return sb.String()
}

// DrawDropCurve plots drop % across the candidate sections as a line
// graph, with the drop limit as a flat second series.
func DrawDropCurve(res *sizing.Result) string {
	if len(res.Rows) == 0 {
		return ""
	}

	drops := make([]float64, len(res.Rows))
	limit := make([]float64, len(res.Rows))
	for i, row := range res.Rows {
		drops[i] = row.DropPct
		limit[i] = nbr.MaxVoltageDropPct
	}

	first, last := res.Rows[0].SectionMM2, res.Rows[len(res.Rows)-1].SectionMM2
	graph := asciigraph.PlotMany([][]float64{drops, limit},
		asciigraph.Height(10),
		asciigraph.Width(3*len(drops)),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("drop %% from %g mm² to %g mm², flat line at the %.0f%% limit",
			first, last, nbr.MaxVoltageDropPct)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  VOLTAGE DROP CURVE\n")
	sb.WriteString("  ──────────────────\n\n")
	for _, line := range strings.Split(graph, "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}

// DrawConduitSection sketches a conduit cross-section with the fill limit.
func DrawConduitSection(diameterMM, fillPct float64, cables int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  CONDUIT CROSS-SECTION\n")
	sb.WriteString("  ─────────────────────\n\n")
	sb.WriteString("          ╭───────────╮\n")
	sb.WriteString("        ╱   ●   ●   ●   ╲\n")
	sb.WriteString(fmt.Sprintf("       │    ●   ●   ●    │ ← Ø ≥ %.1f mm\n", diameterMM))
	sb.WriteString("        ╲                ╱\n")
	sb.WriteString("          ╰───────────╯\n")
	sb.WriteString(fmt.Sprintf("         %d cable(s), occupancy ≤ %.0f%%\n", cables, fillPct))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes; %-*s counts bytes and misaligns "mm²".
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
