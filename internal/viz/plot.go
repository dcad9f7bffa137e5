// Package viz renders sample paths and correlograms for the terminal.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
	barWidth   = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	lagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	sigStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	footStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PlotPath draws the realized path as a line graph.
func PlotPath(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// Correlogram draws one stem row per lag: bars grow left or right from a
// zero axis, values beyond the confidence bound are highlighted, and
// degenerate lags (if any) are marked instead of plotted. degenerate may
// be nil for ACF output.
func Correlogram(title string, lags []int, values []float64, confBound float64, degenerate []bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	for i, lag := range lags {
		b.WriteString(lagStyle.Render(fmt.Sprintf("lag %3d ", lag)))
		if degenerate != nil && degenerate[i] {
			b.WriteString(strings.Repeat(" ", barWidth))
			b.WriteString("|")
			b.WriteString(flagStyle.Render(" degenerate"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(stem(values[i], confBound))
		b.WriteString("\n")
	}

	b.WriteString(footStyle.Render(fmt.Sprintf("95%% bound: +-%.3f", confBound)))
	return b.String()
}

// stem renders a single correlation value as a horizontal bar around a
// center axis. Values are clamped to [-1, 1].
func stem(v, confBound float64) string {
	clamped := math.Max(-1, math.Min(1, v))
	n := int(math.Round(math.Abs(clamped) * barWidth))

	style := barStyle
	if math.Abs(v) > confBound {
		style = sigStyle
	}
	bar := style.Render(strings.Repeat("#", n))

	var left, right string
	if clamped < 0 {
		left = strings.Repeat(" ", barWidth-n) + bar
		right = strings.Repeat(" ", barWidth)
	} else {
		left = strings.Repeat(" ", barWidth)
		right = bar + strings.Repeat(" ", barWidth-n)
	}
	return fmt.Sprintf("%s|%s %+.4f", left, right, v)
}
