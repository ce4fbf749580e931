package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"radar-panel.klederson.com/internal/sensor"
)

// RenderDetailPanel renders the target detail view that replaces the radar
// area.
func RenderDetailPanel(t sensor.Target, width, height int, maxRange float64, now time.Time) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render(fmt.Sprintf("TARGET T%d", t.ID))
	escHint := StyleHelp.Render("[ESC]")
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(escHint))) + escHint

	lines := []string{titleLine, StyleSeparator.Render(strings.Repeat("-", innerW)), ""}

	labelSty := lipgloss.NewStyle().Foreground(ColorGridDim)
	valSty := lipgloss.NewStyle().Foreground(ColorBeamGreen).Bold(true)

	fields := []struct{ label, value string }{
		{"Distance", fmt.Sprintf("%.2fm", t.Distance)},
		{"Bearing", fmt.Sprintf("%.1fdeg %s", t.Angle, bearingLabel(t.Angle))},
		{"Tracked", formatAge(now.Sub(t.FirstSeen))},
		{"Last", formatAge(now.Sub(t.LastSeen))},
	}
	for _, f := range fields {
		lines = append(lines, labelSty.Render(fmt.Sprintf("  %-10s", f.label))+valSty.Render(f.value))
	}
	lines = append(lines, "")

	ratio := rangeRatio(t.Distance, maxRange)
	lines = append(lines, labelSty.Render("  Range    ")+renderRangeBar(ratio, max(10, innerW-24))+
		valSty.Render(fmt.Sprintf(" %.0f%%", 100*ratio)))

	if len(t.History) > 0 {
		lines = append(lines, "", labelSty.Render("  Distance history:"))
		lines = append(lines, "  "+StyleSparkline.Render(renderSparkline(t.History, max(10, innerW-4))))
	}
	lines = append(lines, "")

	dialH := height - len(lines) - 4
	if dialH < 4 {
		dialH = 4
	}
	dialW := min(innerW, dialH*4)
	if dial := RenderBearing(dialW, dialH, t.Angle, t.Distance, maxRange); dial != "" {
		prefix := strings.Repeat(" ", max(0, (innerW-dialW)/2))
		for _, dl := range strings.Split(dial, "\n") {
			lines = append(lines, prefix+dl)
		}
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 {
		lines = lines[:max(1, height-2)]
	}
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// rangeRatio is distance as a fraction of maxRange, within [0, 1].
func rangeRatio(distance, maxRange float64) float64 {
	if maxRange <= 0 || math.IsNaN(distance) {
		return 0
	}
	return math.Max(0, math.Min(distance/maxRange, 1))
}

func renderRangeBar(ratio float64, width int) string {
	filled := int(math.Round(ratio * float64(width)))

	return StyleHelp.Render("[") +
		StyleTargetValue.Render(strings.Repeat("|", filled)) +
		StyleHelp.Render(strings.Repeat("-", width-filled)) +
		StyleHelp.Render("]")
}

// bearingLabel names the sector a bearing falls in.
func bearingLabel(deg float64) string {
	labels := []string{"right", "ahead-right", "ahead", "ahead-left", "left"}
	idx := int(math.Round(clampDeg(deg) / 45))
	return labels[idx]
}
