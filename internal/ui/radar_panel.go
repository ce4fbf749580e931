package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderRadarPanel wraps radar content with a styled border.
// The actual radar rendering is done externally to avoid import cycles.
func RenderRadarPanel(width, height int, radarContent, legend string) string {
	content := radarContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderLegend produces the radar legend line: one label per band.
func RenderLegend(width, bands int, metersPerBand float64) string {
	parts := make([]string, 0, bands)
	for k := 1; k <= bands; k++ {
		parts = append(parts, fmt.Sprintf("%gm", float64(k)*metersPerBand))
	}
	legend := StyleLegend.Render("bands: "+strings.Join(parts, " ")) +
		"   " + lipgloss.NewStyle().Foreground(ColorMarker).Render("@ target")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
