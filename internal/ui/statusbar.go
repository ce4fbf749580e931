package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the data shown in the bottom status bar.
type Status struct {
	Sweeping   bool
	Angle      float64 // degrees
	Targets    int
	Markers    int
	Primitives int
	Range      float64 // meters
	Err        error
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st Status) string {
	state := StyleStatusStopped.Render("[STOPPED]")
	if st.Sweeping {
		state = StyleStatusSweeping.Render("[SWEEP]")
	}

	info := fmt.Sprintf(" Targets: %d  Markers: %d  Sweep: %3ddeg  Range: 0-%.0fm  Primitives: %d",
		st.Targets, st.Markers, int(st.Angle), st.Range, st.Primitives)

	content := state + StyleStatusBar.Render(info)
	if st.Err != nil {
		content += "  " + StyleStatusError.Render(firstLine(st.Err.Error()))
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
