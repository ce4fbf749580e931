package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"radar-panel.klederson.com/internal/sensor"
)

// RenderTargetList renders the tracked targets with a distance sparkline
// for each. The header stays fixed; entries scroll to keep the cursor
// visible.
func RenderTargetList(targets []sensor.Target, width, height, cursor int, now time.Time) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("TARGETS [%d]", len(targets)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	space := innerH - len(headerLines)

	var lines []string
	cursorLine := 0
	if len(targets) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No targets..."), StyleHelp.Render(" Waiting for sensor"))
	}
	for i, t := range targets {
		if i == cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, renderTargetEntry(t, innerW, i == cursor, now)...)
	}

	// Scroll so the cursor entry stays in view
	if cursorLine+entryLines > space {
		lines = lines[cursorLine+entryLines-space:]
	}
	if len(lines) > space {
		lines = lines[:space]
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := append(headerLines, lines...)
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; clamp overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

// entryLines is the height of one target entry.
const entryLines = 3

func renderTargetEntry(t sensor.Target, maxW int, isCursor bool, now time.Time) []string {
	rawID := fmt.Sprintf(" T%d", t.ID)
	rawValue := fmt.Sprintf(" %5.2fm  %5.1fdeg", t.Distance, t.Angle)
	rawAge := " " + formatAge(now.Sub(t.LastSeen))

	var head string
	switch {
	case isCursor:
		line := rawID + rawValue + rawAge
		head = StyleCursorRow.Render(line + strings.Repeat(" ", max(0, maxW-lipgloss.Width(line))))
	case now.Sub(t.LastSeen) >= time.Second:
		head = StyleTargetMissing.Render(rawID + rawValue + rawAge)
	default:
		head = StyleTargetID.Render(rawID) + StyleTargetValue.Render(rawValue) + StyleHelp.Render(rawAge)
	}

	sparkW := maxW - 3
	if sparkW < 4 {
		sparkW = 4
	}
	spark := "   " + StyleSparkline.Render(renderSparkline(t.History, sparkW))

	return []string{head, spark, ""}
}

func formatAge(d time.Duration) string {
	if d < time.Second {
		return "now"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm ago", int(d.Minutes()))
}

// renderSparkline draws the last width values scaled between their min
// and max.
func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	values = values[start:]

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	rng := maxV - minV
	if rng <= 0 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}
