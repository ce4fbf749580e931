package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBearing renders a half dial with an arrow from the apex toward a
// target. angleDeg follows the radar convention: 0 right, 90 ahead, 180
// left. The arrow grows as the target gets closer.
func RenderBearing(width, height int, angleDeg, distance, maxRange float64) string {
	if width < 9 || height < 4 {
		return ""
	}

	grid := make([][]byte, height)
	isArrow := make([][]bool, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
		isArrow[i] = make([]bool, width)
	}

	// Apex sits on the bottom row.
	fcx := float64(width-1) / 2
	fcy := float64(height - 1)
	rx := fcx - 1
	ry := fcy - 1
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	put := func(col, row int, ch byte, arrow bool) {
		if col < 0 || col >= width || row < 0 || row >= height {
			return
		}
		grid[row][col] = ch
		isArrow[row][col] = arrow
	}

	// Dial
	steps := 60
	for i := 0; i <= steps; i++ {
		a := float64(i) * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Cos(a)))
		row := int(math.Round(fcy - ry*math.Sin(a)))
		if grid[row][col] == ' ' {
			put(col, row, dialChar(a), false)
		}
	}

	cx := int(math.Round(fcx))
	cy := int(fcy)
	for c := cx - int(rx) + 1; c < cx+int(rx); c++ {
		put(c, cy, '.', false)
	}
	put(cx-int(rx)-1, cy, 'L', false)
	put(cx+int(rx)+1, cy, 'R', false)
	put(cx, cy-int(ry)-1, 'A', false)

	// Arrow
	frac := 0.85
	if maxRange > 0 {
		frac = 0.85 - 0.55*math.Min(distance/maxRange, 1)
	}
	a := clampDeg(angleDeg) * math.Pi / 180
	cosA, sinA := math.Cos(a), math.Sin(a)

	shaft := int(math.Max(rx, ry) * frac)
	if shaft < 2 {
		shaft = 2
	}
	tipCol, tipRow := cx, cy
	for s := 1; s <= shaft; s++ {
		t := float64(s) / float64(shaft) * frac
		tipCol = int(math.Round(fcx + t*rx*cosA))
		tipRow = int(math.Round(fcy - t*ry*sinA))
		put(tipCol, tipRow, shaftChar(a), true)
	}
	put(tipCol, tipRow, '*', true)
	put(cx, cy, '+', false)

	arrowSty := lipgloss.NewStyle().Foreground(ColorMarker).Bold(true)
	dialSty := lipgloss.NewStyle().Foreground(ColorGridDim)
	markSty := lipgloss.NewStyle().Foreground(ColorGridBlue).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case isArrow[row][col]:
				sb.WriteString(arrowSty.Render(string(ch)))
			case ch == 'L' || ch == 'R' || ch == 'A' || ch == '+':
				sb.WriteString(markSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(dialSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func clampDeg(deg float64) float64 {
	if math.IsNaN(deg) || deg < 0 {
		return 0
	}
	return math.Min(deg, 180)
}

// dialChar is the tangent character at angle a (radians) on the dial.
func dialChar(a float64) byte {
	switch int(math.Round(a/(math.Pi/4))) % 4 {
	case 0:
		return '|'
	case 1:
		return '\\'
	case 2:
		return '-'
	default:
		return '/'
	}
}

// shaftChar is the character for a line heading a (radians, 0 right,
// counter-clockwise).
func shaftChar(a float64) byte {
	switch int(math.Round(a/(math.Pi/4))) % 4 {
	case 0:
		return '-'
	case 1:
		return '/'
	case 2:
		return '|'
	default:
		return '\\'
	}
}
