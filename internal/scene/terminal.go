package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/radar"
)

// markerRune stands in for icon glyphs wider than one terminal cell.
const markerRune = '@'

type cell struct {
	ch       rune
	role     radar.Role
	opacity  uint8
	priority int
	set      bool
}

// cellMap projects canvas pixels onto a cols x rows terminal grid, keeping
// the picture round despite cells being about twice as tall as wide. The
// image is centered horizontally and its bottom edge, where the apex sits,
// falls in the middle of the last row.
type cellMap struct {
	cols, rows int
	px, py     float64 // pixels per column and per row
	offX, offY float64 // canvas offset in pixels
}

func newCellMap(width, height, cols, rows int) cellMap {
	px := math.Max(float64(width)/float64(cols), float64(height)/float64(rows)*config.AspectRatio)
	py := px / config.AspectRatio
	return cellMap{
		cols: cols,
		rows: rows,
		px:   px,
		py:   py,
		offX: (float64(cols)*px - float64(width)) / 2,
		offY: float64(rows)*py - float64(height) - py/2,
	}
}

func (m cellMap) cellOf(p radar.Point) (col, row int) {
	col = int(math.Floor((p.X + m.offX) / m.px))
	row = int(math.Floor((p.Y + m.offY) / m.py))
	return col, row
}

// RenderText rasterizes the canvas into a styled block of cols x rows cells.
func RenderText(c *Canvas, cols, rows int) string {
	if cols < 1 || rows < 1 || c.Width() < 1 || c.Height() < 1 {
		return ""
	}
	m := newCellMap(c.Width(), c.Height(), cols, rows)
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	plot := func(p radar.Point, ch rune, n Node) {
		col, row := m.cellOf(p)
		if col < 0 || col >= cols || row < 0 || row >= rows {
			return
		}
		prio := StyleFor(n.Role).Priority
		cur := &grid[row][col]
		if cur.set && (cur.priority > prio || (cur.priority == prio && cur.opacity > n.Opacity)) {
			return
		}
		*cur = cell{ch: ch, role: n.Role, opacity: n.Opacity, priority: prio, set: true}
	}

	step := math.Min(m.px, m.py) / 2
	for _, n := range c.Nodes() {
		switch n.Kind {
		case KindLine:
			for i := 1; i < len(n.Points); i++ {
				a, b := n.Points[i-1], n.Points[i]
				dx, dy := b.X-a.X, b.Y-a.Y
				ch := lineRune(math.Atan2(-dy, dx) * 180 / math.Pi)
				steps := int(math.Ceil(math.Hypot(dx, dy) / step))
				for s := 0; s <= steps; s++ {
					t := 1.0
					if steps > 0 {
						t = float64(s) / float64(steps)
					}
					plot(radar.Point{X: a.X + t*dx, Y: a.Y + t*dy}, ch, n)
				}
			}

		case KindArc:
			span := n.EndAngle - n.StartAngle
			steps := int(math.Ceil(math.Abs(span) * math.Pi / 180 * n.Radius / step))
			for s := 0; s <= steps; s++ {
				deg := n.StartAngle
				if steps > 0 {
					deg += span * float64(s) / float64(steps)
				}
				rad := deg * math.Pi / 180
				p := radar.Point{
					X: n.Center.X + n.Radius*math.Cos(rad),
					Y: n.Center.Y - n.Radius*math.Sin(rad),
				}
				plot(p, lineRune(deg+90), n)
			}

		case KindIcon:
			ch := markerRune
			if rs := []rune(n.Glyph); len(rs) == 1 && lipgloss.Width(n.Glyph) == 1 {
				ch = rs[0]
			}
			center := radar.Point{
				X: n.TopLeft.X + float64(n.Size.Width)/2,
				Y: n.TopLeft.Y + float64(n.Size.Height)/2,
			}
			plot(center, ch, n)
		}
	}

	var sb strings.Builder
	for r, line := range grid {
		for _, cl := range line {
			if !cl.set {
				sb.WriteByte(' ')
				continue
			}
			st := StyleFor(cl.role)
			sty := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Shade(cl.opacity)))
			if cl.role == radar.RoleBeam || cl.role == radar.RoleMarker {
				sty = sty.Bold(true)
			}
			sb.WriteString(sty.Render(string(cl.ch)))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// lineRune picks the character closest to a line heading deg degrees,
// counter-clockwise from the +x axis.
func lineRune(deg float64) rune {
	deg = math.Mod(deg, 180)
	if deg < 0 {
		deg += 180
	}
	switch int(math.Round(deg/45)) % 4 {
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
