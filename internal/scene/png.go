package scene

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
)

// RenderPNG rasterizes the canvas at its native size and writes a PNG.
func RenderPNG(c *Canvas, w io.Writer) error {
	dc := gg.NewContext(c.Width(), c.Height())
	defer dc.Close()

	dc.ClearWithColor(gg.Black)
	dc.SetLineCap(gg.LineCapRound)
	for _, n := range c.Nodes() {
		if err := drawNode(dc, n); err != nil {
			return fmt.Errorf("draw %d: %w", n.ID, err)
		}
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file at path.
func SavePNG(c *Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderPNG(c, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawNode(dc *gg.Context, n Node) error {
	st := StyleFor(n.Role)
	col := st.RGBA(n.Opacity)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetLineWidth(st.Width)
	dc.ClearPath()

	switch n.Kind {
	case KindLine:
		if len(n.Points) < 2 {
			return nil
		}
		dc.MoveTo(n.Points[0].X, n.Points[0].Y)
		for _, p := range n.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		return dc.Stroke()

	case KindArc:
		// gg measures angles clockwise on a y-down canvas; the radar
		// convention is counter-clockwise with 90 pointing up.
		a1 := -n.EndAngle * math.Pi / 180
		a2 := -n.StartAngle * math.Pi / 180
		dc.DrawArc(n.Center.X, n.Center.Y, n.Radius, a1, a2)
		return dc.Stroke()

	case KindIcon:
		return drawPerson(dc, n)
	}
	return nil
}

// drawPerson draws a head and shoulders filling the icon footprint.
func drawPerson(dc *gg.Context, n Node) error {
	w, h := float64(n.Size.Width), float64(n.Size.Height)
	if w <= 0 || h <= 0 {
		return nil
	}
	cx := n.TopLeft.X + w/2
	head := math.Min(w, h) / 4

	dc.DrawCircle(cx, n.TopLeft.Y+head, head)
	if err := dc.Fill(); err != nil {
		return err
	}
	dc.DrawArc(cx, n.TopLeft.Y+h, w/2, math.Pi, 2*math.Pi)
	dc.ClosePath()
	return dc.Fill()
}
