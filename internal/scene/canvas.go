package scene

import (
	"errors"
	"fmt"
	"sort"

	"radar-panel.klederson.com/internal/radar"
)

var (
	// ErrCapacity is returned when the canvas holds its maximum number of
	// primitives. It is always wrapped together with radar.ErrAllocation.
	ErrCapacity = errors.New("scene: canvas full")

	// ErrDestroyed is returned when a released primitive is used again.
	ErrDestroyed = errors.New("scene: primitive destroyed")
)

// Kind distinguishes the shapes a canvas can hold.
type Kind int

const (
	KindLine Kind = iota
	KindArc
	KindIcon
)

// Node is a snapshot of one primitive, as handed to rasterizers.
type Node struct {
	ID      uint64
	Kind    Kind
	Role    radar.Role
	Opacity uint8

	Points []radar.Point // lines

	Center     radar.Point // arcs
	Radius     float64
	StartAngle float64
	EndAngle   float64

	TopLeft radar.Point // icons
	Size    radar.Size
	Glyph   string
}

// Canvas is a retained-mode surface. Primitives live in an id-keyed store
// until destroyed and are drawn in creation order.
type Canvas struct {
	width, height int
	capacity      int
	nextID        uint64
	nodes         map[uint64]*Node
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithCapacity caps the number of live primitives. Zero means unlimited.
func WithCapacity(n int) CanvasOption {
	return func(c *Canvas) { c.capacity = n }
}

// NewCanvas creates an empty canvas of width x height pixels.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		nodes:  make(map[uint64]*Node),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Len returns the number of live primitives.
func (c *Canvas) Len() int { return len(c.nodes) }

// CountRole returns the number of live primitives with role r.
func (c *Canvas) CountRole(r radar.Role) int {
	n := 0
	for _, node := range c.nodes {
		if node.Role == r {
			n++
		}
	}
	return n
}

// Nodes returns copies of all live primitives in creation order.
func (c *Canvas) Nodes() []Node {
	out := make([]Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		cp := *n
		cp.Points = append([]radar.Point(nil), n.Points...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns a copy of the live primitive behind p.
func (c *Canvas) Lookup(p radar.Primitive) (Node, bool) {
	h, ok := p.(*handle)
	if !ok || h.canvas != c {
		return Node{}, false
	}
	n, ok := c.nodes[h.id]
	if !ok {
		return Node{}, false
	}
	cp := *n
	cp.Points = append([]radar.Point(nil), n.Points...)
	return cp, true
}

func (c *Canvas) add(n *Node) (radar.Primitive, error) {
	if c.capacity > 0 && len(c.nodes) >= c.capacity {
		return nil, fmt.Errorf("%w: %w (%d primitives)", radar.ErrAllocation, ErrCapacity, c.capacity)
	}
	c.nextID++
	n.ID = c.nextID
	n.Opacity = 255
	c.nodes[n.ID] = n
	return &handle{canvas: c, id: n.ID}, nil
}

// CreateLine implements radar.Surface.
func (c *Canvas) CreateLine(role radar.Role, points ...radar.Point) (radar.Primitive, error) {
	return c.add(&Node{
		Kind:   KindLine,
		Role:   role,
		Points: append([]radar.Point(nil), points...),
	})
}

// CreateArc implements radar.Surface.
func (c *Canvas) CreateArc(role radar.Role, center radar.Point, radius, startDeg, endDeg float64) (radar.Primitive, error) {
	return c.add(&Node{
		Kind:       KindArc,
		Role:       role,
		Center:     center,
		Radius:     radius,
		StartAngle: startDeg,
		EndAngle:   endDeg,
	})
}

// CreateIcon implements radar.Surface.
func (c *Canvas) CreateIcon(role radar.Role, glyph string, topLeft radar.Point, size radar.Size) (radar.Primitive, error) {
	return c.add(&Node{
		Kind:    KindIcon,
		Role:    role,
		TopLeft: topLeft,
		Size:    size,
		Glyph:   glyph,
	})
}

// handle is the radar.Primitive returned by a Canvas.
type handle struct {
	canvas *Canvas
	id     uint64
}

func (h *handle) node() (*Node, error) {
	n, ok := h.canvas.nodes[h.id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrDestroyed, h.id)
	}
	return n, nil
}

func (h *handle) SetPoints(points ...radar.Point) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	n.Points = append(n.Points[:0], points...)
	return nil
}

func (h *handle) SetOpacity(opacity uint8) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	n.Opacity = opacity
	return nil
}

func (h *handle) MoveTo(topLeft radar.Point) error {
	n, err := h.node()
	if err != nil {
		return err
	}
	switch n.Kind {
	case KindIcon:
		n.TopLeft = topLeft
	case KindArc:
		n.Center = radar.Point{X: topLeft.X + n.Radius, Y: topLeft.Y + n.Radius}
	case KindLine:
		if len(n.Points) == 0 {
			return nil
		}
		minX, minY := n.Points[0].X, n.Points[0].Y
		for _, p := range n.Points[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
		}
		dx, dy := topLeft.X-minX, topLeft.Y-minY
		for i := range n.Points {
			n.Points[i].X += dx
			n.Points[i].Y += dy
		}
	}
	return nil
}

func (h *handle) Destroy() error {
	if _, err := h.node(); err != nil {
		return err
	}
	delete(h.canvas.nodes, h.id)
	return nil
}
