package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar-panel.klederson.com/internal/radar"
)

func TestCanvas_CreateAndLookup(t *testing.T) {
	c := NewCanvas(100, 50)
	assert.Equal(t, 100, c.Width())
	assert.Equal(t, 50, c.Height())

	line, err := c.CreateLine(radar.RoleBeam, radar.Point{X: 1, Y: 2}, radar.Point{X: 3, Y: 4})
	require.NoError(t, err)
	arc, err := c.CreateArc(radar.RoleGridArc, radar.Point{X: 50, Y: 50}, 20, 0, 180)
	require.NoError(t, err)
	icon, err := c.CreateIcon(radar.RoleMarker, "p", radar.Point{X: 10, Y: 10}, radar.Size{Width: 4, Height: 4})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.CountRole(radar.RoleBeam))

	n, ok := c.Lookup(line)
	require.True(t, ok)
	assert.Equal(t, KindLine, n.Kind)
	assert.Equal(t, uint8(255), n.Opacity)
	assert.Equal(t, []radar.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, n.Points)

	n, ok = c.Lookup(arc)
	require.True(t, ok)
	assert.Equal(t, KindArc, n.Kind)
	assert.Equal(t, 20.0, n.Radius)

	n, ok = c.Lookup(icon)
	require.True(t, ok)
	assert.Equal(t, "p", n.Glyph)

	nodes := c.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []Kind{KindLine, KindArc, KindIcon}, []Kind{nodes[0].Kind, nodes[1].Kind, nodes[2].Kind})
}

func TestCanvas_NodesAreCopies(t *testing.T) {
	c := NewCanvas(10, 10)
	line, err := c.CreateLine(radar.RoleTrail, radar.Point{X: 1, Y: 1}, radar.Point{X: 2, Y: 2})
	require.NoError(t, err)

	nodes := c.Nodes()
	nodes[0].Points[0].X = 99

	n, _ := c.Lookup(line)
	assert.Equal(t, 1.0, n.Points[0].X)
}

func TestCanvas_HandleUpdates(t *testing.T) {
	c := NewCanvas(100, 100)
	line, err := c.CreateLine(radar.RoleTrail, radar.Point{X: 0, Y: 0}, radar.Point{X: 10, Y: 10})
	require.NoError(t, err)

	require.NoError(t, line.SetPoints(radar.Point{X: 5, Y: 5}, radar.Point{X: 6, Y: 6}))
	require.NoError(t, line.SetOpacity(105))

	n, _ := c.Lookup(line)
	assert.Equal(t, []radar.Point{{X: 5, Y: 5}, {X: 6, Y: 6}}, n.Points)
	assert.Equal(t, uint8(105), n.Opacity)
}

func TestCanvas_MoveTo(t *testing.T) {
	c := NewCanvas(100, 100)

	icon, err := c.CreateIcon(radar.RoleMarker, "p", radar.Point{}, radar.Size{Width: 4, Height: 4})
	require.NoError(t, err)
	require.NoError(t, icon.MoveTo(radar.Point{X: 7, Y: 8}))
	n, _ := c.Lookup(icon)
	assert.Equal(t, radar.Point{X: 7, Y: 8}, n.TopLeft)

	arc, err := c.CreateArc(radar.RoleGridArc, radar.Point{X: 50, Y: 50}, 10, 0, 180)
	require.NoError(t, err)
	require.NoError(t, arc.MoveTo(radar.Point{X: 0, Y: 0}))
	n, _ = c.Lookup(arc)
	assert.Equal(t, radar.Point{X: 10, Y: 10}, n.Center)

	line, err := c.CreateLine(radar.RoleBeam, radar.Point{X: 10, Y: 20}, radar.Point{X: 5, Y: 30})
	require.NoError(t, err)
	require.NoError(t, line.MoveTo(radar.Point{X: 0, Y: 0}))
	n, _ = c.Lookup(line)
	assert.Equal(t, []radar.Point{{X: 5, Y: 0}, {X: 0, Y: 10}}, n.Points)
}

func TestCanvas_Destroy(t *testing.T) {
	c := NewCanvas(10, 10)
	p, err := c.CreateLine(radar.RoleBeam)
	require.NoError(t, err)

	require.NoError(t, p.Destroy())
	assert.Zero(t, c.Len())
	_, ok := c.Lookup(p)
	assert.False(t, ok)

	assert.ErrorIs(t, p.Destroy(), ErrDestroyed)
	assert.ErrorIs(t, p.SetOpacity(1), ErrDestroyed)
	assert.ErrorIs(t, p.SetPoints(), ErrDestroyed)
	assert.ErrorIs(t, p.MoveTo(radar.Point{}), ErrDestroyed)
}

func TestCanvas_Capacity(t *testing.T) {
	c := NewCanvas(10, 10, WithCapacity(2))
	_, err := c.CreateLine(radar.RoleBeam)
	require.NoError(t, err)
	second, err := c.CreateLine(radar.RoleBeam)
	require.NoError(t, err)

	_, err = c.CreateLine(radar.RoleBeam)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.ErrorIs(t, err, radar.ErrAllocation)

	// Destroying frees a slot.
	require.NoError(t, second.Destroy())
	_, err = c.CreateIcon(radar.RoleMarker, "p", radar.Point{}, radar.Size{})
	assert.NoError(t, err)
}

func TestCanvas_LookupForeignHandle(t *testing.T) {
	a := NewCanvas(10, 10)
	b := NewCanvas(10, 10)
	p, err := a.CreateLine(radar.RoleBeam)
	require.NoError(t, err)

	_, ok := b.Lookup(p)
	assert.False(t, ok)
	_, ok = b.Lookup(nil)
	assert.False(t, ok)
}
