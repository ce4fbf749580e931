package radar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/radar"
	"radar-panel.klederson.com/internal/scene"
)

func TestCreateDisplay_DrawsGrid(t *testing.T) {
	c := scene.NewCanvas(480, 320)
	d, err := radar.CreateDisplay(c, 480, 320)
	require.NoError(t, err)

	cfg := d.Config()
	assert.Equal(t, radar.Point{X: 240, Y: 320}, cfg.Apex())
	assert.Equal(t, 310, cfg.Radius)
	assert.Equal(t, 8.0, d.Range())
	assert.Equal(t, 4, c.CountRole(radar.RoleGridArc))
	assert.Equal(t, 9, c.CountRole(radar.RoleGridLine))
	assert.Equal(t, d.Grid().Len(), c.Len())
}

func TestCreateDisplay_Options(t *testing.T) {
	c := scene.NewCanvas(200, 100)
	d, err := radar.CreateDisplay(c, 200, 100,
		radar.WithBands(5),
		radar.WithLines(7),
		radar.WithPadding(20),
		radar.WithMetersPerBand(1.5),
		radar.WithReferenceLines(true),
	)
	require.NoError(t, err)
	assert.Equal(t, 80, d.Config().Radius)
	assert.Equal(t, 7.5, d.Range())
	assert.Equal(t, 5, c.CountRole(radar.RoleGridArc))
	assert.Equal(t, 7, c.CountRole(radar.RoleGridLine))
	assert.Equal(t, 4, c.CountRole(radar.RoleGridReference))
}

func TestCreateDisplay_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts []radar.Option
	}{
		{"zero bands", []radar.Option{radar.WithBands(0)}},
		{"one line", []radar.Option{radar.WithLines(1)}},
		{"no meters per band", []radar.Option{radar.WithMetersPerBand(0)}},
		{"padding eats radius", []radar.Option{radar.WithPadding(320)}},
		{"negative icon", []radar.Option{radar.WithIcon(radar.IconSpec{Width: -1})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scene.NewCanvas(480, 320)
			d, err := radar.CreateDisplay(c, 480, 320, tt.opts...)
			assert.ErrorIs(t, err, radar.ErrConfiguration)
			assert.Nil(t, d)
			assert.Zero(t, c.Len())
		})
	}
}

func TestCreateDisplay_PartialGrid(t *testing.T) {
	c := scene.NewCanvas(480, 320, scene.WithCapacity(10))
	d, err := radar.CreateDisplay(c, 480, 320)
	require.NotNil(t, d)
	assert.ErrorIs(t, err, radar.ErrAllocation)
	assert.ErrorIs(t, err, scene.ErrCapacity)
	assert.Equal(t, 10, d.Grid().Len())
}

// A looping sweep over a two-target display, stopped after one forward pass.
func TestDisplay_SweepAndMarkersScenario(t *testing.T) {
	c := scene.NewCanvas(480, 320)
	d, err := radar.CreateDisplay(c, 480, 320)
	require.NoError(t, err)
	gridBefore := c.Len()

	sw, err := d.StartSweep(4000*time.Millisecond, true)
	require.NoError(t, err)

	markers := []radar.Marker{
		{Distance: 2.5, Angle: 45},
		{Distance: 4.5, Angle: 120},
	}
	require.NoError(t, d.AddMarkers(markers))

	frame := time.Second / config.TargetFPS
	for elapsed := time.Duration(0); elapsed <= 4000*time.Millisecond; elapsed += frame {
		done, err := sw.Advance(elapsed)
		require.NoError(t, err)
		require.False(t, done)
	}
	assert.Equal(t, 1, c.CountRole(radar.RoleBeam))
	assert.Equal(t, config.TrailDepth, c.CountRole(radar.RoleTrail))

	require.NoError(t, d.StopSweep(sw))
	assert.Zero(t, c.CountRole(radar.RoleBeam))
	assert.Zero(t, c.CountRole(radar.RoleTrail))

	assert.Equal(t, 2, c.CountRole(radar.RoleMarker))
	for _, m := range markers {
		n, ok := c.Lookup(m.Icon)
		require.True(t, ok)
		p := radar.PolarToPixel(d.Config(), m.Distance, m.Angle, d.MetersPerBand())
		assert.InDelta(t, p.X-8, n.TopLeft.X, 1e-9)
		assert.InDelta(t, p.Y-8, n.TopLeft.Y, 1e-9)
	}

	assert.Equal(t, gridBefore, c.Len()-2)
	for _, p := range append(d.Grid().Bands, d.Grid().Lines...) {
		_, ok := c.Lookup(p)
		assert.True(t, ok)
	}

	// Stopping again is a no-op.
	require.NoError(t, d.StopSweep(sw))
	require.NoError(t, d.RemoveMarkers(markers))
	assert.Equal(t, gridBefore, c.Len())
}

func TestDisplay_UpdateMarkersMovesIcons(t *testing.T) {
	c := scene.NewCanvas(480, 320)
	d, err := radar.CreateDisplay(c, 480, 320)
	require.NoError(t, err)

	markers := []radar.Marker{{Distance: 2, Angle: 30}}
	require.NoError(t, d.AddMarkers(markers))

	markers[0].Distance = 6
	markers[0].Angle = 150
	require.NoError(t, d.UpdateMarkers(markers))

	n, ok := c.Lookup(markers[0].Icon)
	require.True(t, ok)
	p := radar.PolarToPixel(d.Config(), 6, 150, d.MetersPerBand())
	assert.InDelta(t, p.X-8, n.TopLeft.X, 1e-9)
	assert.InDelta(t, p.Y-8, n.TopLeft.Y, 1e-9)
}

func TestDisplay_MarkerCapacity(t *testing.T) {
	c := scene.NewCanvas(480, 320, scene.WithCapacity(14))
	d, err := radar.CreateDisplay(c, 480, 320)
	require.NoError(t, err)

	markers := []radar.Marker{{Distance: 1, Angle: 10}, {Distance: 2, Angle: 20}}
	err = d.AddMarkers(markers)
	assert.ErrorIs(t, err, radar.ErrAllocation)
	assert.NotNil(t, markers[0].Icon)
	assert.Nil(t, markers[1].Icon)
}
