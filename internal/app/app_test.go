package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/radar"
	"radar-panel.klederson.com/internal/sensor"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	var s config.Settings
	require.NoError(t, v.Unmarshal(&s))
	return s
}

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m, err := New(testSettings(t), t0)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(AppModel)
	require.True(t, ok)
	return out
}

func reading(id int, dist, angle float64, detected bool, at time.Time) sensor.ReadingMsg {
	return sensor.ReadingMsg{Reading: sensor.Reading{
		TargetID: id, Distance: dist, Angle: angle, Detected: detected, At: at,
	}}
}

func TestNew_DrawsGridAndStartsSweep(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 13, m.shared.canvas.Len())
	assert.True(t, m.shared.sweep.Running())
	assert.NoError(t, m.lastErr)
}

func TestNew_RejectsBadDisplay(t *testing.T) {
	s := testSettings(t)
	s.Display.Bands = 0
	_, err := New(s, t0)
	assert.ErrorIs(t, err, radar.ErrConfiguration)
}

func TestUpdate_TickAdvancesSweep(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, TickMsg(t0.Add(time.Second)))
	assert.InDelta(t, 45, m.shared.sweep.Angle(), 1e-9)
	assert.Equal(t, 13+1+config.TrailDepth, m.shared.canvas.Len())
}

func TestUpdate_ReadingsPlaceMarkers(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, reading(0, 2.5, 45, true, t0))
	m = update(t, m, reading(1, 4.5, 120, true, t0))
	require.Len(t, m.targets, 2)
	require.Len(t, m.shared.markers, 2)
	assert.Equal(t, 2, m.shared.canvas.CountRole(radar.RoleMarker))

	first := m.shared.markers[0].Icon
	m = update(t, m, reading(0, 3, 50, true, t0.Add(time.Second)))
	assert.Same(t, first, m.shared.markers[0].Icon, "same target set moves icons in place")
	assert.Greater(t, m.shared.markers[0].Distance, 2.5)
	assert.Equal(t, 2, m.shared.canvas.CountRole(radar.RoleMarker))
}

func TestUpdate_EvictionRemovesMarkers(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, reading(0, 2.5, 45, true, t0))
	m = update(t, m, reading(1, 4.5, 120, true, t0))
	m = update(t, m, reading(1, 0, 0, false, t0.Add(100*time.Millisecond)))

	m = update(t, m, EvictMsg(t0.Add(time.Second)))
	require.Len(t, m.targets, 1)
	assert.Equal(t, 0, m.targets[0].ID)
	assert.Equal(t, 1, m.shared.canvas.CountRole(radar.RoleMarker))

	m = update(t, m, EvictMsg(t0.Add(time.Minute)))
	assert.Empty(t, m.targets)
	assert.Zero(t, m.shared.canvas.CountRole(radar.RoleMarker))
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, TickMsg(t0.Add(time.Second)))
	m = update(t, m, reading(0, 2.5, 45, true, t0))

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = update(t, m, space)
	assert.False(t, m.shared.sweep.Running())
	assert.Zero(t, m.shared.canvas.CountRole(radar.RoleBeam))

	m = update(t, m, space)
	assert.True(t, m.shared.sweep.Running())

	markersKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}
	m = update(t, m, markersKey)
	assert.Zero(t, m.shared.canvas.CountRole(radar.RoleMarker))
	m = update(t, m, markersKey)
	assert.Equal(t, 1, m.shared.canvas.CountRole(radar.RoleMarker))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.True(t, m.shared.sweep.Running())
	assert.Zero(t, m.shared.sweep.Angle())
}

func TestUpdate_QuitReleasesPrimitives(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, TickMsg(t0.Add(time.Second)))
	m = update(t, m, reading(0, 2.5, 45, true, t0))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = next.(AppModel)
	assert.Equal(t, 13, m.shared.canvas.Len())
}

func TestUpdate_SourceError(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, sensor.SourceErrorMsg{Err: assert.AnError})
	assert.ErrorIs(t, m.lastErr, assert.AnError)
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Initializing")

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, reading(0, 2.5, 45, true, t0))
	m = update(t, m, TickMsg(t0.Add(time.Second)))

	out := m.View()
	assert.Contains(t, out, "TARGETS [1]")
	assert.Contains(t, out, "T0")
}

func TestUpdate_CursorAndDetail(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	m = update(t, m, enter)
	assert.False(t, m.showDetail, "no target to inspect")

	m = update(t, m, reading(0, 2.5, 45, true, t0))
	m = update(t, m, reading(4, 4.5, 120, true, t0))

	down := tea.KeyMsg{Type: tea.KeyDown}
	m = update(t, m, down)
	m = update(t, m, down)
	assert.Equal(t, 1, m.cursor)

	m = update(t, m, enter)
	assert.True(t, m.showDetail)
	assert.Contains(t, m.View(), "TARGET T4")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showDetail)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	// Losing the selected target pulls the cursor back.
	m = update(t, m, down)
	m = update(t, m, reading(4, 0, 0, false, t0.Add(100*time.Millisecond)))
	m = update(t, m, EvictMsg(t0.Add(time.Second)))
	assert.Equal(t, 0, m.cursor)
}
