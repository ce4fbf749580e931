package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/logging"
	"radar-panel.klederson.com/internal/radar"
	"radar-panel.klederson.com/internal/scene"
	"radar-panel.klederson.com/internal/sensor"
	"radar-panel.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	canvas     *scene.Canvas
	display    *radar.Display
	sweep      *radar.Sweep
	sweepStart time.Time
	tracker    *sensor.Tracker
	source     sensor.Source
	input      io.Closer

	// markers[i] shows the target with id markerIDs[i].
	markers   []radar.Marker
	markerIDs []int
}

// AppModel is the root Bubble Tea model for the radar panel.
type AppModel struct {
	width  int
	height int

	settings    config.Settings
	showMarkers bool
	showDetail  bool
	cursor      int
	lastErr     error
	log         *slog.Logger

	shared *shared

	// Cached snapshot
	targets []sensor.Target
}

// New creates the display, draws its grid and starts the sweep clock at now.
func New(settings config.Settings, now time.Time) (AppModel, error) {
	d := settings.Display
	canvas := scene.NewCanvas(d.Width, d.Height)
	display, err := radar.CreateDisplay(canvas, d.Width, d.Height,
		radar.WithBands(d.Bands),
		radar.WithLines(d.Lines),
		radar.WithPadding(d.Padding),
		radar.WithMetersPerBand(d.MetersPerBand),
		radar.WithReferenceLines(d.ReferenceLines),
		radar.WithIcon(radar.IconSpec{
			Glyph:  settings.Markers.Glyph,
			Width:  settings.Markers.IconSize,
			Height: settings.Markers.IconSize,
		}),
	)
	if display == nil {
		return AppModel{}, fmt.Errorf("create display: %w", err)
	}

	m := AppModel{
		settings:    settings,
		showMarkers: true,
		lastErr:     err,
		log:         logging.Logger(),
		shared: &shared{
			canvas:  canvas,
			display: display,
			tracker: sensor.NewTracker(settings.Sensor.DetectionRetention, settings.Sensor.AbsenceRetention),
		},
	}
	if err := m.startSweep(now); err != nil {
		return AppModel{}, err
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.settings.Sweep.FPS),
		evictCmd(),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.advanceSweep(time.Time(msg))
		return m, tickCmd(m.settings.Sweep.FPS)

	case EvictMsg:
		if n := m.shared.tracker.Evict(time.Time(msg)); n > 0 {
			m.log.Debug("targets evicted", "count", n)
		}
		m.syncMarkers()
		return m, evictCmd()

	case sensor.ReadingMsg:
		m.shared.tracker.Observe(msg.Reading)
		m.syncMarkers()
		return m, nil

	case sensor.SourceErrorMsg:
		m.lastErr = msg.Err
		m.log.Warn("sensor source error", "error", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.Shutdown()
		return m, tea.Quit

	case " ":
		if m.shared.sweep.Running() {
			m.stopSweep()
		} else {
			m.lastErr = m.startSweep(time.Now())
		}

	case "r", "R":
		m.stopSweep()
		m.lastErr = m.startSweep(time.Now())

	case "m", "M":
		m.showMarkers = !m.showMarkers
		m.syncMarkers()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}

	case "enter":
		m.showDetail = len(m.targets) > 0

	case "esc":
		m.showDetail = false
	}

	return m, nil
}

func (m *AppModel) startSweep(now time.Time) error {
	sw, err := m.shared.display.StartSweep(m.settings.Sweep.Duration, m.settings.Sweep.Loop)
	if err != nil {
		return fmt.Errorf("start sweep: %w", err)
	}
	m.shared.sweep = sw
	m.shared.sweepStart = now
	return nil
}

func (m *AppModel) stopSweep() {
	if err := m.shared.display.StopSweep(m.shared.sweep); err != nil {
		m.lastErr = err
	}
}

func (m *AppModel) advanceSweep(now time.Time) {
	sw := m.shared.sweep
	if !sw.Running() {
		return
	}
	done, err := sw.Advance(now.Sub(m.shared.sweepStart))
	if err != nil {
		m.lastErr = err
		m.log.Warn("sweep tick failed", "error", err)
	}
	if done {
		m.log.Debug("sweep finished")
	}
}

// syncMarkers mirrors the tracked targets onto the marker slice. When the
// set of target ids changes the old icons are released and a new slice is
// placed; otherwise markers are moved in place.
func (m *AppModel) syncMarkers() {
	s := m.shared
	m.targets = s.tracker.Snapshot()
	if m.cursor >= len(m.targets) {
		m.cursor = max(0, len(m.targets)-1)
	}
	if len(m.targets) == 0 {
		m.showDetail = false
	}

	if !m.showMarkers {
		m.recordErr(s.display.RemoveMarkers(s.markers))
		s.markers, s.markerIDs = nil, nil
		return
	}

	if !sameIDs(s.markerIDs, m.targets) {
		m.recordErr(s.display.RemoveMarkers(s.markers))
		s.markers = make([]radar.Marker, len(m.targets))
		s.markerIDs = make([]int, len(m.targets))
		for i, t := range m.targets {
			s.markers[i] = radar.Marker{Distance: t.Distance, Angle: t.Angle}
			s.markerIDs[i] = t.ID
		}
		m.recordErr(s.display.AddMarkers(s.markers))
		return
	}

	missing := false
	for i, t := range m.targets {
		s.markers[i].Distance = t.Distance
		s.markers[i].Angle = t.Angle
		if s.markers[i].Icon == nil {
			missing = true
		}
	}
	if missing {
		// AddMarkers moves placed icons and retries the failed ones.
		m.recordErr(s.display.AddMarkers(s.markers))
		return
	}
	m.recordErr(s.display.UpdateMarkers(s.markers))
}

func (m *AppModel) recordErr(err error) {
	if err != nil {
		m.lastErr = err
	}
}

func sameIDs(ids []int, targets []sensor.Target) bool {
	if len(ids) != len(targets) {
		return false
	}
	for i, t := range targets {
		if ids[i] != t.ID {
			return false
		}
	}
	return true
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing radar panel..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	radarW := m.width * 3 / 4
	if radarW < 30 {
		radarW = 30
	}
	listW := m.width - radarW
	if listW < 15 {
		listW = 15
		radarW = m.width - listW
	}

	menuBar := ui.RenderMenuBar(m.width, m.settings.Sensor.Source, m.shared.sweep.Running())

	innerW := radarW - 4
	innerH := bodyH - 3 // border plus legend line
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	now := time.Now()
	var radarPanel string
	if m.showDetail && m.cursor < len(m.targets) {
		radarPanel = ui.RenderDetailPanel(m.targets[m.cursor], radarW, bodyH, m.shared.display.Range(), now)
	} else {
		radarContent := scene.RenderText(m.shared.canvas, innerW, innerH)
		cfg := m.shared.display.Config()
		legend := ui.RenderLegend(innerW, cfg.BandCount, m.shared.display.MetersPerBand())
		radarPanel = ui.RenderRadarPanel(radarW, bodyH, radarContent, legend)
	}

	targetList := ui.RenderTargetList(m.targets, listW, bodyH, m.cursor, now)

	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Sweeping:   m.shared.sweep.Running(),
		Angle:      m.shared.sweep.Angle(),
		Targets:    len(m.targets),
		Markers:    placed(m.shared.markers),
		Primitives: m.shared.canvas.Len(),
		Range:      m.shared.display.Range(),
		Err:        m.lastErr,
	})

	return ui.ComposeLayout(menuBar, radarPanel, targetList, statusBar)
}

func placed(markers []radar.Marker) int {
	n := 0
	for _, mk := range markers {
		if mk.Icon != nil {
			n++
		}
	}
	return n
}

// StartSource opens and starts the configured sensor source. Must be
// called before p.Run().
func (m *AppModel) StartSource(p *tea.Program) error {
	src := m.settings.Sensor
	switch src.Source {
	case config.SourceDemo:
		m.shared.source = sensor.NewMockSource(src.Targets, src.PollInterval, m.shared.display.Range())
	case config.SourceStdin:
		m.shared.source = sensor.NewLineSource(os.Stdin)
	default:
		f, err := os.Open(src.Source)
		if err != nil {
			return fmt.Errorf("open sensor source: %w", err)
		}
		m.shared.input = f
		m.shared.source = sensor.NewLineSource(f)
	}
	m.log.Info("sensor source started", "source", src.Source)
	return m.shared.source.Start(p)
}

// Shutdown stops the source and releases every sweep and marker primitive.
// The grid stays with the canvas.
func (m *AppModel) Shutdown() {
	s := m.shared
	if s.source != nil {
		s.source.Stop()
	}
	if s.input != nil {
		_ = s.input.Close()
		s.input = nil
	}
	err := errors.Join(
		s.display.StopSweep(s.sweep),
		s.display.RemoveMarkers(s.markers),
	)
	if err != nil {
		m.log.Warn("shutdown incomplete", "error", err)
	}
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func evictCmd() tea.Cmd {
	return tea.Tick(config.EvictInterval, func(t time.Time) tea.Msg {
		return EvictMsg(t)
	})
}
