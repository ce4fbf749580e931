package radar

import (
	"fmt"
	"log/slog"
	"time"

	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/logging"
)

// Option adjusts a display before its grid is drawn.
type Option func(*displayOptions)

type displayOptions struct {
	bands          int
	lines          int
	padding        int
	metersPerBand  float64
	icon           IconSpec
	referenceLines bool
	logger         *slog.Logger
}

func defaultDisplayOptions() displayOptions {
	return displayOptions{
		bands:         config.BandCount,
		lines:         config.LineCount,
		padding:       config.Padding,
		metersPerBand: config.MetersPerBand,
		icon:          DefaultIcon(),
	}
}

// WithBands sets the number of range bands.
func WithBands(n int) Option {
	return func(o *displayOptions) { o.bands = n }
}

// WithLines sets the number of bearing lines.
func WithLines(n int) Option {
	return func(o *displayOptions) { o.lines = n }
}

// WithPadding sets the headroom between the outer band and the top edge.
func WithPadding(px int) Option {
	return func(o *displayOptions) { o.padding = px }
}

// WithMetersPerBand sets the real-world depth of one band.
func WithMetersPerBand(m float64) Option {
	return func(o *displayOptions) { o.metersPerBand = m }
}

// WithIcon sets the marker glyph and footprint.
func WithIcon(icon IconSpec) Option {
	return func(o *displayOptions) { o.icon = icon }
}

// WithReferenceLines enables the horizontal chords at band heights.
func WithReferenceLines(on bool) Option {
	return func(o *displayOptions) { o.referenceLines = on }
}

// WithLogger overrides the process logger for this display.
func WithLogger(l *slog.Logger) Option {
	return func(o *displayOptions) { o.logger = l }
}

// Display ties a surface to one radar layout. It draws the grid once and
// hands out sweeps and marker placement in the same coordinate frame.
type Display struct {
	surface       Surface
	cfg           Config
	metersPerBand float64
	icon          IconSpec
	grid          Grid
	log           *slog.Logger
}

// CreateDisplay lays out a width x height radar on s and draws its grid.
// If some grid primitives could not be allocated the display is still
// returned together with the error.
func CreateDisplay(s Surface, width, height int, opts ...Option) (*Display, error) {
	o := defaultDisplayOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Logger()
	}
	if o.metersPerBand <= 0 {
		return nil, fmt.Errorf("%w: meters per band %g", ErrConfiguration, o.metersPerBand)
	}
	if o.icon.Width < 0 || o.icon.Height < 0 {
		return nil, fmt.Errorf("%w: icon footprint %dx%d", ErrConfiguration, o.icon.Width, o.icon.Height)
	}

	cfg := Config{
		CenterX:        width / 2,
		CenterY:        height,
		Radius:         height - o.padding,
		BandCount:      o.bands,
		LineCount:      o.lines,
		ReferenceLines: o.referenceLines,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Display{
		surface:       s,
		cfg:           cfg,
		metersPerBand: o.metersPerBand,
		icon:          o.icon,
		log:           o.logger,
	}

	grid, err := BuildGrid(s, cfg)
	d.grid = grid
	if err != nil {
		d.log.Warn("grid incomplete", "error", err, "drawn", grid.Len())
		return d, err
	}
	d.log.Debug("display created",
		"width", width, "height", height,
		"radius", cfg.Radius, "bands", cfg.BandCount, "lines", cfg.LineCount)
	return d, nil
}

// Config returns the display's coordinate frame.
func (d *Display) Config() Config { return d.cfg }

// Grid returns the static grid primitives.
func (d *Display) Grid() Grid { return d.grid }

// MetersPerBand returns the depth of one range band.
func (d *Display) MetersPerBand() float64 { return d.metersPerBand }

// Icon returns the glyph and size used for marker icons.
func (d *Display) Icon() IconSpec { return d.icon }

// Range is the distance covered by the outermost band, in meters.
func (d *Display) Range() float64 {
	return float64(d.cfg.BandCount) * d.metersPerBand
}

// StartSweep begins a sweep on this display.
func (d *Display) StartSweep(duration time.Duration, loop bool) (*Sweep, error) {
	sw, err := StartSweep(d.surface, d.cfg, duration, loop)
	if err != nil {
		return nil, err
	}
	d.log.Debug("sweep started", "duration", duration, "loop", loop)
	return sw, nil
}

// StopSweep releases a sweep's primitives. A nil or stopped sweep is a no-op.
func (d *Display) StopSweep(sw *Sweep) error {
	if !sw.Running() {
		return nil
	}
	if err := sw.Stop(); err != nil {
		d.log.Warn("sweep stop incomplete", "error", err)
		return err
	}
	d.log.Debug("sweep stopped", "angle", sw.Angle())
	return nil
}

// AddMarkers places icons for markers in this display's frame.
func (d *Display) AddMarkers(markers []Marker) error {
	err := AddMarkers(d.surface, d.cfg, d.metersPerBand, d.icon, markers)
	if err != nil {
		d.log.Warn("some markers not placed", "error", err)
	}
	return err
}

// UpdateMarkers repositions markers that already have icons.
func (d *Display) UpdateMarkers(markers []Marker) error {
	return UpdateMarkers(d.cfg, d.metersPerBand, d.icon, markers)
}

// RemoveMarkers releases marker icons.
func (d *Display) RemoveMarkers(markers []Marker) error {
	return RemoveMarkers(markers)
}
