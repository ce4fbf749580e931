package radar

import (
	"errors"
	"fmt"
	"math"

	"radar-panel.klederson.com/internal/config"
)

// Marker is one target on the display. Callers own the slice of markers;
// the manager functions only create and release the Icon.
type Marker struct {
	Icon     Primitive
	Distance float64 // meters, never negative once placed
	Angle    float64 // degrees, within [0, 180] once placed
}

// IconSpec is the glyph and pixel footprint used for marker icons.
type IconSpec struct {
	Glyph  string
	Width  int
	Height int
}

// DefaultIcon is the 16x16 person glyph.
func DefaultIcon() IconSpec {
	return IconSpec{
		Glyph:  config.MarkerGlyph,
		Width:  config.MarkerIconSize,
		Height: config.MarkerIconSize,
	}
}

// Size returns the icon footprint.
func (i IconSpec) Size() Size {
	return Size{Width: i.Width, Height: i.Height}
}

// normalize clamps the stored reading so no marker keeps an out-of-range
// bearing or a negative distance.
func (m *Marker) normalize() {
	m.Angle = ClampAngle(m.Angle)
	if m.Distance < 0 || math.IsNaN(m.Distance) {
		m.Distance = 0
	}
}

// topLeft centers the icon footprint on the marker's position.
func (m *Marker) topLeft(cfg Config, metersPerBand float64, icon IconSpec) Point {
	p := PolarToPixel(cfg, m.Distance, m.Angle, metersPerBand)
	return Point{
		X: p.X - float64(icon.Width)/2,
		Y: p.Y - float64(icon.Height)/2,
	}
}

// AddMarkers creates an icon for every marker. A marker whose icon the
// surface refuses keeps a nil Icon; the others are still placed. Markers
// that already have an icon are moved instead of duplicated.
func AddMarkers(s Surface, cfg Config, metersPerBand float64, icon IconSpec, markers []Marker) error {
	var errs []error
	for i := range markers {
		m := &markers[i]
		m.normalize()
		at := m.topLeft(cfg, metersPerBand, icon)

		if m.Icon != nil {
			if err := m.Icon.MoveTo(at); err != nil {
				errs = append(errs, fmt.Errorf("marker %d: %w", i, err))
			}
			continue
		}

		p, err := s.CreateIcon(RoleMarker, icon.Glyph, at, icon.Size())
		if err != nil {
			m.Icon = nil
			errs = append(errs, fmt.Errorf("marker %d: %w", i, err))
			continue
		}
		m.Icon = p
	}
	return errors.Join(errs...)
}

// UpdateMarkers moves every marker that has an icon to its current
// distance and angle. Markers without an icon are skipped.
func UpdateMarkers(cfg Config, metersPerBand float64, icon IconSpec, markers []Marker) error {
	var errs []error
	for i := range markers {
		m := &markers[i]
		if m.Icon == nil {
			continue
		}
		m.normalize()
		if err := m.Icon.MoveTo(m.topLeft(cfg, metersPerBand, icon)); err != nil {
			errs = append(errs, fmt.Errorf("marker %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// RemoveMarkers releases every icon and clears the handles. Safe to call
// repeatedly on the same slice.
func RemoveMarkers(markers []Marker) error {
	var errs []error
	for i := range markers {
		if markers[i].Icon == nil {
			continue
		}
		if err := markers[i].Icon.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("marker %d: %w", i, err))
		}
		markers[i].Icon = nil
	}
	return errors.Join(errs...)
}
