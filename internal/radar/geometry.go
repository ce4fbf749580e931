package radar

import (
	"fmt"
	"math"

	"radar-panel.klederson.com/internal/config"
)

// Point is a position in display pixels. Y grows downwards.
type Point struct {
	X, Y float64
}

// Config is the coordinate frame of one display. The apex of the
// semicircle sits at (CenterX, CenterY) and the arc opens upwards.
type Config struct {
	CenterX   int
	CenterY   int
	Radius    int
	BandCount int
	LineCount int

	// ReferenceLines adds a horizontal chord at every inner band height.
	ReferenceLines bool
}

// DefaultConfig lays out a display of the given size: apex at the middle of
// the bottom edge, radius leaving config.Padding pixels of headroom.
func DefaultConfig(width, height int) Config {
	return Config{
		CenterX:   width / 2,
		CenterY:   height,
		Radius:    height - config.Padding,
		BandCount: config.BandCount,
		LineCount: config.LineCount,
	}
}

// Validate rejects layouts that would divide by zero or draw nothing.
func (c Config) Validate() error {
	if c.BandCount < 1 {
		return fmt.Errorf("%w: band count %d, need at least 1", ErrConfiguration, c.BandCount)
	}
	if c.LineCount < 2 {
		return fmt.Errorf("%w: line count %d, need at least 2", ErrConfiguration, c.LineCount)
	}
	if c.Radius < 1 {
		return fmt.Errorf("%w: radius %d, need a positive radius", ErrConfiguration, c.Radius)
	}
	return nil
}

// Apex returns the center of the semicircle.
func (c Config) Apex() Point {
	return Point{X: float64(c.CenterX), Y: float64(c.CenterY)}
}

// ClampAngle limits a bearing to [0, 180] degrees. NaN maps to 0.
func ClampAngle(deg float64) float64 {
	if math.IsNaN(deg) || deg < 0 {
		return 0
	}
	if deg > 180 {
		return 180
	}
	return deg
}

// MetersPerPixel is the real-world distance covered by one pixel of radius.
func MetersPerPixel(cfg Config, metersPerBand float64) float64 {
	return float64(cfg.BandCount) * metersPerBand / float64(cfg.Radius)
}

// PolarToPixel converts a target at distanceMeters and angleDeg to display
// pixels. Distances past the outer band are not clamped and land outside
// the drawn radius.
func PolarToPixel(cfg Config, distanceMeters, angleDeg, metersPerBand float64) Point {
	mpp := MetersPerPixel(cfg, metersPerBand)
	if mpp <= 0 || distanceMeters <= 0 {
		return cfg.Apex()
	}
	return project(cfg, distanceMeters/mpp, angleDeg)
}

// BeamEnd returns the point on the outer radius at angleDeg.
func BeamEnd(cfg Config, angleDeg float64) Point {
	return project(cfg, float64(cfg.Radius), angleDeg)
}

func project(cfg Config, pixels, angleDeg float64) Point {
	rad := ClampAngle(angleDeg) * math.Pi / 180
	return Point{
		X: float64(cfg.CenterX) + pixels*math.Cos(rad),
		Y: float64(cfg.CenterY) - pixels*math.Sin(rad),
	}
}
