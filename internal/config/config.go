package config

import "time"

const (
	// Display layout
	Padding       = 10  // Pixels between the outer band and the top edge
	BandCount     = 4   // Number of concentric range bands
	LineCount     = 9   // Bearing lines, 20 degrees apart
	MetersPerBand = 2.0 // Range covered by one band
	DisplayWidth  = 480 // Default virtual display size in pixels
	DisplayHeight = 320

	// Sweep
	TrailDepth       = 5                       // Fading segments behind the beam
	TrailStep        = 8                       // Degrees between trail segments
	TrailFade        = 50                      // Opacity lost per trail segment
	SweepDuration    = 4000 * time.Millisecond // One forward pass
	SweepRepeatDelay = 500 * time.Millisecond  // Pause at 0 before the next pass
	TargetFPS        = 30                      // Animation ticks per second

	// Markers
	MarkerIconSize = 16
	MarkerGlyph    = "👤"

	// Sensor
	SourceDemo         = "demo"                 // Simulated targets
	SourceStdin        = "-"                    // Readings piped on stdin
	PollInterval       = 500 * time.Millisecond // How often the sensor is read
	DetectionRetention = 10 * time.Second       // Keep a target this long after its last detection
	AbsenceRetention   = 500 * time.Millisecond // Absence needed before a target is dropped
	EvictInterval      = 250 * time.Millisecond // How often to run eviction
	SmoothingAlpha     = 0.3                    // EMA smoothing factor (30% new, 70% old)
	MaxTargets         = 3                      // Targets tracked by the sensor at once
	HistoryLen         = 40                     // Distance samples kept per target

	// Terminal rendering
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)

	// App
	AppName    = "RADAR-PANEL"
	AppVersion = "1.0"
	ConfigName = "radar-panel"
	EnvPrefix  = "RADAR_PANEL"
)
