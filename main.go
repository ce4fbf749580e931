package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"radar-panel.klederson.com/internal/app"
	"radar-panel.klederson.com/internal/config"
	"radar-panel.klederson.com/internal/logging"
	"radar-panel.klederson.com/internal/radar"
	"radar-panel.klederson.com/internal/scene"
	"radar-panel.klederson.com/internal/sensor"
)

var (
	flagConfig string

	flagOut  string
	flagAt   time.Duration
	flagText bool
	flagCols int
	flagRows int
)

// flagKeys maps command line flags onto settings keys.
var flagKeys = map[string]string{
	"source":          "sensor.source",
	"targets":         "sensor.targets",
	"duration":        "sweep.duration",
	"loop":            "sweep.loop",
	"bands":           "display.bands",
	"meters-per-band": "display.metersPerBand",
	"reference-lines": "display.referenceLines",
	"log-level":       "log.level",
	"log-file":        "log.file",
}

func main() {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "radar-panel",
		Short: "Radar Panel - semicircular radar display with sweep and target markers",
		Long: `Radar Panel draws a semicircular range/bearing grid, animates a sweeping
beam with a fading trail and places a marker for every tracked target.

Readings come from a built-in simulator (--source demo), from stdin
(--source -) or from a file, one "<id> <distance-m> <angle-deg> <0|1>" per line.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Settings file (default searches radar-panel.{toml,yaml,json})")
	pf.String("source", config.SourceDemo, `Sensor source: "demo", "-" for stdin, or a file path`)
	pf.Int("targets", 2, "Number of simulated targets in demo mode")
	pf.Duration("duration", config.SweepDuration, "Time for one 0 to 180 degree pass")
	pf.Bool("loop", true, "Repeat the sweep forever")
	pf.Int("bands", config.BandCount, "Number of range bands")
	pf.Float64("meters-per-band", config.MetersPerBand, "Depth of one range band in meters")
	pf.Bool("reference-lines", false, "Draw horizontal chords at band heights")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the demo panel to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return snapshot(v)
		},
	}
	sf := snapshotCmd.Flags()
	sf.StringVarP(&flagOut, "out", "o", "radar.png", "PNG output path")
	sf.DurationVar(&flagAt, "at", time.Second, "Sweep time to capture")
	sf.BoolVar(&flagText, "text", false, "Also print the frame as text")
	sf.IntVar(&flagCols, "cols", 80, "Text frame width in cells")
	sf.IntVar(&flagRows, "rows", 24, "Text frame height in cells")
	rootCmd.AddCommand(snapshotCmd)

	if err := bindFlags(v, pf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			errs = append(errs, fmt.Errorf("bind --%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// setupLogging writes logs to the configured file, or to fallback when none
// is set. A nil fallback keeps the process logger silent.
func setupLogging(s config.LogSettings, fallback *os.File) (func(), error) {
	if s.File == "" {
		if fallback != nil {
			logging.Setup(fallback, s.Level)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Setup(f, s.Level)
	return func() { _ = f.Close() }, nil
}

func run(v *viper.Viper) error {
	settings, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(settings.Log, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := app.New(settings, time.Now())
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithFPS(settings.Sweep.FPS),
	}
	if settings.Sensor.Source == config.SourceStdin {
		// Readings own stdin; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model, opts...)

	if err := model.StartSource(p); err != nil {
		return err
	}

	_, err = p.Run()
	model.Shutdown()
	return err
}

func snapshot(v *viper.Viper) error {
	settings, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(settings.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.Logger()

	d := settings.Display
	canvas := scene.NewCanvas(d.Width, d.Height)
	display, err := radar.CreateDisplay(canvas, d.Width, d.Height,
		radar.WithBands(d.Bands),
		radar.WithLines(d.Lines),
		radar.WithPadding(d.Padding),
		radar.WithMetersPerBand(d.MetersPerBand),
		radar.WithReferenceLines(d.ReferenceLines),
	)
	if err != nil {
		return err
	}

	n := min(settings.Sensor.Targets, len(sensor.DemoPositions))
	markers := make([]radar.Marker, n)
	for i := range markers {
		markers[i] = radar.Marker{
			Distance: sensor.DemoPositions[i].Distance,
			Angle:    sensor.DemoPositions[i].Angle,
		}
	}
	if err := display.AddMarkers(markers); err != nil {
		return err
	}

	sw, err := display.StartSweep(settings.Sweep.Duration, settings.Sweep.Loop)
	if err != nil {
		return err
	}
	if _, err := sw.Advance(flagAt); err != nil {
		return err
	}
	log.Info("frame captured", "at", flagAt, "angle", sw.Angle(), "primitives", canvas.Len())

	if err := scene.SavePNG(canvas, flagOut); err != nil {
		return err
	}
	if flagText {
		fmt.Println(scene.RenderText(canvas, flagCols, flagRows))
	}
	fmt.Printf("wrote %s (beam at %.1f deg)\n", flagOut, sw.Angle())
	return nil
}
