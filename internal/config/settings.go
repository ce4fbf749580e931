package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the values a run can override from file, env or flags.
type Settings struct {
	Display DisplaySettings `mapstructure:"display"`
	Sweep   SweepSettings   `mapstructure:"sweep"`
	Markers MarkerSettings  `mapstructure:"markers"`
	Sensor  SensorSettings  `mapstructure:"sensor"`
	Log     LogSettings     `mapstructure:"log"`
}

type DisplaySettings struct {
	Width          int     `mapstructure:"width"`
	Height         int     `mapstructure:"height"`
	Bands          int     `mapstructure:"bands"`
	Lines          int     `mapstructure:"lines"`
	Padding        int     `mapstructure:"padding"`
	MetersPerBand  float64 `mapstructure:"metersPerBand"`
	ReferenceLines bool    `mapstructure:"referenceLines"`
}

type SweepSettings struct {
	Duration time.Duration `mapstructure:"duration"`
	Loop     bool          `mapstructure:"loop"`
	FPS      int           `mapstructure:"fps"`
}

type MarkerSettings struct {
	Glyph    string `mapstructure:"glyph"`
	IconSize int    `mapstructure:"iconSize"`
}

type SensorSettings struct {
	Source             string        `mapstructure:"source"`
	Targets            int           `mapstructure:"targets"`
	PollInterval       time.Duration `mapstructure:"pollInterval"`
	DetectionRetention time.Duration `mapstructure:"detectionRetention"`
	AbsenceRetention   time.Duration `mapstructure:"absenceRetention"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SetDefaults registers the built-in value for every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("display.width", DisplayWidth)
	v.SetDefault("display.height", DisplayHeight)
	v.SetDefault("display.bands", BandCount)
	v.SetDefault("display.lines", LineCount)
	v.SetDefault("display.padding", Padding)
	v.SetDefault("display.metersPerBand", MetersPerBand)
	v.SetDefault("display.referenceLines", false)

	v.SetDefault("sweep.duration", SweepDuration)
	v.SetDefault("sweep.loop", true)
	v.SetDefault("sweep.fps", TargetFPS)

	v.SetDefault("markers.glyph", MarkerGlyph)
	v.SetDefault("markers.iconSize", MarkerIconSize)

	v.SetDefault("sensor.source", SourceDemo)
	v.SetDefault("sensor.targets", 2)
	v.SetDefault("sensor.pollInterval", PollInterval)
	v.SetDefault("sensor.detectionRetention", DetectionRetention)
	v.SetDefault("sensor.absenceRetention", AbsenceRetention)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads settings into v. An explicit path must exist; otherwise
// radar-panel.{toml,yaml,json} is searched in the usual places and its
// absence is not an error.
func Load(v *viper.Viper, path string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath("/etc/radar-panel")
		v.AddConfigPath("$HOME/.config/radar-panel")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return s, s.Validate()
}

// Validate rejects settings the display or sweep cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.Display.Width < 1 || s.Display.Height <= s.Display.Padding {
		errs = append(errs, fmt.Errorf("display %dx%d leaves no room for padding %d",
			s.Display.Width, s.Display.Height, s.Display.Padding))
	}
	if s.Display.MetersPerBand <= 0 {
		errs = append(errs, fmt.Errorf("metersPerBand must be positive, got %g", s.Display.MetersPerBand))
	}
	if s.Sweep.Duration <= 0 {
		errs = append(errs, fmt.Errorf("sweep duration must be positive, got %s", s.Sweep.Duration))
	}
	if s.Sweep.FPS < 1 {
		errs = append(errs, fmt.Errorf("sweep fps must be at least 1, got %d", s.Sweep.FPS))
	}
	if s.Sensor.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("sensor poll interval must be positive, got %s", s.Sensor.PollInterval))
	}
	if s.Sensor.Source == "" {
		errs = append(errs, errors.New("sensor source must be set"))
	}
	return errors.Join(errs...)
}
