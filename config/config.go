// Package config loads sandbox settings from defaults, an optional file and the environment
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/vi-field/component"
	"github.com/lixenwraith/vi-field/parameter"
	"github.com/lixenwraith/vi-field/render"
	"github.com/lixenwraith/vi-field/scene"
)

// EnvPrefix namespaces environment overrides, e.g. VIFIELD_FIELD_SCALE
const EnvPrefix = "VIFIELD"

// ErrInvalid marks a configuration that fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the full sandbox configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Field   FieldConfig   `mapstructure:"field"`
	Sensor  SensorConfig  `mapstructure:"sensor"`
	Sound   SoundConfig   `mapstructure:"sound"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Scene   SceneConfig   `mapstructure:"scene"`
}

// DisplayConfig holds the initial display toggles
type DisplayConfig struct {
	ShowField     bool `mapstructure:"show_field"`
	ShowGrid      bool `mapstructure:"show_grid"`
	ShowValues    bool `mapstructure:"show_values"`
	DirectionOnly bool `mapstructure:"direction_only"`
}

// FieldConfig holds the grid arrow parameters
type FieldConfig struct {
	Scale       float64 `mapstructure:"scale"`
	GridSpacing float64 `mapstructure:"grid_spacing"`
}

// SensorConfig bounds sensor arrow length in canvas units
type SensorConfig struct {
	ArrowMin float64 `mapstructure:"arrow_min"`
	ArrowMax float64 `mapstructure:"arrow_max"`
}

// SoundConfig enables the sensor probe tone
type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggerConfig controls the rotating file log, the terminal is never a log sink
type LoggerConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Level      string `mapstructure:"level"`
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// SceneConfig seeds the initial scene, empty means the built-in default
type SceneConfig struct {
	Charges []ChargeConfig `mapstructure:"charges"`
	Sensors []PointConfig  `mapstructure:"sensors"`
}

// ChargeConfig is one seeded charge, value in nC
type ChargeConfig struct {
	Value float64 `mapstructure:"value"`
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
}

// PointConfig is one seeded sensor position
type PointConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// SetDefaults registers every key so environment overrides resolve during Unmarshal
func SetDefaults(v *viper.Viper) {
	v.SetDefault("display.show_field", true)
	v.SetDefault("display.show_grid", true)
	v.SetDefault("display.show_values", true)
	v.SetDefault("display.direction_only", false)

	v.SetDefault("field.scale", parameter.FieldScaleDefault)
	v.SetDefault("field.grid_spacing", parameter.GridSpacing)

	v.SetDefault("sensor.arrow_min", parameter.SensorArrowMin)
	v.SetDefault("sensor.arrow_max", parameter.SensorArrowMax)

	v.SetDefault("sound.enabled", false)

	v.SetDefault("logger.enabled", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.log_file", "vi-field.log")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// Load reads path (if non-empty) into v, applies environment overrides and validates
// Flags bound to v by the caller take precedence over file and environment
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration produced by defaults alone
func Default() *Config {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		// Defaults are constants and always validate
		panic(err)
	}
	return cfg
}

// Validate rejects values the renderer cannot use
func (c *Config) Validate() error {
	if c.Field.Scale < parameter.FieldScaleMin || c.Field.Scale > parameter.FieldScaleMax {
		return errors.Wrapf(ErrInvalid, "field.scale %.2f outside [%.1f, %.1f]",
			c.Field.Scale, parameter.FieldScaleMin, parameter.FieldScaleMax)
	}
	if c.Field.GridSpacing < parameter.GridSpacingMin {
		return errors.Wrapf(ErrInvalid, "field.grid_spacing %g below minimum %.0f",
			c.Field.GridSpacing, parameter.GridSpacingMin)
	}
	if c.Sensor.ArrowMin <= 0 {
		return errors.Wrapf(ErrInvalid, "sensor.arrow_min %.2f must be positive", c.Sensor.ArrowMin)
	}
	if c.Sensor.ArrowMin >= c.Sensor.ArrowMax {
		return errors.Wrapf(ErrInvalid, "sensor.arrow_min %.2f must be below arrow_max %.2f",
			c.Sensor.ArrowMin, c.Sensor.ArrowMax)
	}
	if c.Logger.Enabled && c.Logger.LogFile == "" {
		return errors.Wrap(ErrInvalid, "logger.log_file required when logging is enabled")
	}
	return nil
}

// Settings converts the configuration to initial render settings
func (c *Config) Settings() render.Settings {
	s := render.DefaultSettings()
	s.FieldScale = c.Field.Scale
	s.DirectionOnly = c.Display.DirectionOnly
	s.ShowField = c.Display.ShowField
	s.ShowGrid = c.Display.ShowGrid
	s.ShowValues = c.Display.ShowValues
	s.Sound = c.Sound.Enabled
	s.GridSpacing = c.Field.GridSpacing
	s.SensorArrowMin = c.Sensor.ArrowMin
	s.SensorArrowMax = c.Sensor.ArrowMax
	return s
}

// NewScene builds the initial scene from the seed, or the default dipole when none is given
func (c *Config) NewScene() *scene.Scene {
	if len(c.Scene.Charges) == 0 && len(c.Scene.Sensors) == 0 {
		return scene.Default()
	}

	charges := make([]component.Charge, 0, len(c.Scene.Charges))
	for _, ch := range c.Scene.Charges {
		charges = append(charges, component.Charge{Value: ch.Value, Position: r2.Vec{X: ch.X, Y: ch.Y}})
	}
	sensors := make([]component.Sensor, 0, len(c.Scene.Sensors))
	for _, p := range c.Scene.Sensors {
		sensors = append(sensors, component.Sensor{Position: r2.Vec{X: p.X, Y: p.Y}})
	}
	return scene.Seed(charges, sensors)
}
