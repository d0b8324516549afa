// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/fskdec/demod"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/spectrum"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. FSKDEC_DECODE_FREQ0.
	EnvPrefix = "FSKDEC"
	// Name is the base name of the config file looked up on the search path.
	Name = "fskdec"
)

// Config represents the application configuration
type Config struct {
	LogLevel       string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogDevelopment bool   `mapstructure:"log_development" yaml:"log_development" json:"log_development"`
	// Output is the result format: text, json or yaml.
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	Decode   DecodeConfig   `mapstructure:"decode" yaml:"decode" json:"decode"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate" json:"generate"`
}

// DecodeConfig contains demodulation settings
type DecodeConfig struct {
	Mode             string  `mapstructure:"mode" yaml:"mode" json:"mode"`
	Interval         float64 `mapstructure:"interval" yaml:"interval" json:"interval"`
	Freq0            float64 `mapstructure:"freq0" yaml:"freq0" json:"freq0"`
	Freq1            float64 `mapstructure:"freq1" yaml:"freq1" json:"freq1"`
	Tolerance        float64 `mapstructure:"tolerance" yaml:"tolerance" json:"tolerance"`
	Workers          int     `mapstructure:"workers" yaml:"workers" json:"workers"`
	Window           string  `mapstructure:"window" yaml:"window" json:"window"`
	KeepUndetermined bool    `mapstructure:"keep_undetermined" yaml:"keep_undetermined" json:"keep_undetermined"`
}

// GenerateConfig contains tone synthesis settings
type GenerateConfig struct {
	SampleRate int     `mapstructure:"sample_rate" yaml:"sample_rate" json:"sample_rate"`
	Amplitude  float64 `mapstructure:"amplitude" yaml:"amplitude" json:"amplitude"`
	Channels   int     `mapstructure:"channels" yaml:"channels" json:"channels"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	p := demod.DefaultParams()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
	v.SetDefault("output", "text")

	v.SetDefault("decode.mode", demod.BFSK.String())
	v.SetDefault("decode.interval", p.IntervalDuration)
	v.SetDefault("decode.freq0", p.Freq0)
	v.SetDefault("decode.freq1", p.Freq1)
	v.SetDefault("decode.tolerance", p.Tolerance)
	v.SetDefault("decode.workers", 0)
	v.SetDefault("decode.window", spectrum.Rectangular.String())
	v.SetDefault("decode.keep_undetermined", false)

	v.SetDefault("generate.sample_rate", 8000)
	v.SetDefault("generate.amplitude", 0.8)
	v.SetDefault("generate.channels", 1)
}

// New returns a viper instance with defaults and environment overrides wired.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// ReadFile reads an explicit config file, or searches the working
// directory, $HOME/.config/fskdec and /etc/fskdec when path is empty. A
// missing file on the search path is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
		v.AddConfigPath(filepath.Join("/etc", Name))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return failure.Wrap(failure.KindConfiguration, "config", err)
	}

	return nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, failure.Wrap(failure.KindConfiguration, "config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that can be checked without input audio.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "text", "json", "yaml":
	default:
		return invalid("output format %q (want text, json or yaml)", c.Output)
	}

	if _, err := demod.ParseMode(c.Decode.Mode); err != nil {
		return err
	}
	if _, err := spectrum.ParseWindow(c.Decode.Window); err != nil {
		return failure.Wrap(failure.KindConfiguration, "config", err)
	}
	if c.Decode.Workers < 0 {
		return invalid("workers must not be negative, got %d", c.Decode.Workers)
	}
	if err := c.Decode.Params().Validate(); err != nil {
		return err
	}

	if c.Generate.SampleRate <= 0 {
		return invalid("sample rate must be positive, got %d", c.Generate.SampleRate)
	}
	if c.Generate.Channels < 1 {
		return invalid("channels must be at least 1, got %d", c.Generate.Channels)
	}
	if c.Generate.Amplitude < 0 || c.Generate.Amplitude > 1 {
		return invalid("amplitude must be within [0, 1], got %v", c.Generate.Amplitude)
	}

	return nil
}

// Params converts the decode settings to demodulation parameters.
func (d DecodeConfig) Params() demod.Params {
	return demod.Params{
		IntervalDuration: d.Interval,
		Freq0:            d.Freq0,
		Freq1:            d.Freq1,
		Tolerance:        d.Tolerance,
	}
}

// Options converts the decode settings to demodulator options.
func (d DecodeConfig) Options() ([]demod.Option, error) {
	w, err := spectrum.ParseWindow(d.Window)
	if err != nil {
		return nil, failure.Wrap(failure.KindConfiguration, "config", err)
	}

	opts := []demod.Option{demod.WithWindow(w)}
	if d.Workers > 0 {
		opts = append(opts, demod.WithWorkers(d.Workers))
	}

	return opts, nil
}

func invalid(format string, args ...any) error {
	return failure.New(failure.KindConfiguration, "config", fmt.Sprintf(format, args...))
}
