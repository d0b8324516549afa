// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/fskdec/demod"
	"github.com/ik5/fskdec/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "BFSK", cfg.Decode.Mode)
	assert.Equal(t, "rectangular", cfg.Decode.Window)
	assert.Equal(t, demod.DefaultParams(), cfg.Decode.Params())
	assert.Equal(t, 8000, cfg.Generate.SampleRate)
	assert.Equal(t, 1, cfg.Generate.Channels)
	assert.InDelta(t, 0.8, cfg.Generate.Amplitude, 1e-12)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FSKDEC_DECODE_FREQ0", "1200")
	t.Setenv("FSKDEC_DECODE_FREQ1", "2200")
	t.Setenv("FSKDEC_OUTPUT", "json")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.InDelta(t, 1200, cfg.Decode.Freq0, 1e-12)
	assert.InDelta(t, 2200, cfg.Decode.Freq1, 1e-12)
	assert.Equal(t, "json", cfg.Output)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte(`
log_level: debug
decode:
  interval: 0.02
  tolerance: 25
  window: hann
  keep_undetermined: true
generate:
  channels: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 0.02, cfg.Decode.Interval, 1e-12)
	assert.InDelta(t, 25, cfg.Decode.Tolerance, 1e-12)
	assert.Equal(t, "hann", cfg.Decode.Window)
	assert.True(t, cfg.Decode.KeepUndetermined)
	assert.Equal(t, 2, cfg.Generate.Channels)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 500, cfg.Decode.Freq0, 1e-12)
}

func TestReadFile_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	err := ReadFile(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, failure.ErrConfiguration)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		value any
	}{
		{"output", "xml"},
		{"decode.mode", "FM"},
		{"decode.window", "kaiser"},
		{"decode.workers", -1},
		{"decode.interval", 0},
		{"decode.freq0", -500},
		{"decode.tolerance", -1},
		{"generate.sample_rate", 0},
		{"generate.channels", 0},
		{"generate.amplitude", 2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			v := New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.ErrorIs(t, err, failure.ErrConfiguration)
		})
	}
}

func TestDecodeConfig_Options(t *testing.T) {
	t.Parallel()

	cfg, err := Load(New())
	require.NoError(t, err)

	opts, err := cfg.Decode.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	cfg.Decode.Workers = 3
	opts, err = cfg.Decode.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	cfg.Decode.Window = "triangle"
	_, err = cfg.Decode.Options()
	require.ErrorIs(t, err, failure.ErrConfiguration)
}
