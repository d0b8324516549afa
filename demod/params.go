// SPDX-License-Identifier: EPL-2.0

package demod

import (
	"fmt"
	"math"

	"github.com/ik5/fskdec/failure"
)

// Params carries the reference tones and interval length of a run.
type Params struct {
	// IntervalDuration is the length of one symbol in seconds.
	IntervalDuration float64 `json:"interval_duration" yaml:"interval_duration"`
	// Freq0 and Freq1 are the reference tones in Hz for symbols 0 and 1.
	Freq0 float64 `json:"freq0" yaml:"freq0"`
	Freq1 float64 `json:"freq1" yaml:"freq1"`
	// Tolerance is the half-width in Hz of the band around each reference tone.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// DefaultParams returns 10 ms intervals, 500/1000 Hz tones and a 50 Hz tolerance.
func DefaultParams() Params {
	return Params{
		IntervalDuration: 0.01,
		Freq0:            500,
		Freq1:            1000,
		Tolerance:        50,
	}
}

// Validate checks the parameters on their own, without a sample rate.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"interval duration", p.IntervalDuration},
		{"freq0", p.Freq0},
		{"freq1", p.Freq1},
		{"tolerance", p.Tolerance},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return configError("%s must be finite, got %v", f.name, f.v)
		}
	}

	switch {
	case p.IntervalDuration <= 0:
		return configError("interval duration must be positive, got %v", p.IntervalDuration)
	case p.Freq0 <= 0:
		return configError("freq0 must be positive, got %v", p.Freq0)
	case p.Freq1 <= 0:
		return configError("freq1 must be positive, got %v", p.Freq1)
	case p.Tolerance < 0:
		return configError("tolerance must not be negative, got %v", p.Tolerance)
	}

	return nil
}

// SamplesPerInterval validates p against sampleRate and returns
// floor(IntervalDuration * sampleRate).
func (p Params) SamplesPerInterval(sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, configError("sample rate must be positive, got %d", sampleRate)
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	n := math.Floor(p.IntervalDuration * float64(sampleRate))
	if n < 2 {
		return 0, configError("interval of %v s at %d Hz holds %v samples, need at least 2",
			p.IntervalDuration, sampleRate, n)
	}
	if n > math.MaxInt32 {
		return 0, configError("interval of %v s at %d Hz is too long", p.IntervalDuration, sampleRate)
	}

	return int(n), nil
}

// Classify maps a dominant frequency to a symbol. Zero is checked first, so
// it wins where the two bands overlap.
func (p Params) Classify(freq float64) Symbol {
	switch {
	case math.Abs(freq-p.Freq0) <= p.Tolerance:
		return Zero
	case math.Abs(freq-p.Freq1) <= p.Tolerance:
		return One
	default:
		return Undetermined
	}
}

func configError(format string, args ...any) error {
	return failure.New(failure.KindConfiguration, "classify", fmt.Sprintf(format, args...))
}
