// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"

	"github.com/ik5/fskdec/demod"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/utils"
)

// Tone returns n samples of a sine at freq Hz. amplitude is a fraction of
// full scale.
func Tone(freq float64, rate, n int, amplitude float64) []int16 {
	out := make([]int16, max(n, 0))
	step := 2 * math.Pi * freq / float64(rate)
	for i := range out {
		out[i] = utils.FloatToInt16(amplitude * math.Sin(step*float64(i)))
	}

	return out
}

// FSK keys bits ('0' and '1') onto the two reference tones of p, one
// interval per bit. Phase carries over between bits.
func FSK(bits string, p demod.Params, rate int, amplitude float64) ([]int16, error) {
	n, err := p.SamplesPerInterval(rate)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(amplitude) || amplitude < 0 || amplitude > 1 {
		return nil, failure.New(failure.KindConfiguration, "synthesize",
			fmt.Sprintf("amplitude must be within [0, 1], got %v", amplitude))
	}

	seq, err := demod.ParseSequence(bits)
	if err != nil {
		return nil, err
	}

	out := make([]int16, 0, len(seq)*n)
	phase := 0.0
	for i, sym := range seq {
		var freq float64
		switch sym {
		case demod.Zero:
			freq = p.Freq0
		case demod.One:
			freq = p.Freq1
		default:
			return nil, failure.New(failure.KindConfiguration, "synthesize",
				fmt.Sprintf("bit %d is undetermined", i))
		}

		step := 2 * math.Pi * freq / float64(rate)
		for range n {
			out = append(out, utils.FloatToInt16(amplitude*math.Sin(phase)))
			phase = math.Mod(phase+step, 2*math.Pi)
		}
	}

	return out, nil
}

// Interleave copies mono into every one of channels channels.
func Interleave(mono []int16, channels int) []int16 {
	if channels <= 1 {
		return mono
	}

	out := make([]int16, len(mono)*channels)
	for i, s := range mono {
		for c := range channels {
			out[i*channels+c] = s
		}
	}

	return out
}

// Float promotes samples to float64 without scaling, the form a mono
// waveform holds them in.
func Float(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}

	return out
}
