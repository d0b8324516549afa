// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Window selects the taper applied to a block before the transform.
type Window int

const (
	Rectangular Window = iota
	Hamming
	Hann
)

func (w Window) String() string {
	switch w {
	case Rectangular:
		return "rectangular"
	case Hamming:
		return "hamming"
	case Hann:
		return "hann"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// ParseWindow maps a window name to its Window value. Matching is case insensitive.
func ParseWindow(name string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rectangular", "rect", "none":
		return Rectangular, nil
	case "hamming":
		return Hamming, nil
	case "hann", "hanning":
		return Hann, nil
	}

	return Rectangular, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

func (w Window) coefficients() func(int) []float64 {
	switch w {
	case Hamming:
		return window.Hamming
	case Hann:
		return window.Hann
	default:
		return nil
	}
}

// Magnitudes returns |X[k]| of the discrete Fourier transform of block for
// every bin k in [0, len(block)). block is not modified.
func Magnitudes(block []float64, w Window) []float64 {
	if len(block) == 0 {
		return nil
	}

	in := block
	if fn := w.coefficients(); fn != nil {
		in = make([]float64, len(block))
		copy(in, block)
		window.Apply(in, fn)
	}

	coeffs := fft.FFTReal(in)
	mags := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mags[k] = cmplx.Abs(c)
	}

	return mags
}

// BinFrequency is the frequency in Hz of bin k of an n-point transform at sampleRate.
func BinFrequency(k, n, sampleRate int) float64 {
	return float64(k) * float64(sampleRate) / float64(n)
}

// Dominant returns the index and frequency of the strongest bin among the
// non-negative frequencies [0, n/2) of an n-point transform. Ties resolve to
// the lowest index.
func Dominant(mags []float64, sampleRate int) (int, float64, error) {
	half := len(mags) / 2
	if half == 0 {
		return 0, 0, fmt.Errorf("%w: %d-point transform", ErrTooShort, len(mags))
	}

	k := floats.MaxIdx(mags[:half])

	return k, BinFrequency(k, len(mags), sampleRate), nil
}

// DominantFrequency transforms block and returns the frequency of its
// strongest non-negative bin.
func DominantFrequency(block []float64, sampleRate int, w Window) (float64, error) {
	_, f, err := Dominant(Magnitudes(block, w), sampleRate)

	return f, err
}
