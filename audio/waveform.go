// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Waveform is a fully loaded recording reduced to one sample per frame.
// It is not modified after ReadWaveform returns it.
type Waveform struct {
	SampleRate int
	// Channels is the channel count of the source before reduction.
	Channels int
	// Samples holds one value per frame on the int16 scale.
	Samples []float64
}

// Frames returns the number of frames (mono samples) in the waveform.
func (w *Waveform) Frames() int { return len(w.Samples) }

// Duration of the recording.
func (w *Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(w.Samples)) / float64(w.SampleRate) * float64(time.Second))
}

// ReadWaveform drains src through a MonoMixer and returns the collected
// samples. bufferSize is the number of frames requested per read; values
// below 1 fall back to src.BufSize().
//
// src is not closed.
func ReadWaveform(src Source, bufferSize int) (*Waveform, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if src.Channels() <= 0 {
		return nil, ErrInvalidChannels
	}
	if bufferSize < 1 {
		bufferSize = max(src.BufSize(), 1)
	}

	mono := NewMonoMixer(src)
	buf := make([]float64, bufferSize)
	samples := make([]float64, 0, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// Source made no progress without signalling EOF.
			break
		}
	}

	return &Waveform{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
		Samples:    samples,
	}, nil
}
