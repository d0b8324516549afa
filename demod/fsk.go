// SPDX-License-Identifier: EPL-2.0

package demod

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/spectrum"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FSK classifies each interval by the frequency of its strongest spectral
// bin. It holds no per-run state and is safe for concurrent use.
type FSK struct {
	workers int
	window  spectrum.Window
	log     *zap.Logger
}

func NewFSK(opts ...Option) *FSK {
	d := &FSK{
		workers: runtime.GOMAXPROCS(0),
		window:  spectrum.Rectangular,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *FSK) Mode() Mode { return BFSK }

// Demodulate returns the symbols of the determined intervals in order.
// Undetermined intervals are left out.
func (d *FSK) Demodulate(ctx context.Context, w *audio.Waveform, p Params) (Sequence, error) {
	intervals, err := d.Analyze(ctx, w, p)
	if err != nil {
		return nil, err
	}

	return Determined(intervals), nil
}

// Analyze returns one record per complete interval of w. Samples past the
// last complete interval are ignored.
func (d *FSK) Analyze(ctx context.Context, w *audio.Waveform, p Params) ([]Interval, error) {
	if w == nil {
		return nil, failure.New(failure.KindConfiguration, "classify", "no waveform")
	}

	n, err := p.SamplesPerInterval(w.SampleRate)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := len(w.Samples) / n
	out := make([]Interval, count)
	began := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i := range count {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := i * n
			_, freq, err := spectrum.Dominant(spectrum.Magnitudes(w.Samples[start:start+n], d.window), w.SampleRate)
			if err != nil {
				return failure.Wrap(failure.KindConfiguration, "classify",
					fmt.Errorf("interval %d: %w", i, err))
			}

			out[i] = Interval{
				Index:             i,
				Start:             start,
				Offset:            time.Duration(start) * time.Second / time.Duration(w.SampleRate),
				DominantFrequency: freq,
				Symbol:            p.Classify(freq),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ce := d.log.Check(zap.DebugLevel, "classified intervals"); ce != nil {
		undetermined := 0
		for _, iv := range out {
			if iv.Symbol == Undetermined {
				undetermined++
			}
		}
		ce.Write(
			zap.Int("intervals", count),
			zap.Int("undetermined", undetermined),
			zap.Int("samples_per_interval", n),
			zap.Int("dropped_samples", len(w.Samples)-count*n),
			zap.Stringer("window", d.window),
			zap.Duration("elapsed", time.Since(began)),
		)
	}

	return out, nil
}
