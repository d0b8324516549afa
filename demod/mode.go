// SPDX-License-Identifier: EPL-2.0

package demod

import (
	"context"
	"strings"

	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/failure"
)

// Mode names a demodulation scheme.
type Mode string

const (
	BFSK Mode = "BFSK"
	BPSK Mode = "BPSK"
	QPSK Mode = "QPSK"
)

// Modes lists every known mode.
func Modes() []Mode { return []Mode{BFSK, BPSK, QPSK} }

func (m Mode) String() string { return string(m) }

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}

	return "", configError("unknown mode %q", s)
}

// Demodulator turns a waveform into a symbol sequence.
type Demodulator interface {
	Mode() Mode
	Demodulate(ctx context.Context, w *audio.Waveform, p Params) (Sequence, error)
}

// New returns the demodulator for mode.
func New(mode Mode, opts ...Option) (Demodulator, error) {
	switch mode {
	case BFSK:
		return NewFSK(opts...), nil
	case BPSK, QPSK:
		return psk{mode: mode}, nil
	}

	return nil, configError("unknown mode %q", string(mode))
}

// psk stands in for phase-shift keyed modes, which have no algorithm yet.
type psk struct {
	mode Mode
}

func (p psk) Mode() Mode { return p.mode }

func (p psk) Demodulate(context.Context, *audio.Waveform, Params) (Sequence, error) {
	return nil, failure.New(failure.KindUnsupportedMode, "classify",
		p.mode.String()+" demodulation is not implemented")
}
