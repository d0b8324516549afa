// SPDX-License-Identifier: EPL-2.0

package fskdec

import (
	"context"

	"github.com/ik5/fskdec/demod"
)

// Decode loads the recording at path and demodulates it with mode.
// An unsupported or unknown mode fails before the file is read.
func Decode(ctx context.Context, path string, mode demod.Mode, p demod.Params, opts ...demod.Option) (demod.Sequence, error) {
	d, err := demod.New(mode, opts...)
	if err != nil {
		return nil, err
	}
	if mode != demod.BFSK {
		// Surface the unsupported mode without touching the file.
		return d.Demodulate(ctx, nil, p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w, err := Load(path)
	if err != nil {
		return nil, err
	}

	return d.Demodulate(ctx, w, p)
}
