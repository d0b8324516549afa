// SPDX-License-Identifier: EPL-2.0

package demod

import (
	"github.com/ik5/fskdec/spectrum"
	"go.uber.org/zap"
)

type Option func(*FSK)

// WithWorkers bounds the number of intervals analysed at once. Values below
// 1 are ignored.
func WithWorkers(n int) Option {
	return func(d *FSK) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithWindow sets the taper applied to each interval before the transform.
func WithWindow(w spectrum.Window) Option {
	return func(d *FSK) { d.window = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(d *FSK) {
		if l != nil {
			d.log = l
		}
	}
}
