// SPDX-License-Identifier: EPL-2.0

package spectrum

import "errors"

var (
	// ErrTooShort indicates a block with fewer than two samples, which has
	// no non-negative frequency bins to pick from.
	ErrTooShort = errors.New("block too short for spectral analysis")

	// ErrUnknownWindow indicates an unrecognised window name
	ErrUnknownWindow = errors.New("unknown window")
)
