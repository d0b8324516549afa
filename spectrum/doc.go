// SPDX-License-Identifier: EPL-2.0

// Package spectrum finds the dominant frequency of a block of samples.
//
// The magnitude spectrum comes from github.com/mjibson/go-dsp/fft, which
// accepts any block length (radix-2 or Bluestein). Only bins below n/2 are
// considered, so the DC bin takes part and the Nyquist bin does not.
package spectrum
