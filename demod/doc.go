// SPDX-License-Identifier: EPL-2.0

// Package demod recovers binary symbols from a tone-keyed waveform.
//
// The waveform is cut into back-to-back intervals of
// floor(IntervalDuration * SampleRate) samples. Each interval is classified
// on its own: the frequency of the strongest non-negative spectral bin is
// compared against the two reference tones, and an interval matching
// neither is undetermined.
//
//	d, err := demod.New(demod.BFSK, demod.WithWorkers(4))
//	if err != nil {
//	    // Handle error
//	}
//	seq, err := d.Demodulate(ctx, waveform, demod.DefaultParams())
//	fmt.Println(seq) // e.g. "0110"
//
// Demodulate drops undetermined intervals, so the result is not aligned with
// interval positions. FSK.Analyze returns every interval with its dominant
// frequency for callers that need the positions.
//
// BPSK and QPSK are recognised but return an unsupported mode error.
package demod
