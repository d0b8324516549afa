// SPDX-License-Identifier: EPL-2.0

// Package fskdec recovers a binary message from a recording of
// frequency-shift keyed tones.
//
// A recording is loaded into a mono waveform, cut into fixed-length
// intervals, and each interval is mapped to 0, 1 or undetermined by the
// frequency of its strongest spectral component.
//
// # Supported Formats
//
// The loader picks a decoder by file extension:
//   - WAV (.wav, .wave), 16-bit PCM only, via formats/wav
//   - AIFF (.aif, .aiff), 16-bit PCM only, via formats/aiff
//   - MP3 (.mp3) via formats/mp3
//   - Ogg Vorbis (.ogg) via formats/vorbis
//
// Any other extension is read as WAV.
//
// # Quick Start
//
//	seq, err := fskdec.Decode(ctx, "message.wav", demod.BFSK, demod.DefaultParams())
//	if err != nil {
//	    // errors.Is(err, failure.ErrFormat) etc.
//	}
//	fmt.Println(seq) // "01101000..."
//
// # Step by Step
//
//	w, err := fskdec.Load("message.wav")
//	d := demod.NewFSK(demod.WithWorkers(4))
//	intervals, err := d.Analyze(ctx, w, demod.DefaultParams())
//
// Load averages all channels of each frame and keeps the samples on the
// int16 scale. Nothing is resampled, filtered or normalized.
//
// # Errors
//
// Every failure is a *failure.Error whose kind tells I/O problems, wrong
// sample encodings, bad parameters and unsupported modes apart.
package fskdec
