// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// floating point samples in [-1, 1]; the source rescales them onto the
// int16 scale so a Vorbis file and a 16-bit PCM file of the same signal
// produce comparable magnitudes.
//
//	f, _ := os.Open("tones.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// ReadSamples only returns whole frames, so the destination should hold at
// least Channels() values.
package vorbis
