// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// 16-bit PCM is accepted; other bit depths fail with
// ErrOnlyPCM16bitSupported.
//
//	f, _ := os.Open("tones.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are returned interleaved on the int16 scale, so a full-scale
// positive sample reads as 32767.
//
// AIFF is big-endian where WAV is little-endian; the decoder handles the
// byte order, and the result is indistinguishable from a WAV source with
// the same content.
//
// Files typically use the .aif or .aiff extension. AIFF-C (.aifc) with
// compression is not supported.
package aiff
