// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, which always produces
// 16-bit little-endian stereo PCM. The source converts that stream to
// interleaved float64 samples on the int16 scale.
//
//	f, _ := os.Open("tones.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Lossy compression smears spectral energy, so tone frequencies decoded from
// an MP3 are less sharp than from PCM. Widen the tolerance when demodulating
// MP3 input.
package mp3
