// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so chunks other than "fmt " and
// "data" (LIST, fact, padding) are skipped instead of rejected.
//
// # Supported Formats
//
// Only 16-bit signed PCM is accepted, in any channel count and at any
// sample rate. Other bit depths and non-PCM encodings are rejected with
// ErrOnlyPCM16bitSupported.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("capture.wav")
//	source, err := decoder.Decode(file)
//
//	buf := make([]float64, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come back interleaved, on the int16 scale, as float64.
//
// # Writing WAV Files
//
// WritePCM16 writes interleaved frames with a canonical 44-byte header;
// WriteWAV16 is the mono shorthand:
//
//	file, _ := os.Create("tone.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrUnsupportedWavLayout: no usable fmt chunk
//   - ErrUnsupportedWavChunks: no data chunk
//   - ErrOnlyPCM16bitSupported: encoding other than 16-bit PCM
//   - ErrInvalidChannels: writer input is not a whole number of frames
package wav
