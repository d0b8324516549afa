// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the decoder is
// built on.
//
// This package contains:
//   - Source interface for audio input
//   - Decoder interface and the format Registry
//   - MonoMixer for channel reduction
//   - Waveform, a fully loaded mono recording, and ReadWaveform
//
// # Source Interface
//
// The Source interface is the foundation of audio ingestion:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface.
//
// # Sample Format
//
// Samples are the signed 16-bit PCM values of the recording promoted to
// float64, in the range [-32768, 32767]. Nothing is normalized: a decoded
// sample of 1200 is read back as 1200.0.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by taking the
// arithmetic mean of every frame:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The mean is kept as a fraction; frames (1, 2) mix to 1.5.
//
// # Loading a Waveform
//
// ReadWaveform drains a Source through a MonoMixer:
//
//	w, err := audio.ReadWaveform(source, 4096)
//	// w.Samples has one value per frame, w.Channels the source channel count
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, format, ok := registry.ForPath("capture.wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
