// SPDX-License-Identifier: EPL-2.0

package fskdec

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/fskdec/demod"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/formats/wav"
	"github.com/ik5/fskdec/synth"
)

func writeWAV(t *testing.T, name string, rate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	if err := wav.WritePCM16(f, rate, channels, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	return path
}

// write8BitWAV builds a minimal unsigned 8-bit PCM file by hand.
func write8BitWAV(t *testing.T) string {
	t.Helper()

	data := []byte{128, 200, 56, 128}
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))    // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))    // channels
	binary.Write(&buf, binary.LittleEndian, uint32(8000)) // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(8000)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(1))    // block align
	binary.Write(&buf, binary.LittleEndian, uint16(8))    // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	path := filepath.Join(t.TempDir(), "eight.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	return path
}

func TestLoad_Mono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768, 7}
	w, err := Load(writeWAV(t, "mono.wav", 8000, 1, samples))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if w.SampleRate != 8000 || w.Channels != 1 {
		t.Errorf("Load() rate/channels = %d/%d, want 8000/1", w.SampleRate, w.Channels)
	}
	if w.Frames() != len(samples) {
		t.Fatalf("Load() frames = %d, want %d", w.Frames(), len(samples))
	}
	for i, s := range samples {
		if w.Samples[i] != float64(s) {
			t.Errorf("Samples[%d] = %v, want %d", i, w.Samples[i], s)
		}
	}
}

func TestLoad_StereoAveraged(t *testing.T) {
	t.Parallel()

	// Frames: (100, -300), (1, 2), (-32768, -32768)
	interleaved := []int16{100, -300, 1, 2, -32768, -32768}
	w, err := Load(writeWAV(t, "stereo.wav", 16000, 2, interleaved))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []float64{-100, 1.5, -32768}
	if w.Channels != 2 {
		t.Errorf("Load() channels = %d, want 2", w.Channels)
	}
	if w.Frames() != len(want) {
		t.Fatalf("Load() frames = %d, want %d", w.Frames(), len(want))
	}
	for i := range want {
		if w.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %v, want %v", i, w.Samples[i], want[i])
		}
	}
}

func TestLoad_UnknownExtensionReadsWAV(t *testing.T) {
	t.Parallel()

	w, err := Load(writeWAV(t, "capture.bin", 8000, 1, []int16{1, 2, 3}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if w.Frames() != 3 {
		t.Errorf("Load() frames = %d, want 3", w.Frames())
	}
}

func TestLoad_AIFF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tones.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	enc := aiff.NewEncoder(f, 8000, 16, 2)
	buf := &goaudio.IntBuffer{
		Data:           []int{10, 30, -10, -30},
		Format:         &goaudio.Format{SampleRate: 8000, NumChannels: 2},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Encoder.Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Encoder.Close() error = %v", err)
	}
	f.Close()

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []float64{20, -20}
	if w.Frames() != len(want) {
		t.Fatalf("Load() frames = %d, want %d", w.Frames(), len(want))
	}
	for i := range want {
		if w.Samples[i] != want[i] {
			t.Errorf("Samples[%d] = %v, want %v", i, w.Samples[i], want[i])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("definitely not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		kind failure.Kind
	}{
		{"missing file", filepath.Join(dir, "missing.wav"), failure.KindIO},
		{"not a container", garbage, failure.KindIO},
		{"8-bit samples", write8BitWAV(t), failure.KindFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := failure.KindOf(err); got != tt.kind {
				t.Errorf("Load() kind = %v, want %v (err: %v)", got, tt.kind, err)
			}
		})
	}
}

func TestLoad_FormatErrorKeepsCause(t *testing.T) {
	t.Parallel()

	_, err := Load(write8BitWAV(t))
	if !errors.Is(err, failure.ErrFormat) {
		t.Errorf("errors.Is(err, failure.ErrFormat) = false for %v", err)
	}
	if !errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
		t.Errorf("errors.Is(err, wav.ErrOnlyPCM16bitSupported) = false for %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 8000, []int16{5, 6, 7}); err != nil {
		t.Fatal(err)
	}

	w, err := LoadFrom(bytes.NewReader(buf.Bytes()), "")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if w.Frames() != 3 {
		t.Errorf("LoadFrom() frames = %d, want 3", w.Frames())
	}

	if _, err := LoadFrom(bytes.NewReader(buf.Bytes()), ".WAV"); err != nil {
		t.Errorf("LoadFrom(.WAV) error = %v", err)
	}

	_, err = LoadFrom(bytes.NewReader(buf.Bytes()), "flac")
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Errorf("LoadFrom(flac) error = %v, want configuration error", err)
	}
}

func TestDefaultRegistry_Formats(t *testing.T) {
	t.Parallel()

	got := strings.Join(DefaultRegistry.Formats(), ",")
	want := "aif,aiff,mp3,ogg,wav,wave"
	if got != want {
		t.Errorf("Formats() = %q, want %q", got, want)
	}
}

func TestDecode_EndToEnd(t *testing.T) {
	t.Parallel()

	p := demod.DefaultParams()
	bits := "0100100001101001"

	pcm, err := synth.FSK(bits, p, 8000, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	// Half an interval of trailing silence is dropped.
	pcm = append(pcm, make([]int16, 40)...)

	tests := []struct {
		name     string
		channels int
	}{
		{"mono", 1},
		{"stereo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeWAV(t, tt.name+".wav", 8000, tt.channels, synth.Interleave(pcm, tt.channels))
			seq, err := Decode(context.Background(), path, demod.BFSK, p)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if seq.String() != bits {
				t.Errorf("Decode() = %q, want %q", seq, bits)
			}
		})
	}
}

func TestDecode_OffBandTone(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, "750.wav", 8000, 1, synth.Tone(750, 8000, 8000, 0.5))
	seq, err := Decode(context.Background(), path, demod.BFSK, demod.DefaultParams())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(seq) != 0 {
		t.Errorf("Decode() = %q, want empty", seq)
	}
}

func TestDecode_FailsBeforeReading(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.wav")

	_, err := Decode(context.Background(), missing, demod.QPSK, demod.DefaultParams())
	if !errors.Is(err, failure.ErrUnsupportedMode) {
		t.Errorf("Decode(QPSK) error = %v, want unsupported mode", err)
	}

	_, err = Decode(context.Background(), missing, demod.BFSK, demod.Params{IntervalDuration: -1, Freq0: 500, Freq1: 1000})
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Errorf("Decode(bad params) error = %v, want configuration error", err)
	}

	_, err = Decode(context.Background(), missing, demod.BFSK, demod.DefaultParams())
	if !errors.Is(err, failure.ErrIO) {
		t.Errorf("Decode(missing) error = %v, want io error", err)
	}
}

func BenchmarkLoad(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.wav")
	f, err := os.Create(path)
	if err != nil {
		b.Fatal(err)
	}
	if err := wav.WritePCM16(f, 44100, 2, synth.Interleave(synth.Tone(1000, 44100, 44100, 0.5), 2)); err != nil {
		b.Fatal(err)
	}
	f.Close()

	for b.Loop() {
		if _, err := Load(path); err != nil {
			b.Fatal(err)
		}
	}
}
