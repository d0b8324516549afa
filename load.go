// SPDX-License-Identifier: EPL-2.0

package fskdec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/formats/aiff"
	"github.com/ik5/fskdec/formats/mp3"
	"github.com/ik5/fskdec/formats/vorbis"
	"github.com/ik5/fskdec/formats/wav"
)

// DefaultBufferSize is the number of frames requested per read while loading.
const DefaultBufferSize = 4096

// DefaultRegistry maps file extensions to the bundled decoders.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

// decoderFor falls back to WAV for unknown or missing extensions.
func decoderFor(path string) (audio.Decoder, string) {
	if d, format, ok := DefaultRegistry.ForPath(path); ok {
		return d, format
	}

	return wav.Decoder{}, "wav"
}

// fileSource closes the underlying file together with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.f.Close())
}

// Open decodes the header of the file at path and returns its sample stream.
// The caller must Close the source.
func Open(path string) (audio.Source, error) {
	dec, _ := decoderFor(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.KindIO, "load", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, decodeFailure(path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Load reads the whole recording at path and reduces it to one sample per
// frame by averaging its channels. The format is picked by file extension.
func Load(path string) (*audio.Waveform, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	w, err := audio.ReadWaveform(src, DefaultBufferSize)
	if err != nil {
		return nil, failure.Wrap(failure.KindIO, "load", fmt.Errorf("%s: %w", path, err))
	}

	return w, nil
}

// LoadFrom is Load for an already open stream. format is a registry key such
// as "wav" or "ogg"; an empty format means WAV.
func LoadFrom(r io.Reader, format string) (*audio.Waveform, error) {
	dec, ok := DefaultRegistry.Get(strings.TrimPrefix(format, "."))
	if !ok {
		if format != "" {
			return nil, failure.New(failure.KindConfiguration, "load",
				fmt.Sprintf("unknown format %q (known: %s)", format, strings.Join(DefaultRegistry.Formats(), ", ")))
		}
		dec = wav.Decoder{}
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, decodeFailure("stream", err)
	}
	defer src.Close()

	w, err := audio.ReadWaveform(src, DefaultBufferSize)
	if err != nil {
		return nil, failure.Wrap(failure.KindIO, "load", err)
	}

	return w, nil
}

// decodeFailure sorts decoder errors: a readable container with the wrong
// sample encoding is a format error, anything else an I/O error.
func decodeFailure(name string, err error) error {
	kind := failure.KindIO
	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) || errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
		kind = failure.KindFormat
	}

	return failure.Wrap(kind, "load", fmt.Errorf("%s: %w", name, err))
}
