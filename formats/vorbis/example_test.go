// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/formats/vorbis"
)

// ExampleDecoder_Decode shows how to decode an Ogg Vorbis file into a mono waveform.
func ExampleDecoder_Decode() {
	f, err := os.Open("tones.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	wf, err := audio.ReadWaveform(src, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded Vorbis: %d Hz, %d frames\n", wf.SampleRate, wf.Frames())
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid data.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("OggS?")))
	fmt.Println(errors.Is(err, vorbis.ErrNotVorbisFile))

	// Output:
	// true
}
