// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/formats/aiff"
)

// ExampleDecoder_Decode shows how to decode an AIFF file into a mono waveform.
func ExampleDecoder_Decode() {
	f, err := os.Open("tones.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := aiff.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	wf, err := audio.ReadWaveform(src, 4096)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded AIFF: %d Hz, %d frames\n", wf.SampleRate, wf.Frames())
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid AIFF files.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Error:", err)
	}

	// Output:
	// Error: not an AIFF file
}
