// SPDX-License-Identifier: EPL-2.0

package fskdec_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/fskdec"
	"github.com/ik5/fskdec/demod"
	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/formats/wav"
	"github.com/ik5/fskdec/synth"
)

// Example_decode keys a short message onto two tones, stores it as a WAV
// file and decodes it back.
func Example_decode() {
	p := demod.DefaultParams()
	pcm, _ := synth.FSK("01000110", p, 8000, 0.5)

	dir, _ := os.MkdirTemp("", "fskdec-example")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "message.wav")
	f, _ := os.Create(path)
	wav.WriteWAV16(f, 8000, pcm)
	f.Close()

	seq, err := fskdec.Decode(context.Background(), path, demod.BFSK, p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(seq)
	// Output: 01000110
}

// Example_loadFrom loads a waveform from an in-memory stream and inspects
// the interval records.
func Example_loadFrom() {
	p := demod.DefaultParams()
	pcm, _ := synth.FSK("10", p, 8000, 0.5)
	// A 750 Hz interval matches neither reference tone.
	pcm = append(pcm, synth.Tone(750, 8000, 80, 0.5)...)

	var buf bytes.Buffer
	wav.WriteWAV16(&buf, 8000, pcm)

	w, err := fskdec.LoadFrom(&buf, "wav")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	intervals, _ := demod.NewFSK().Analyze(context.Background(), w, p)
	for _, iv := range intervals {
		fmt.Printf("%d %v %.0f Hz %s\n", iv.Index, iv.Offset, iv.DominantFrequency, iv.Symbol)
	}
	// Output:
	// 0 0s 1000 Hz 1
	// 1 10ms 500 Hz 0
	// 2 20ms 700 Hz ?
}

// Example_errorHandling shows how failures are told apart by kind.
func Example_errorHandling() {
	_, err := fskdec.Load("does-not-exist.wav")
	fmt.Println(errors.Is(err, failure.ErrIO))

	_, err = fskdec.Decode(context.Background(), "does-not-exist.wav", demod.BPSK, demod.DefaultParams())
	fmt.Println(failure.KindOf(err))
	// Output:
	// true
	// unsupported mode
}
