// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"time"

	"github.com/ik5/fskdec"
	"github.com/ik5/fskdec/audio"
	"github.com/ik5/fskdec/demod"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// decodeResult is the structured output of the decode command.
type decodeResult struct {
	File         string           `json:"file" yaml:"file"`
	Mode         string           `json:"mode" yaml:"mode"`
	SampleRate   int              `json:"sample_rate" yaml:"sample_rate"`
	Channels     int              `json:"channels" yaml:"channels"`
	Duration     string           `json:"duration" yaml:"duration"`
	Params       demod.Params     `json:"params" yaml:"params"`
	Intervals    int              `json:"intervals" yaml:"intervals"`
	Undetermined int              `json:"undetermined" yaml:"undetermined"`
	Bits         string           `json:"bits" yaml:"bits"`
	Details      []demod.Interval `json:"details,omitempty" yaml:"details,omitempty"`
}

func (r *decodeResult) text() string { return r.Bits }

func newDecodeCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode the bit sequence of a recording",
		Long: `Decode the bit sequence carried by a recording of FSK tones.

Intervals whose strongest frequency matches neither reference tone are
left out of the result, so bit positions may shift. Use
--keep-undetermined to print them as '?' instead.

Use "-" as FILE to read from standard input (see --format).

Examples:
  # Decode with the default 10 ms intervals and 500/1000 Hz tones
  fskdec decode message.wav

  # Bell 202 style tones at 1200 baud
  fskdec decode --freq0 2200 --freq1 1200 --interval 0.000833 modem.wav

  # Full per-interval report
  fskdec decode --keep-undetermined -o json message.wav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd, args[0], format)
		},
	}

	p := demod.DefaultParams()
	flags := cmd.Flags()
	flags.String("mode", demod.BFSK.String(), "demodulation mode (BFSK, BPSK, QPSK)")
	addToneFlags(cmd, p)
	flags.Float64("tolerance", p.Tolerance, "accepted deviation from a reference tone in Hz")
	flags.Int("workers", 0, "intervals analysed concurrently (0 uses every CPU)")
	flags.String("window", "rectangular", "window applied to each interval (rectangular, hamming, hann)")
	flags.Bool("keep-undetermined", false, "print '?' for intervals matching neither tone")
	flags.StringVar(&format, "format", "wav", "input format when reading standard input")

	return cmd
}

func addToneFlags(cmd *cobra.Command, p demod.Params) {
	cmd.Flags().Float64("interval", p.IntervalDuration, "interval length in seconds")
	cmd.Flags().Float64("freq0", p.Freq0, "reference tone for 0 in Hz")
	cmd.Flags().Float64("freq1", p.Freq1, "reference tone for 1 in Hz")
}

func (a *app) runDecode(cmd *cobra.Command, file, format string) error {
	dc := a.cfg.Decode
	params := dc.Params()

	mode, err := demod.ParseMode(dc.Mode)
	if err != nil {
		return err
	}
	opts, err := dc.Options()
	if err != nil {
		return err
	}

	d, err := demod.New(mode, append(opts, demod.WithLogger(a.log))...)
	if err != nil {
		return err
	}
	fsk, ok := d.(*demod.FSK)
	if !ok {
		// No algorithm for this mode; report it before reading any input.
		_, err := d.Demodulate(cmd.Context(), nil, params)
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	began := time.Now()
	w, err := load(cmd, file, format)
	if err != nil {
		return err
	}
	a.log.Debug("loaded recording",
		zap.String("file", file),
		zap.Int("sample_rate", w.SampleRate),
		zap.Int("channels", w.Channels),
		zap.Int("frames", w.Frames()),
		zap.Duration("elapsed", time.Since(began)),
	)

	intervals, err := fsk.Analyze(cmd.Context(), w, params)
	if err != nil {
		return err
	}

	seq := demod.Determined(intervals)
	if dc.KeepUndetermined {
		seq = demod.Positional(intervals)
	}

	res := &decodeResult{
		File:         file,
		Mode:         mode.String(),
		SampleRate:   w.SampleRate,
		Channels:     w.Channels,
		Duration:     w.Duration().String(),
		Params:       params,
		Intervals:    len(intervals),
		Undetermined: len(intervals) - len(demod.Determined(intervals)),
		Bits:         seq.String(),
	}
	if dc.KeepUndetermined {
		res.Details = intervals
	}

	a.log.Info("decoded",
		zap.String("file", file),
		zap.Int("intervals", res.Intervals),
		zap.Int("undetermined", res.Undetermined),
		zap.Int("bits", len(seq)),
		zap.Duration("elapsed", time.Since(began)),
	)

	return render(cmd.OutOrStdout(), a.cfg.Output, res)
}

func load(cmd *cobra.Command, file, format string) (*audio.Waveform, error) {
	if file == "-" {
		return fskdec.LoadFrom(cmd.InOrStdin(), format)
	}

	return fskdec.Load(file)
}
