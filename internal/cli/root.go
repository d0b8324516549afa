// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/fskdec/failure"
	"github.com/ik5/fskdec/internal/config"
	"github.com/ik5/fskdec/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flagKeys maps command line flags to their configuration keys.
var flagKeys = map[string]string{
	"log-level":         "log_level",
	"log-development":   "log_development",
	"output":            "output",
	"mode":              "decode.mode",
	"interval":          "decode.interval",
	"freq0":             "decode.freq0",
	"freq1":             "decode.freq1",
	"tolerance":         "decode.tolerance",
	"workers":           "decode.workers",
	"window":            "decode.window",
	"keep-undetermined": "decode.keep_undetermined",
	"sample-rate":       "generate.sample_rate",
	"channels":          "generate.channels",
	"amplitude":         "generate.amplitude",
}

// app carries the state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCommand builds the fskdec command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fskdec",
		Short: "Decode binary messages from FSK tone recordings",
		Long: `fskdec recovers a bit sequence from a recording of frequency-shift keyed
tones. The recording is cut into fixed-length intervals and each interval
becomes 0, 1 or undetermined depending on its strongest frequency.

Supported inputs: 16-bit PCM WAV and AIFF, MP3 and Ogg Vorbis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"config file (default is ./fskdec.yaml, $HOME/.config/fskdec/fskdec.yaml or /etc/fskdec/fskdec.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-development", false, "human readable development logging")
	root.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml)")

	root.AddCommand(
		newDecodeCommand(a),
		newGenerateCommand(a),
		newConfigCommand(a),
	)

	return root
}

// initialize binds the flags of the running command, reads the config file
// and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := bindFlags(cmd.Flags(), a.v); err != nil {
		return failure.Wrap(failure.KindConfiguration, "config", err)
	}
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return failure.Wrap(failure.KindConfiguration, "config", err)
	}

	a.cfg = cfg
	a.log = log.Named("fskdec")
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

func bindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			errs = append(errs, v.BindPFlag(key, f))
		}
	})

	return errors.Join(errs...)
}

// Execute runs the command line with args and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", describe(err))
		return 1
	}

	return 0
}

// describe renders err as "<kind>: <message>".
func describe(err error) string {
	var fe *failure.Error
	if !errors.As(err, &fe) {
		return err.Error()
	}

	msg := fe.Msg
	if fe.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += fe.Err.Error()
	}
	if msg == "" {
		return fe.Kind.String()
	}

	return fe.Kind.String() + ": " + msg
}
