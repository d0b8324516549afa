// SPDX-License-Identifier: EPL-2.0

// Package config loads the command line tool settings with viper.
//
// Values come, in order of precedence, from flags, FSKDEC_* environment
// variables (dots become underscores, so decode.freq0 is
// FSKDEC_DECODE_FREQ0), a YAML file, and built-in defaults.
package config
