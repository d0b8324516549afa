// SPDX-License-Identifier: EPL-2.0

// Package cli implements the fskdec command line tool on cobra.
//
//	fskdec decode FILE     print the bits carried by a recording
//	fskdec generate BITS F write an FSK recording of BITS
//	fskdec config          print the effective configuration
package cli
