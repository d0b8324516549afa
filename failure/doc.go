// SPDX-License-Identifier: EPL-2.0

// Package failure defines the structured error every fskdec operation
// reports: a Kind plus a message.
//
// The kinds are:
//   - KindIO: the file cannot be opened or is not a readable container
//   - KindFormat: the sample encoding is not 16-bit PCM
//   - KindConfiguration: analysis parameters are out of range
//   - KindUnsupportedMode: the requested demodulation has no algorithm
//
// Match a kind with errors.Is against the package sentinels:
//
//	if errors.Is(err, failure.ErrFormat) {
//	    // ask for a 16-bit recording
//	}
//
// The wrapped cause stays reachable, so errors.Is also matches the
// sentinel errors of the format packages.
package failure
