// SPDX-License-Identifier: EPL-2.0

// Package synth generates tone-keyed PCM, mostly for test fixtures and the
// generate command.
package synth
