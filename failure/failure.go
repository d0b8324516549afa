// SPDX-License-Identifier: EPL-2.0

package failure

import (
	"errors"
	"strings"
)

// Kind classifies a failure reported to the caller.
type Kind int

const (
	KindUnknown Kind = iota
	// KindIO: file missing, unreadable, or not a valid waveform container.
	KindIO
	// KindFormat: the container is readable but the sample encoding is not 16-bit PCM.
	KindFormat
	// KindConfiguration: parameters out of range or yielding empty intervals.
	KindConfiguration
	// KindUnsupportedMode: demodulation mode without a defined algorithm.
	KindUnsupportedMode
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindFormat:
		return "format error"
	case KindConfiguration:
		return "configuration error"
	case KindUnsupportedMode:
		return "unsupported mode"
	default:
		return "unknown error"
	}
}

// Error is the structured failure every public operation returns.
type Error struct {
	Kind Kind
	// Op is the operation that failed (e.g. "load", "classify").
	Op  string
	Msg string
	Err error
}

// Sentinels matched by kind with errors.Is.
var (
	ErrIO              = &Error{Kind: KindIO}
	ErrFormat          = &Error{Kind: KindFormat}
	ErrConfiguration   = &Error{Kind: KindConfiguration}
	ErrUnsupportedMode = &Error{Kind: KindUnsupportedMode}
)

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target is an *Error of the same kind that carries
// no message of its own, so the package sentinels match any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Msg != "" || t.Op != "" || t.Err != nil {
		return e == t
	}

	return e.Kind == t.Kind
}

func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}
