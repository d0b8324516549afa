// SPDX-License-Identifier: EPL-2.0

package demod

import (
	"strings"
	"time"
)

// Symbol is the decoded value of one interval.
type Symbol int8

const (
	Undetermined Symbol = -1
	Zero         Symbol = 0
	One          Symbol = 1
)

func (s Symbol) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "?"
	}
}

// MarshalText renders the symbol as "0", "1" or "?".
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Sequence is an ordered run of symbols.
type Sequence []Symbol

// String renders the sequence as '0' and '1' characters, with '?' for
// undetermined positions.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, sym := range s {
		b.WriteString(sym.String())
	}

	return b.String()
}

// Bits returns the sequence as 0/1 values, or nil if it holds an undetermined symbol.
func (s Sequence) Bits() []int {
	bits := make([]int, len(s))
	for i, sym := range s {
		if sym == Undetermined {
			return nil
		}
		bits[i] = int(sym)
	}

	return bits
}

// ParseSequence is the inverse of Sequence.String.
func ParseSequence(str string) (Sequence, error) {
	seq := make(Sequence, 0, len(str))
	for i, r := range str {
		switch r {
		case '0':
			seq = append(seq, Zero)
		case '1':
			seq = append(seq, One)
		case '?':
			seq = append(seq, Undetermined)
		default:
			return nil, configError("invalid symbol %q at position %d", r, i)
		}
	}

	return seq, nil
}

// Interval is the analysis record of one complete interval.
type Interval struct {
	Index int `json:"index" yaml:"index"`
	// Start is the offset of the first sample of the interval.
	Start             int           `json:"start" yaml:"start"`
	Offset            time.Duration `json:"offset" yaml:"offset"`
	DominantFrequency float64       `json:"dominant_frequency" yaml:"dominant_frequency"`
	Symbol            Symbol        `json:"symbol" yaml:"symbol"`
}

// Determined keeps the symbols of intervals that matched a band, in order.
func Determined(intervals []Interval) Sequence {
	seq := make(Sequence, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Symbol != Undetermined {
			seq = append(seq, iv.Symbol)
		}
	}

	return seq
}

// Positional keeps one symbol per interval, undetermined ones included.
func Positional(intervals []Interval) Sequence {
	seq := make(Sequence, len(intervals))
	for i, iv := range intervals {
		seq[i] = iv.Symbol
	}

	return seq
}
