// Package daily derives the deterministic answers of the day.
//
// Everything here is a pure function of a date key and the catalog order:
// two processes that agree on both always pick the same answers.
package daily

import (
	"unicode/utf16"
)

// Stream is a reproducible sequence of values in [0,1) seeded by a string.
//
// Each pull folds the next character code of the seed into a 32-bit
// accumulator (acc = acc*31 + code, wrapping at 2^32), cycling through the
// seed indefinitely. The accumulator is read as a signed 32-bit integer and
// mapped with (acc/2^32 + 1)/2, so every value falls in [0.25, 0.75).
//
// Stream is not safe for concurrent use and is not random in any
// statistical or cryptographic sense.
type Stream struct {
	units []uint16
	acc   uint32
	index int
}

// NewStream seeds a stream from key, read as UTF-16 code units.
func NewStream(key string) *Stream {
	units := utf16.Encode([]rune(key))
	if len(units) == 0 {
		units = []uint16{0}
	}
	return &Stream{units: units}
}

// Next advances the stream and returns the next value.
func (s *Stream) Next() float64 {
	s.acc = s.acc*31 + uint32(s.units[s.index%len(s.units)])
	s.index++
	return (float64(int32(s.acc))/(1<<32) + 1) / 2
}

// Intn pulls one value and scales it to an index in [0,n). n must be > 0.
func (s *Stream) Intn(n int) int {
	i := int(s.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
