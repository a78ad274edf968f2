package smartstring

import (
	"iter"
	"unicode/utf8"
)

// Drain removes the bytes in [start, end) from the string and returns the
// removed characters. The removal happens before Drain returns, so the
// value is already in its final, valid representation no matter what the
// caller later does (or doesn't do) with the iterator. Panics if the
// bounds are out of range or off a character boundary.
func (s *String[M]) Drain(start, end int) *Drain {
	content := s.viewBytes()
	if start > end || end > len(content) {
		panic("smartstring: range out of bounds")
	}
	checkBoundary(content, start)
	checkBoundary(content, end)
	removed := string(content[start:end])
	removeBytes(s.gen(), start, end)
	s.afterShrink()
	return &Drain{rest: removed}
}

// Drain iterates over the characters removed by String.Drain. It owns a
// copy of the removed content and is independent of the source value.
type Drain struct {
	rest string
}

// Next returns the next removed character; the bool is false once the
// iterator is exhausted.
func (d *Drain) Next() (rune, bool) {
	if len(d.rest) == 0 {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(d.rest)
	d.rest = d.rest[w:]
	return r, true
}

// All returns the remaining removed characters as a range-able iterator.
func (d *Drain) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := d.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// String returns the remaining removed content.
func (d *Drain) String() string { return d.rest }
