package smartstring

import "unicode/utf8"

// inlineString is a borrowed view over the value's fixed region while the
// content lives inline: region[0] is the marker byte, region[1:] is the
// content buffer. It is a view, not an owner; copying the parent value
// copies the content with it.
type inlineString struct {
	region *[regionSize]byte
}

func (s *inlineString) size() int { return markerLen(s.region[0]) }

func (s *inlineString) setSize(n int) { s.region[0] = markerInline(n) }

func (s *inlineString) capSlice() []byte { return s.region[1:] }

func (s *inlineString) bytes() []byte { return s.region[1 : 1+s.size()] }

// inlineFromBytes builds a fresh inline region holding a copy of b.
// Content that exceeds the inline capacity or is not valid UTF-8 is a
// caller contract violation.
func inlineFromBytes(b []byte) [regionSize]byte {
	if len(b) > MaxInline {
		panic("smartstring: content exceeds inline capacity")
	}
	if !utf8.Valid(b) {
		panic("smartstring: invalid UTF-8 content")
	}
	var region [regionSize]byte
	region[0] = markerInline(len(b))
	copy(region[1:], b)
	return region
}
