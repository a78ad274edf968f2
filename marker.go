package smartstring

// The marker byte is the first byte of the value's fixed region and the
// only place that knows the control-byte bit layout. Inline writes always
// set the high bit and keep the length in the low seven bits, so no
// sequence of operations ever leaves the whole value all-zero: that
// pattern only occurs on an untouched zero value, which reads back as an
// empty inline string. While the value is boxed the region is repurposed
// for the prefix fragment (see fragment.go) and the marker holds the
// fragment's byte length with the high bit clear.
//
// The authoritative inline/boxed discriminant is the boxed pointer being
// nil; the marker bit exists so that a stale or partially written region
// can never masquerade as valid inline content.

const (
	markerInlineBit = 0x80
	markerLenMask   = 0x7f
)

// markerInline assembles the marker byte for an inline string of n bytes.
// n must not exceed MaxInline; every write path checks that before
// getting here.
func markerInline(n int) byte {
	return markerInlineBit | byte(n)
}

// markerLen extracts the inline length from a marker byte. The zero
// value's marker (0x00) decodes as length zero.
func markerLen(m byte) int {
	return int(m & markerLenMask)
}

// markerIsInline reports whether the marker byte was written by an inline
// representation.
func markerIsInline(m byte) bool {
	return m&markerInlineBit != 0
}
