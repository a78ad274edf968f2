package smartstring

import "unicode/utf8"

// While a Prefixed-mode value is boxed, the fixed region doubles as a
// prefix cache: region[0] is the prefix byte length, region[1] its
// character count, region[2:] the prefix bytes, truncated to the nearest
// character boundary. Compact and LazyCompact leave the region zeroed
// while boxed.

// refreshFragment recomputes the cached prefix from the boxed content.
// Called after every boxed mutation; a no-op for non-Prefixed modes and
// for inline values.
func (s *String[M]) refreshFragment() {
	var m M
	if !m.PrefixCached() || s.boxed == nil {
		return
	}
	content := s.boxed.buf
	n := len(content)
	if n > FragmentSize {
		n = FragmentSize
		for n > 0 && !utf8.RuneStart(content[n]) {
			n--
		}
	}
	var region [regionSize]byte
	region[0] = byte(n)
	region[1] = byte(utf8.RuneCount(content[:n]))
	copy(region[2:], content[:n])
	s.region = region
}

// fragment returns the cached prefix bytes and their character count.
// Only meaningful while boxed in Prefixed mode.
func (s *String[M]) fragment() ([]byte, int) {
	n := int(s.region[0])
	return s.region[2 : 2+n], int(s.region[1])
}
