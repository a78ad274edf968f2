package smartstring

import (
	"bytes"
	"hash/maphash"
	"unicode/utf8"

	"github.com/bodil/smartstring/internal/common"
)

// Equal reports whether two strings hold identical content, regardless of
// representation, capacity or history. Boxed Prefixed values consult the
// cached fragments first.
func (s *String[M]) Equal(other *String[M]) bool {
	if s.Len() != other.Len() {
		return false
	}
	var m M
	if m.PrefixCached() && s.boxed != nil && other.boxed != nil {
		sf, sc := s.fragment()
		of, oc := other.fragment()
		if sc == oc && !bytes.Equal(sf, of) {
			return false
		}
		// Cheap rejection: the other string must start with my fragment.
		if !bytes.HasPrefix(other.viewBytes(), sf) {
			return false
		}
	}
	return bytes.Equal(s.viewBytes(), other.viewBytes())
}

// EqualString compares against native string content.
func (s *String[M]) EqualString(str string) bool {
	return string(s.viewBytes()) == str
}

// Compare orders by content bytes (UTF-8 lexicographic order, identical
// to comparing the code points), returning -1, 0 or +1. The result never
// depends on representation or mode. Boxed Prefixed values try the cached
// fragments first and only touch the full contents when the prefixes
// cannot decide.
func (s *String[M]) Compare(other *String[M]) int {
	var m M
	if m.PrefixCached() && s.boxed != nil && other.boxed != nil {
		return compareFragmented(s, other)
	}
	return bytes.Compare(s.viewBytes(), other.viewBytes())
}

// CompareString orders against native string content.
func (s *String[M]) CompareString(str string) int {
	return bytes.Compare(s.viewBytes(), common.S2B(str))
}

func compareFragmented[M Mode](a, b *String[M]) int {
	af, ac := a.fragment()
	bf, bc := b.fragment()
	if ac == bc {
		// Same character count: a byte comparison of the prefixes is
		// conclusive unless they are identical, in which case only the
		// suffixes can differ.
		if c := bytes.Compare(af, bf); c != 0 {
			return c
		}
		return bytes.Compare(a.viewBytes()[len(af):], b.viewBytes()[len(bf):])
	}
	// Different character counts: walk characters until a difference or
	// one fragment runs out, then resume on the full contents at the
	// consumed offsets.
	i, j := 0, 0
	for i < len(af) && j < len(bf) {
		ra, wa := utf8.DecodeRune(af[i:])
		rb, wb := utf8.DecodeRune(bf[j:])
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		i += wa
		j += wb
	}
	return bytes.Compare(a.viewBytes()[i:], b.viewBytes()[j:])
}

// Hash hashes the content with the given maphash seed. Equal contents
// hash equally whatever their representation.
func (s *String[M]) Hash(seed maphash.Seed) uint64 {
	return maphash.Bytes(seed, s.viewBytes())
}
