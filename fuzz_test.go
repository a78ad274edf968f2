package smartstring

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// boundaries returns every valid character boundary of s, including 0 and
// len(s), so fuzz arguments can be folded onto legal offsets.
func boundaries(s string) []int {
	out := []int{0}
	for i := range s {
		if i != 0 {
			out = append(out, i)
		}
	}
	if len(s) > 0 {
		out = append(out, len(s))
	}
	return out
}

func FuzzMutations(f *testing.F) {
	f.Add("hello", []byte{0, 1, 2, 3, 4, 5})
	f.Add("héllo wörld, big enough to be boxed", []byte{4, 200, 2, 0, 3, 7})
	f.Add("", []byte{0, 0, 1, 0})
	f.Fuzz(func(t *testing.T, seed string, ops []byte) {
		if !utf8.ValidString(seed) {
			t.Skip()
		}
		s := From[Compact](seed)
		model := seed
		for i := 0; i+1 < len(ops); i += 2 {
			arg := int(ops[i+1])
			switch ops[i] % 6 {
			case 0:
				r := rune('a' + arg%26)
				s.Push(r)
				model += string(r)
			case 1:
				r, ok := s.Pop()
				if len(model) == 0 {
					require.False(t, ok)
				} else {
					want, w := utf8.DecodeLastRuneInString(model)
					require.True(t, ok)
					require.Equal(t, want, r)
					model = model[:len(model)-w]
				}
			case 2:
				b := boundaries(model)
				at := b[arg%len(b)]
				s.Truncate(at)
				model = model[:at]
			case 3:
				b := boundaries(model)
				at := b[arg%len(b)]
				s.InsertString(at, "🙂é")
				model = model[:at] + "🙂é" + model[at:]
			case 4:
				b := boundaries(model)
				at := b[arg%len(b)]
				if at == len(model) {
					require.Panics(t, func() { s.Remove(at) })
				} else {
					want, w := utf8.DecodeRuneInString(model[at:])
					require.Equal(t, want, s.Remove(at))
					model = model[:at] + model[at+w:]
				}
			case 5:
				s.ShrinkToFit()
			}
			require.Equal(t, model, s.String())
			require.Equal(t, len(model), s.Len())
			if s.IsInline() {
				require.LessOrEqual(t, s.Len(), MaxInline)
			}
		}
	})
}

func FuzzBinaryRoundTrip(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{})
	f.Add([]byte("héllo wörld, big enough to be boxed"))
	f.Fuzz(func(t *testing.T, data []byte) {
		if !utf8.Valid(data) {
			t.Skip()
		}
		s := FromBytes[LazyCompact](data)
		wire, err := s.MarshalBinary()
		require.NoError(t, err)

		var back LazyString
		require.NoError(t, back.UnmarshalBinary(wire))
		require.Equal(t, string(data), back.String())
		require.True(t, back.Equal(&s))
	})
}

func FuzzPrefixedCompare(f *testing.F) {
	f.Add("aaa", "aab")
	f.Add("ééééééé-long-enough-to-box", "eeeeeee-long-enough-to-box")
	f.Fuzz(func(t *testing.T, x, y string) {
		if !utf8.ValidString(x) || !utf8.ValidString(y) {
			t.Skip()
		}
		a, b := From[Prefixed](x), From[Prefixed](y)
		want := 0
		switch {
		case x < y:
			want = -1
		case x > y:
			want = 1
		}
		require.Equal(t, want, a.Compare(&b))
		require.Equal(t, x == y, a.Equal(&b))
	})
}
