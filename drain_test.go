package smartstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainRemovesEagerly(t *testing.T) {
	s := From[Compact]("hello world")
	d := s.Drain(5, 11)
	// The source is final before the iterator is touched.
	require.Equal(t, "hello", s.String())
	require.Equal(t, " world", d.String())
}

func TestDrainNext(t *testing.T) {
	s := From[Compact]("aé🙂b")
	d := s.Drain(1, 7)
	require.Equal(t, "ab", s.String())

	r, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, 'é', r)
	r, ok = d.Next()
	require.True(t, ok)
	require.Equal(t, '🙂', r)
	_, ok = d.Next()
	require.False(t, ok)
	require.Equal(t, "", d.String())
}

func TestDrainAll(t *testing.T) {
	s := From[Compact]("xabcx")
	var got []rune
	for r := range s.Drain(1, 4).All() {
		got = append(got, r)
	}
	require.Equal(t, []rune{'a', 'b', 'c'}, got)
	require.Equal(t, "xx", s.String())
}

func TestDrainEmptyRange(t *testing.T) {
	s := From[Compact]("hello")
	d := s.Drain(2, 2)
	require.Equal(t, "hello", s.String())
	_, ok := d.Next()
	require.False(t, ok)
}

func TestDrainWholeString(t *testing.T) {
	s := From[Compact](strings.Repeat("z", 2*MaxInline))
	d := s.Drain(0, s.Len())
	require.True(t, s.IsEmpty())
	require.True(t, s.IsInline())
	require.Equal(t, strings.Repeat("z", 2*MaxInline), d.String())
}

func TestDrainDemotesCompact(t *testing.T) {
	s := From[Compact](strings.Repeat("a", 3*MaxInline))
	s.Drain(MaxInline/2, s.Len())
	require.True(t, s.IsInline())
	require.Equal(t, strings.Repeat("a", MaxInline/2), s.String())
}

func TestDrainPanics(t *testing.T) {
	s := From[Compact]("aé")
	require.Panics(t, func() { s.Drain(2, 3) }) // inside 'é'
	require.Panics(t, func() { s.Drain(1, 100) })
	require.Panics(t, func() { s.Drain(2, 1) })
	require.Equal(t, "aé", s.String())
}
