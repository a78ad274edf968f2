package smartstring

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	type record struct {
		Name CompactString `json:"name"`
		Note LazyString    `json:"note"`
	}
	in := record{
		Name: From[Compact]("héllo"),
		Note: From[LazyCompact](strings.Repeat("n", 3*MaxInline)),
	}
	data, err := json.Marshal(&in)
	require.NoError(t, err)

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.Name.Equal(&in.Name))
	require.True(t, out.Note.Equal(&in.Note))
	require.True(t, out.Name.IsInline())
	require.False(t, out.Note.IsInline())
}

func TestJSONRejectsNonString(t *testing.T) {
	var s CompactString
	require.Error(t, s.UnmarshalJSON([]byte(`42`)))
}

func TestTextRoundTrip(t *testing.T) {
	s := From[Prefixed]("héllo wörld")
	text, err := s.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "héllo wörld", string(text))

	var back PrefixedString
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, back.Equal(&s))
}

func TestUnmarshalTextRejectsInvalidUTF8(t *testing.T) {
	var s CompactString
	err := s.UnmarshalText([]byte{'o', 'k', 0xff})
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, content := range []string{"", "short", strings.Repeat("é", 4*MaxInline)} {
		s := From[LazyCompact](content)
		data, err := s.MarshalBinary()
		require.NoError(t, err)

		var back LazyString
		require.NoError(t, back.UnmarshalBinary(data))
		require.Equal(t, content, back.String())
	}
}

func TestUnmarshalBinaryTruncated(t *testing.T) {
	s := From[Compact]("hello world")
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var back CompactString
	require.ErrorIs(t, back.UnmarshalBinary(data[:len(data)-3]), ErrTruncated)
	require.ErrorIs(t, back.UnmarshalBinary(nil), ErrTruncated)
}

func TestUnmarshalBinaryInvalidUTF8(t *testing.T) {
	var back CompactString
	require.ErrorIs(t, back.UnmarshalBinary([]byte{2, 0xff, 0xfe}), ErrInvalidUTF8)
}

func TestYAMLRoundTrip(t *testing.T) {
	type config struct {
		Host CompactString `yaml:"host"`
		Desc LazyString    `yaml:"desc"`
	}
	in := config{
		Host: From[Compact]("localhost"),
		Desc: From[LazyCompact](strings.Repeat("d", 3*MaxInline)),
	}
	data, err := yaml.Marshal(&in)
	require.NoError(t, err)

	var out config
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.True(t, out.Host.Equal(&in.Host))
	require.True(t, out.Desc.Equal(&in.Desc))
}

func TestUnmarshalYAMLRejectsMapping(t *testing.T) {
	var s CompactString
	require.Error(t, yaml.Unmarshal([]byte("a: b\n"), &s))
}
