package smartstring

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bodil/smartstring/internal/common"
)

// Serialization bridges. These are thin adapters over the public surface
// (FromBytes, viewBytes via the public views) and know nothing about the
// representation; malformed external input is reported as an error rather
// than a panic, since it is not a caller contract violation.

var (
	ErrTruncated   = errors.New("smartstring: truncated input")
	ErrInvalidUTF8 = errors.New("smartstring: invalid UTF-8 input")
)

// The marshalers take value receivers so that String fields inside
// structs satisfy the interfaces whether or not they are addressable;
// the unmarshalers must mutate and stay on the pointer.

// MarshalText implements encoding.TextMarshaler.
func (s String[M]) MarshalText() ([]byte, error) {
	return s.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String[M]) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return ErrInvalidUTF8
	}
	*s = FromBytes[M](text)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s String[M]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.UnsafeString())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *String[M]) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	*s = From[M](str)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler: a varint byte length
// followed by the raw content.
func (s String[M]) MarshalBinary() ([]byte, error) {
	out := common.WriteVarUint(make([]byte, 0, s.Len()+2), uint64(s.Len()))
	return append(out, s.viewBytes()...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *String[M]) UnmarshalBinary(data []byte) error {
	n, hdr := common.ReadVarUint(data)
	if hdr == 0 || uint64(len(data)-hdr) < n {
		return ErrTruncated
	}
	payload := data[hdr : hdr+int(n)]
	if !utf8.Valid(payload) {
		return ErrInvalidUTF8
	}
	*s = FromBytes[M](payload)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String[M]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String[M]) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	if !utf8.ValidString(str) {
		return ErrInvalidUTF8
	}
	*s = From[M](str)
	return nil
}
