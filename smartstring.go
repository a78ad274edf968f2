package smartstring

import (
	"unicode/utf8"

	"github.com/bodil/smartstring/internal/common"
)

// String is a growable UTF-8 string value that stores short content
// directly inside itself and only allocates once the content outgrows
// MaxInline bytes. The representation in use is an implementation detail:
// every operation behaves identically on both, and promotion/demotion
// between them is atomic from the caller's point of view.
//
// The zero value is an empty inline string, ready to use.
//
// Assigning or passing a String copies the value; if it is boxed, both
// copies share the same heap buffer, so treat plain copies as read-only
// and use Clone for an independent string (the same rule as bytes.Buffer).
// A String must not be mutated concurrently without external locking.
type String[M Mode] struct {
	boxed  *boxedString // nil while the content is inline
	region [regionSize]byte
}

// New returns an empty inline string.
func New[M Mode]() String[M] {
	var s String[M]
	s.region[0] = markerInline(0)
	return s
}

// From builds a String from native string content. Panics if s is not
// valid UTF-8.
func From[M Mode](s string) String[M] {
	return FromBytes[M](common.S2B(s))
}

// FromBytes copies b into a new String. Panics if b is not valid UTF-8.
func FromBytes[M Mode](b []byte) String[M] {
	var s String[M]
	if len(b) <= MaxInline {
		s.region = inlineFromBytes(b)
		return s
	}
	if !utf8.Valid(b) {
		panic("smartstring: invalid UTF-8 content")
	}
	s.boxed = newBoxedFrom(len(b), b)
	s.refreshFragment()
	return s
}

// IsInline reports whether the content currently lives inside the value.
func (s *String[M]) IsInline() bool { return s.boxed == nil }

func (s *String[M]) inlineView() *inlineString { return &inlineString{region: &s.region} }

// gen returns the capability view of the active representation.
func (s *String[M]) gen() genericString {
	if s.boxed != nil {
		return s.boxed
	}
	return s.inlineView()
}

// viewBytes is the zero-copy content view, valid until the next mutation.
func (s *String[M]) viewBytes() []byte {
	if s.boxed != nil {
		return s.boxed.buf
	}
	return s.region[1 : 1+markerLen(s.region[0])]
}

// growView returns a capability view whose capacity covers newCap bytes,
// promoting the value to the boxed representation when the inline one
// cannot. Promotion copies the inline bytes into the new allocation first
// and never reads them again after the value's storage is overwritten.
func (s *String[M]) growView(newCap int) genericString {
	if s.boxed != nil {
		s.boxed.ensureCapacity(newCap)
		return s.boxed
	}
	if newCap <= MaxInline {
		return s.inlineView()
	}
	bx := newBoxedFrom(newCap, s.inlineView().bytes())
	s.boxed = bx
	s.region = [regionSize]byte{}
	return bx
}

func (s *String[M]) afterGrow() { s.refreshFragment() }

func (s *String[M]) afterShrink() {
	if !s.tryDemote() {
		s.refreshFragment()
	}
}

// tryDemote re-inlines the content if the mode demotes eagerly and the
// content fits. Reports whether the value is inline afterwards.
func (s *String[M]) tryDemote() bool {
	var m M
	if !m.EagerDemote() {
		return s.boxed == nil
	}
	return s.forceDemote()
}

// forceDemote re-inlines regardless of mode policy. The content is copied
// into a fresh region before the boxed pointer is dropped, so there is no
// window where the value is neither representation.
func (s *String[M]) forceDemote() bool {
	if s.boxed == nil {
		return true
	}
	if s.boxed.size() > MaxInline {
		return false
	}
	region := inlineFromBytes(s.boxed.buf)
	s.region = region
	s.boxed = nil
	return true
}

// Len returns the content length in bytes, which may differ from the
// length in characters.
func (s *String[M]) Len() int {
	if s.boxed != nil {
		return s.boxed.size()
	}
	return markerLen(s.region[0])
}

// IsEmpty reports whether the string holds no content.
func (s *String[M]) IsEmpty() bool { return s.Len() == 0 }

// Capacity returns MaxInline while inline and the allocated capacity
// while boxed. Demoting drops any boxed capacity; a later promotion
// reallocates at the default.
func (s *String[M]) Capacity() int {
	if s.boxed != nil {
		return s.boxed.capacity()
	}
	return MaxInline
}

// Clone returns a deep copy. Inline content is a plain value copy; boxed
// content is copied into a fresh allocation of the same capacity.
func (s *String[M]) Clone() String[M] {
	out := *s
	if s.boxed != nil {
		out.boxed = s.boxed.clone()
	}
	return out
}

// Clear resets to an empty inline string, dropping any heap buffer even
// in LazyCompact mode.
func (s *String[M]) Clear() {
	*s = New[M]()
}

// Push appends a single character. Invalid runes are replaced with
// U+FFFD, following strings.Builder.
func (s *String[M]) Push(r rune) {
	w := utf8.RuneLen(r)
	if w < 0 {
		r, w = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}
	g := s.growView(s.Len() + w)
	pushRune(g, r)
	s.afterGrow()
}

// PushString appends str. Panics if str is not valid UTF-8.
func (s *String[M]) PushString(str string) {
	if len(str) == 0 {
		return
	}
	checkUTF8(str)
	g := s.growView(s.Len() + len(str))
	pushString(g, str)
	s.afterGrow()
}

// Insert inserts a character at byte index i, shifting the tail right.
// Panics if i is not on a character boundary.
func (s *String[M]) Insert(i int, r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	var scratch [utf8.UTFMax]byte
	w := utf8.EncodeRune(scratch[:], r)
	s.insertBytesAt(i, scratch[:w])
}

// InsertString inserts str at byte index i, shifting the tail right.
// Panics if i is not on a character boundary or str is not valid UTF-8.
func (s *String[M]) InsertString(i int, str string) {
	checkUTF8(str)
	s.insertBytesAt(i, common.S2B(str))
}

func (s *String[M]) insertBytesAt(i int, src []byte) {
	checkBoundary(s.viewBytes(), i)
	if len(src) == 0 {
		return
	}
	g := s.growView(s.Len() + len(src))
	insertBytes(g, i, src)
	s.afterGrow()
}

// Truncate cuts the content down to n bytes. A no-op when n >= Len.
// Panics if n is not on a character boundary.
func (s *String[M]) Truncate(n int) {
	truncateOp(s.gen(), n)
	s.afterShrink()
}

// Pop removes and returns the last character. The bool is false on an
// empty string.
func (s *String[M]) Pop() (rune, bool) {
	r, ok := popOp(s.gen())
	s.afterShrink()
	return r, ok
}

// Remove removes and returns the character at byte index i. Panics if i
// is not on a character boundary or points at the end of the string.
func (s *String[M]) Remove(i int) rune {
	r := removeOp(s.gen(), i)
	s.afterShrink()
	return r
}

// Retain keeps only the characters the predicate accepts, preserving
// their order.
func (s *String[M]) Retain(keep func(rune) bool) {
	retainOp(s.gen(), keep)
	s.afterShrink()
}

// SplitOff cuts the content at byte index i, returning everything to the
// right as a new String and keeping everything to the left. Panics if i
// is not on a character boundary.
func (s *String[M]) SplitOff(i int) String[M] {
	content := s.viewBytes()
	checkBoundary(content, i)
	out := FromBytes[M](content[i:])
	s.gen().setSize(i)
	s.afterShrink()
	return out
}

// ReplaceRange replaces the bytes in [start, end) with repl. Panics if
// the bounds are out of range, off a character boundary, or repl is not
// valid UTF-8.
func (s *String[M]) ReplaceRange(start, end int, repl string) {
	content := s.viewBytes()
	if start > end || end > len(content) {
		panic("smartstring: range out of bounds")
	}
	checkBoundary(content, start)
	checkBoundary(content, end)
	checkUTF8(repl)
	newLen := start + len(repl) + (len(content) - end)
	g := s.growView(newLen)
	replaceRangeOp(g, start, end, repl)
	s.afterShrink()
}

// ShrinkToFit compacts the heap capacity down to the content length, or
// re-inlines the content when it fits, regardless of mode policy. Inline
// strings are unaffected; their capacity is fixed.
func (s *String[M]) ShrinkToFit() {
	if s.boxed == nil {
		return
	}
	if s.boxed.size() > MaxInline {
		s.boxed.shrinkToFit()
		return
	}
	s.forceDemote()
}

// String returns a copy of the content as a native string.
func (s *String[M]) String() string {
	return string(s.viewBytes())
}

// UnsafeString returns the content as a native string without copying.
// The result aliases the value's storage and is only valid until the next
// mutation; callers opting in own that lifetime.
func (s *String[M]) UnsafeString() string {
	return common.B2S(s.viewBytes())
}

// Bytes returns the content as a byte slice view, like
// bytes.Buffer.Bytes: it aliases the value's storage and is only valid
// until the next mutation. Writing through it must keep the content valid
// UTF-8.
func (s *String[M]) Bytes() []byte {
	return s.viewBytes()
}

// AppendTo appends the content to dst and returns the extended slice.
func (s *String[M]) AppendTo(dst []byte) []byte {
	return append(dst, s.viewBytes()...)
}

// Write implements io.Writer. p must be valid UTF-8, like every other
// mutator.
func (s *String[M]) Write(p []byte) (int, error) {
	s.PushString(common.B2S(p))
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (s *String[M]) WriteString(str string) (int, error) {
	s.PushString(str)
	return len(str), nil
}

// WriteRune appends r and returns the number of bytes written, like
// strings.Builder.WriteRune.
func (s *String[M]) WriteRune(r rune) (int, error) {
	before := s.Len()
	s.Push(r)
	return s.Len() - before, nil
}
