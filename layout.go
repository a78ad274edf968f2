package smartstring

import "unsafe"

// regionSize is the fixed byte region that follows the boxed pointer: two
// machine words, which makes the whole value exactly as large as a []byte
// header (three words).
const regionSize = 2 * int(unsafe.Sizeof(uintptr(0)))

// MaxInline is the inline capacity in bytes: the region minus the marker
// byte. 15 on 64-bit platforms, 7 on 32-bit.
const MaxInline = regionSize - 1

// FragmentSize is the capacity of the prefix cache kept while boxed in
// Prefixed mode: the region minus the fragment length byte and the
// fragment character count byte.
const FragmentSize = regionSize - 2

// Layout guards. The value must match the native growable byte buffer in
// both size and alignment; a mismatch is a compile error here rather than
// a runtime surprise.
var (
	_ [unsafe.Sizeof([]byte{})]byte  = [unsafe.Sizeof(String[Compact]{})]byte{}
	_ [unsafe.Sizeof([]byte{})]byte  = [unsafe.Sizeof(String[LazyCompact]{})]byte{}
	_ [unsafe.Sizeof([]byte{})]byte  = [unsafe.Sizeof(String[Prefixed]{})]byte{}
	_ [unsafe.Alignof([]byte{})]byte = [unsafe.Alignof(String[Compact]{})]byte{}
)

// The marker byte keeps the inline length in seven bits.
var _ [markerLenMask - MaxInline]byte
