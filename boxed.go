package smartstring

// boxedString is the heap representation: a single growable buffer whose
// slice length is the logical content length and whose slice capacity is
// the allocated capacity. The value holds exactly one pointer to it, so
// the buffer stays visible to the GC for as long as the value is boxed.
type boxedString struct {
	buf []byte
}

// minBoxedCapacity keeps freshly promoted strings from bouncing straight
// back across the inline threshold.
const minBoxedCapacity = 2 * MaxInline

func newBoxed(capacity int) *boxedString {
	if capacity < minBoxedCapacity {
		capacity = minBoxedCapacity
	}
	return &boxedString{buf: make([]byte, 0, capacity)}
}

// newBoxedFrom allocates at least capacity bytes and copies src in.
func newBoxedFrom(capacity int, src []byte) *boxedString {
	b := newBoxed(capacity)
	b.buf = b.buf[:len(src)]
	copy(b.buf, src)
	return b
}

func (b *boxedString) size() int        { return len(b.buf) }
func (b *boxedString) setSize(n int)    { b.buf = b.buf[:n] }
func (b *boxedString) capSlice() []byte { return b.buf[:cap(b.buf)] }
func (b *boxedString) capacity() int    { return cap(b.buf) }

// ensureCapacity grows the buffer geometrically until it can hold target
// bytes. Content and logical length are preserved. Like the runtime's own
// allocator, an impossible request aborts rather than erroring.
func (b *boxedString) ensureCapacity(target int) {
	c := cap(b.buf)
	if c >= target {
		return
	}
	if c == 0 {
		c = minBoxedCapacity
	}
	for c < target {
		c *= 2
	}
	next := make([]byte, len(b.buf), c)
	copy(next, b.buf)
	b.buf = next
}

// shrinkToFit reallocates down to the exact content length.
func (b *boxedString) shrinkToFit() {
	if cap(b.buf) == len(b.buf) {
		return
	}
	next := make([]byte, len(b.buf))
	copy(next, b.buf)
	b.buf = next
}

func (b *boxedString) clone() *boxedString {
	return newBoxedFrom(cap(b.buf), b.buf)
}
