package smartstring

import "unicode/utf8"

// The mutation engine. Every content-changing operation is written once,
// against the small capability surface below, and works identically on
// both representations. Grow-style operations assume the caller already
// secured enough capacity (and promoted if needed); shrink-style
// operations never need new capacity. The engine never changes the
// representation itself.

type genericString interface {
	size() int
	setSize(n int)
	capSlice() []byte
}

func contentOf(g genericString) []byte { return g.capSlice()[:g.size()] }

// isBoundary reports whether i is on a character boundary of b.
func isBoundary(b []byte, i int) bool {
	if i == 0 || i == len(b) {
		return true
	}
	return i > 0 && i < len(b) && utf8.RuneStart(b[i])
}

// checkBoundary panics unless i is a valid character boundary. It runs
// before any bytes move, so a violating call never mutates the value.
func checkBoundary(b []byte, i int) {
	if i < 0 || i > len(b) {
		panic("smartstring: index out of range")
	}
	if !isBoundary(b, i) {
		panic("smartstring: index not on a character boundary")
	}
}

// checkUTF8 panics on invalid UTF-8 input; mutators take native strings,
// which Go does not guarantee to be well-formed.
func checkUTF8(s string) {
	if !utf8.ValidString(s) {
		panic("smartstring: invalid UTF-8 content")
	}
}

// insertBytes shifts the tail right and copies src in at index. Boundary
// and capacity are the caller's responsibility.
func insertBytes(g genericString, index int, src []byte) {
	if len(src) == 0 {
		return
	}
	n := g.size()
	buf := g.capSlice()
	copy(buf[index+len(src):n+len(src)], buf[index:n])
	copy(buf[index:index+len(src)], src)
	g.setSize(n + len(src))
}

// removeBytes shifts the tail left over [start, end).
func removeBytes(g genericString, start, end int) {
	if start == end {
		return
	}
	n := g.size()
	buf := g.capSlice()
	copy(buf[start:], buf[end:n])
	g.setSize(n - (end - start))
}

func pushString(g genericString, s string) {
	n := g.size()
	copy(g.capSlice()[n:n+len(s)], s)
	g.setSize(n + len(s))
}

func pushRune(g genericString, r rune) {
	n := g.size()
	w := utf8.EncodeRune(g.capSlice()[n:], r)
	g.setSize(n + w)
}

func truncateOp(g genericString, n int) {
	if n >= g.size() {
		return
	}
	checkBoundary(contentOf(g), n)
	g.setSize(n)
}

func popOp(g genericString) (rune, bool) {
	content := contentOf(g)
	if len(content) == 0 {
		return 0, false
	}
	r, w := utf8.DecodeLastRune(content)
	g.setSize(len(content) - w)
	return r, true
}

func removeOp(g genericString, index int) rune {
	content := contentOf(g)
	checkBoundary(content, index)
	if index == len(content) {
		panic("smartstring: cannot remove a character from the end of the string")
	}
	r, w := utf8.DecodeRune(content[index:])
	removeBytes(g, index, index+w)
	return r
}

// retainOp drops characters the predicate rejects, compacting in place in
// a single pass.
func retainOp(g genericString, keep func(rune) bool) {
	n := g.size()
	buf := g.capSlice()
	del := 0
	for i := 0; i < n; {
		r, w := utf8.DecodeRune(buf[i:n])
		if !keep(r) {
			del += w
		} else if del > 0 {
			copy(buf[i-del:], buf[i:i+w])
		}
		i += w
	}
	if del > 0 {
		g.setSize(n - del)
	}
}

// replaceRangeOp swaps [start, end) for repl. Capacity must already cover
// the resulting length; bounds are the caller's responsibility.
func replaceRangeOp(g genericString, start, end int, repl string) {
	n := g.size()
	buf := g.capSlice()
	newEnd := start + len(repl)
	copy(buf[newEnd:newEnd+(n-end)], buf[end:n])
	copy(buf[start:newEnd], repl)
	g.setSize(newEnd + (n - end))
}
