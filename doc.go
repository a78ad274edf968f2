// Package smartstring provides a compact growable string value that keeps
// short content inline, inside the value itself, and only heap-allocates
// once the content outgrows MaxInline bytes. The value is exactly the size
// of a []byte header, so it can replace plain strings as a map key or
// slice element without growing the container.
//
// Three compile-time modes select the layout policy: Compact re-inlines
// content whenever a shrink leaves it small enough, LazyCompact keeps a
// heap allocation around once made, and Prefixed additionally caches a
// content prefix next to the boxed representation to speed up comparisons.
//
// The zero value of every mode is an empty, usable, inline string.
package smartstring
