package smartstring

// Mode selects the value's layout policy at compile time: how eagerly a
// heap-allocated string moves back inline, and whether the boxed form
// maintains the prefix fragment used by the comparison fast path.
//
// The set is closed: Compact, LazyCompact and Prefixed.
type Mode interface {
	// EagerDemote reports whether shrink operations re-inline content
	// that fits within MaxInline bytes.
	EagerDemote() bool
	// PrefixCached reports whether boxed values keep a prefix fragment.
	PrefixCached() bool

	sealedMode()
}

// Compact re-inlines content whenever a shrink operation leaves it within
// MaxInline bytes, trading possible reallocation churn for locality.
type Compact struct{}

func (Compact) EagerDemote() bool  { return true }
func (Compact) PrefixCached() bool { return false }
func (Compact) sealedMode()        {}

// LazyCompact keeps a heap allocation around once the value has been
// promoted; it only demotes on an explicit ShrinkToFit or Clear. This is
// the mode to default to unless heap usage matters more than speed.
type LazyCompact struct{}

func (LazyCompact) EagerDemote() bool  { return false }
func (LazyCompact) PrefixCached() bool { return false }
func (LazyCompact) sealedMode()        {}

// Prefixed behaves like Compact and additionally caches up to FragmentSize
// bytes of the content prefix next to the boxed representation, so
// comparisons between boxed values can often be decided without touching
// the heap buffer. Best for long keys that rarely share a prefix.
type Prefixed struct{}

func (Prefixed) EagerDemote() bool  { return true }
func (Prefixed) PrefixCached() bool { return true }
func (Prefixed) sealedMode()        {}

// Convenience instantiations.
type (
	CompactString  = String[Compact]
	LazyString     = String[LazyCompact]
	PrefixedString = String[Prefixed]
)
