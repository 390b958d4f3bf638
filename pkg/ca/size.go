package ca

// Size describes the extent of a universe along every axis: either a
// bounded positive length or the infinite marker. Immutable.
type Size struct {
	extent   int
	infinite bool
}

// NewSize returns a bounded size with the given extent.
func NewSize(extent int) Size {
	return Size{extent: extent}
}

// InfiniteSize returns the unbounded size marker. Universes cannot be
// allocated from it; constructors reject it with ErrInfiniteUniverse.
func InfiniteSize() Size {
	return Size{infinite: true}
}

// IsInfinite reports whether the size is unbounded.
func (s Size) IsInfinite() bool { return s.infinite }

// Extent returns the bounded length. Meaningless for an infinite size.
func (s Size) Extent() int { return s.extent }
