package ca

import "fmt"

// Rule maps one local neighborhood to the next state of a single cell:
// when the window pattern matches the grid, the cell the anchor points
// at becomes the outcome in the next generation. Immutable.
type Rule struct {
	window  Pattern
	anchor  []int
	outcome uint8
}

// NewRule builds a rule from a window pattern, the anchor coordinate of
// the target cell inside that window, and the resulting state. The
// anchor arity must equal the window rank, the anchor must lie inside
// the window, and the outcome must be 0 or 1.
func NewRule(window Pattern, anchor []int, outcome uint8) (Rule, error) {
	if len(anchor) != window.Rank() {
		return Rule{}, fmt.Errorf("ca: anchor arity %d, window rank %d: %w", len(anchor), window.Rank(), ErrDimensionMismatch)
	}
	if !window.contains(anchor) {
		return Rule{}, fmt.Errorf("ca: anchor %v outside window shape %v: %w", anchor, window.Shape(), ErrOutOfBounds)
	}
	if outcome > 1 {
		return Rule{}, fmt.Errorf("ca: outcome %d: %w", outcome, ErrBadCellState)
	}
	a := make([]int, len(anchor))
	copy(a, anchor)
	return Rule{window: window, anchor: a, outcome: outcome}, nil
}

// MustRule is NewRule that panics on error, for statically known rules.
func MustRule(window Pattern, anchor []int, outcome uint8) Rule {
	r, err := NewRule(window, anchor, outcome)
	if err != nil {
		panic(err)
	}
	return r
}

// Window returns the rule's window pattern.
func (r Rule) Window() Pattern { return r.window }

// Anchor returns a copy of the anchor coordinate.
func (r Rule) Anchor() []int {
	out := make([]int, len(r.anchor))
	copy(out, r.anchor)
	return out
}

// Outcome returns the state the anchored cell takes when the rule matches.
func (r Rule) Outcome() uint8 { return r.outcome }
