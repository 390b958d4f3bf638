package ca

import "iter"

// RuleList is an ordered, append-only collection of rules. Insertion
// order is precedence order: during evolution the first matching rule
// wins and later rules are not consulted.
type RuleList struct {
	rules []Rule
}

// NewRuleList returns a list holding the given rules in order.
func NewRuleList(rules ...Rule) *RuleList {
	l := &RuleList{rules: make([]Rule, len(rules))}
	copy(l.rules, rules)
	return l
}

// Add appends a rule, preserving the order of earlier rules.
func (l *RuleList) Add(r Rule) {
	l.rules = append(l.rules, r)
}

// Len returns the number of rules.
func (l *RuleList) Len() int { return len(l.rules) }

// At returns the rule at position i in precedence order.
func (l *RuleList) At(i int) Rule { return l.rules[i] }

// All returns a restartable iterator over the rules in precedence
// order. Iterating does not mutate the list; any number of independent
// iterations may be in flight.
func (l *RuleList) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, r := range l.rules {
			if !yield(r) {
				return
			}
		}
	}
}
