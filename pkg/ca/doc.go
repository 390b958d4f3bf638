// Package ca implements a rule-driven cellular automaton engine over
// bounded one- and two-dimensional binary grids.
//
// A Universe holds the current generation of cells (dead=0, alive=1).
// Evolution is driven by a RuleList: an ordered collection of Rules,
// each pairing a local window pattern with the next state of one anchor
// cell inside that window. Universe.Evolve matches every rule against
// every cell position over a dead-padded snapshot of the current
// generation; the first rule whose window matches decides the cell, and
// cells no rule matches keep their previous state.
//
// The grid boundary is fixed: positions outside the universe always
// read as dead. There is no wrapping or reflection.
package ca
