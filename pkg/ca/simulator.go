package ca

// Simulator drives repeated evolution of a universe under a fixed rule
// list. It owns the universe; the rule list is shared and read-only for
// the lifetime of the simulation.
type Simulator struct {
	universe *Universe
	rules    *RuleList
}

// NewSimulator composes an already-built universe and rule list.
func NewSimulator(u *Universe, rules *RuleList) *Simulator {
	return &Simulator{universe: u, rules: rules}
}

// Step advances the universe n generations, each step feeding the next.
// The first evolution failure stops the run and is returned; the
// universe keeps the last fully computed generation.
func (s *Simulator) Step(n int) error {
	for i := 0; i < n; i++ {
		if err := s.universe.Evolve(s.rules); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the textual rendering of the current generation.
func (s *Simulator) Render() string {
	return s.universe.Render()
}

// Universe exposes the simulated universe for display layers.
func (s *Simulator) Universe() *Universe {
	return s.universe
}
