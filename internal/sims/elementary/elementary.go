package elementary

import (
	"fmt"
	"strconv"

	"rulegrid/internal/core"
	"rulegrid/pkg/ca"
)

// Config holds parameters for an elementary (1-D) automaton scenario.
type Config struct {
	Width  int
	Height int   // display rows of scrolled history
	Rule   uint8 // Wolfram code
	Seeds  []int // alive indices used for the canonical reset; empty means a single centered cell
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 50, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// WolframRules builds the minimal window rule list for the elementary
// automaton with the given Wolfram code. Neighborhoods whose next state
// equals the current center state are omitted; the engine's
// retain-on-no-match policy covers them. For rule 110 this yields the
// three classic windows [1 1 1]->0, [1 0 1]->1, [0 0 1]->1.
func WolframRules(code uint8) *ca.RuleList {
	list := ca.NewRuleList()
	for n := 7; n >= 0; n-- {
		left := uint8(n>>2) & 1
		center := uint8(n>>1) & 1
		right := uint8(n) & 1
		out := (code >> n) & 1
		if out == center {
			continue
		}
		win, err := ca.NewPattern1D([]uint8{left, center, right})
		if err != nil {
			panic(err)
		}
		list.Add(ca.MustRule(win, []int{1}, out))
	}
	return list
}

// Sim runs a 1-D universe and scrolls generation history downwards into
// a 2-D display board, newest generation in row 0.
type Sim struct {
	name  string
	cfg   Config
	rules *ca.RuleList
	sim   *ca.Simulator
	board *core.Board
}

// New creates an elementary scenario with the given configuration.
func New(name string, cfg Config) (*Sim, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("elementary: board %dx%d must be at least 1x1", cfg.Width, cfg.Height)
	}
	for _, idx := range cfg.Seeds {
		if idx < 0 || idx >= cfg.Width {
			return nil, fmt.Errorf("elementary: seed index %d outside width %d", idx, cfg.Width)
		}
	}
	s := &Sim{
		name:  name,
		cfg:   cfg,
		rules: WolframRules(cfg.Rule),
		board: core.NewBoard(cfg.Width, cfg.Height),
	}
	s.Reset(0)
	return s, nil
}

// Name returns the scenario identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the display board dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the scrolled history buffer.
func (s *Sim) Cells() []uint8 { return s.board.Cells() }

// Render returns the textual form of the current generation only.
func (s *Sim) Render() string { return s.sim.Render() }

// Reset rebuilds the universe. Seed 0 applies the configured seed
// indices (or a single centered cell); any other seed fills the row
// deterministically at random.
func (s *Sim) Reset(seed int64) {
	var u *ca.Universe
	if seed == 0 {
		var err error
		u, err = ca.NewUniverse(1, ca.NewSize(s.cfg.Width))
		if err != nil {
			panic(err)
		}
		seeds := s.cfg.Seeds
		if len(seeds) == 0 {
			seeds = []int{s.cfg.Width / 2}
		}
		if err := u.Transform(ca.Coords1D(seeds...), 1); err != nil {
			panic(err)
		}
	} else {
		row := make([]uint8, s.cfg.Width)
		core.NewRNG(seed).FillBinary(row)
		p, err := ca.NewPattern1D(row)
		if err != nil {
			panic(err)
		}
		u, err = ca.UniverseFromPattern(p)
		if err != nil {
			panic(err)
		}
	}
	s.sim = ca.NewSimulator(u, s.rules)
	s.board.Clear()
	s.board.SetRow(0, u.Cells())
}

// Seed sets the listed cells alive in the current generation.
func (s *Sim) Seed(locations [][]int) error {
	if err := s.sim.Universe().Transform(locations, 1); err != nil {
		return err
	}
	s.board.SetRow(0, s.sim.Universe().Cells())
	return nil
}

// Step computes the next generation and scrolls history downwards.
func (s *Sim) Step() error {
	if err := s.sim.Step(1); err != nil {
		return err
	}
	s.board.ScrollDown()
	s.board.SetRow(0, s.sim.Universe().Cells())
	return nil
}

// Rule110Seeds returns the canonical seed indices of the rule110 scenario.
func Rule110Seeds() []int {
	return []int{10, 12, 13, 14, 16, 17, 20, 22, 24, 25, 27, 30, 32}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New("elementary", FromMap(cfg))
	})
	core.Register("rule110", func(cfg map[string]string) (core.Sim, error) {
		c := DefaultConfig()
		if v, ok := cfg["h"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Height = parsed
			}
		}
		c.Rule = 110
		c.Seeds = Rule110Seeds()
		return New("rule110", c)
	})
}
