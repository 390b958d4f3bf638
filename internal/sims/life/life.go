package life

import (
	"fmt"
	"strconv"

	"rulegrid/internal/core"
	"rulegrid/pkg/ca"
)

// Config holds parameters for the Conway's Life scenario.
type Config struct {
	Size int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 20}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	return c
}

// GliderSeeds returns the canonical glider coordinates, (row, column).
func GliderSeeds() [][]int {
	return [][]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
}

// Rules builds the complete Life rule list: one window rule per 3x3
// neighborhood whose center cell changes state. Enumerating all 512
// neighborhoods yields 228 rules (deaths by under- and overpopulation,
// births on exactly three neighbors); survivals fall through to the
// engine's retain-on-no-match policy.
func Rules() *ca.RuleList {
	list := ca.NewRuleList()
	for mask := 0; mask < 512; mask++ {
		cells := make([][]uint8, 3)
		neighbors := 0
		for r := 0; r < 3; r++ {
			cells[r] = make([]uint8, 3)
			for c := 0; c < 3; c++ {
				bit := uint8(mask>>(r*3+c)) & 1
				cells[r][c] = bit
				neighbors += int(bit)
			}
		}
		alive := cells[1][1] == 1
		if alive {
			neighbors--
		}

		var outcome uint8
		switch {
		case alive && neighbors < 2:
			outcome = 0
		case alive && neighbors > 3:
			outcome = 0
		case !alive && neighbors == 3:
			outcome = 1
		default:
			continue
		}

		win, err := ca.NewPattern2D(cells)
		if err != nil {
			panic(err)
		}
		list.Add(ca.MustRule(win, []int{1, 1}, outcome))
	}
	return list
}

// Sim runs Conway's Game of Life on a bounded square board. The board
// edge is permanently dead, not wrapped.
type Sim struct {
	cfg   Config
	rules *ca.RuleList
	sim   *ca.Simulator
}

// New creates a Life scenario with the given configuration.
func New(cfg Config) (*Sim, error) {
	if cfg.Size < 1 {
		return nil, fmt.Errorf("life: board size %d must be at least 1", cfg.Size)
	}
	s := &Sim{cfg: cfg, rules: Rules()}
	s.Reset(0)
	return s, nil
}

// Name returns the scenario identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the board dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the current generation.
func (s *Sim) Cells() []uint8 { return s.sim.Universe().Cells() }

// Render returns the textual form of the current generation.
func (s *Sim) Render() string { return s.sim.Render() }

// Reset rebuilds the board. Seed 0 places the canonical glider; any
// other seed fills the board deterministically at random.
func (s *Sim) Reset(seed int64) {
	var u *ca.Universe
	var err error
	if seed == 0 {
		u, err = ca.NewUniverse(2, ca.NewSize(s.cfg.Size))
		if err != nil {
			panic(err)
		}
		if s.cfg.Size >= 4 {
			if err := u.Transform(GliderSeeds(), 1); err != nil {
				panic(err)
			}
		}
	} else {
		rows := make([][]uint8, s.cfg.Size)
		rng := core.NewRNG(seed)
		for r := range rows {
			rows[r] = make([]uint8, s.cfg.Size)
			rng.FillBinary(rows[r])
		}
		p, err := ca.NewPattern2D(rows)
		if err != nil {
			panic(err)
		}
		u, err = ca.UniverseFromPattern(p)
		if err != nil {
			panic(err)
		}
	}
	s.sim = ca.NewSimulator(u, s.rules)
}

// Seed sets the listed (row, column) cells alive in the current generation.
func (s *Sim) Seed(locations [][]int) error {
	return s.sim.Universe().Transform(locations, 1)
}

// Step advances the board by one generation.
func (s *Sim) Step() error {
	return s.sim.Step(1)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
