package core

// Size describes the display dimensions of a scenario grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a runnable automaton scenario must implement.
// Cells exposes a flat row-major W*H binary buffer for graphical
// display; Render returns the textual form of the underlying universe.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Cells() []uint8
	Render() string
}

// Seeder is implemented by scenarios whose universe accepts explicit
// seed-cell coordinates, e.g. from a scenario config file.
type Seeder interface {
	Seed(locations [][]int) error
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available scenario factories.
func Sims() map[string]Factory {
	return sims
}
