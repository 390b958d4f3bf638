// Package view provides an interactive terminal session for a scenario,
// rendered with gocui and aurora-colored cells.
package view

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"

	"rulegrid/internal/core"
)

const (
	boardView  = "board"
	statusView = "status"
)

var stateDescr = map[bool]string{
	false: aurora.Colorize("paused", aurora.BlueFg).String(),
	true:  aurora.Colorize("running", aurora.CyanFg).String(),
}

// UI drives a scenario from the terminal: step, run/stop, reseed.
type UI struct {
	sim core.Sim
	g   *gocui.Gui
	fs  *core.FixedStep

	mu      sync.Mutex
	running bool
	gen     int
	seed    int64

	quit chan struct{}

	liveFiller string
	deadFiller string
}

// New builds a terminal UI around the scenario. rate is the run-mode
// speed in generations per second.
func New(sim core.Sim, seed int64, rate int) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("view: init terminal: %w", err)
	}

	ui := &UI{
		sim:        sim,
		g:          g,
		fs:         core.NewFixedStep(rate),
		seed:       seed,
		quit:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	g.SetManagerFunc(ui.layout)

	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, ui.cmdQuit},
		{'q', ui.cmdQuit},
		{'n', ui.cmdStep},
		{'r', ui.cmdRun},
		{'s', ui.cmdStop},
		{'w', ui.cmdReseed},
		{'c', ui.cmdReset},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			g.Close()
			return nil, fmt.Errorf("view: keybinding: %w", err)
		}
	}
	return ui, nil
}

// Run blocks in the UI main loop until the user quits.
func (ui *UI) Run() error {
	go ui.loop()
	defer ui.g.Close()
	err := ui.g.MainLoop()
	close(ui.quit)
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

// loop advances the scenario at the fixed rate while run mode is active.
func (ui *UI) loop() {
	for {
		select {
		case <-ui.quit:
			return
		default:
		}
		if ui.isRunning() && ui.fs.ShouldStep() {
			ui.step()
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (ui *UI) isRunning() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.running
}

func (ui *UI) setRunning(v bool) {
	ui.mu.Lock()
	ui.running = v
	ui.mu.Unlock()
	ui.redraw()
}

func (ui *UI) step() {
	ui.mu.Lock()
	err := ui.sim.Step()
	if err == nil {
		ui.gen++
	} else {
		ui.running = false
	}
	ui.mu.Unlock()
	if err != nil {
		logrus.WithError(err).Error("scenario step failed")
		return
	}
	ui.redraw()
}

// redraw schedules a repaint; layout re-renders all views.
func (ui *UI) redraw() {
	ui.g.Update(func(*gocui.Gui) error { return nil })
}

func (ui *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := ui.sim.Size()

	bw := size.W + 1
	if bw > maxX-1 {
		bw = maxX - 1
	}
	bh := size.H + 1
	if bh > maxY-3 {
		bh = maxY - 3
	}

	v, err := g.SetView(boardView, 0, 0, bw, bh)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = ui.sim.Name()
	v.Clear()
	fmt.Fprint(v, ui.renderBoard())

	sv, err := g.SetView(statusView, 0, maxY-3, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Clear()
	fmt.Fprint(sv, ui.renderStatus())
	return nil
}

func (ui *UI) renderBoard() string {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	size := ui.sim.Size()
	cells := ui.sim.Cells()
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		base := y * size.W
		for x := 0; x < size.W; x++ {
			if cells[base+x] != 0 {
				b.WriteString(ui.liveFiller)
			} else {
				b.WriteString(ui.deadFiller)
			}
		}
	}
	return b.String()
}

func (ui *UI) renderStatus() string {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	live := 0
	for _, c := range ui.sim.Cells() {
		if c != 0 {
			live++
		}
	}
	return fmt.Sprintf(" %s | generation %d | live %d | [N]ext [R]un [S]top [W]reseed [C]reset [Q]uit",
		stateDescr[ui.running], ui.gen, live)
}

func (ui *UI) cmdQuit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

func (ui *UI) cmdStep(*gocui.Gui, *gocui.View) error {
	if !ui.isRunning() {
		ui.step()
	}
	return nil
}

func (ui *UI) cmdRun(*gocui.Gui, *gocui.View) error {
	ui.setRunning(true)
	return nil
}

func (ui *UI) cmdStop(*gocui.Gui, *gocui.View) error {
	ui.setRunning(false)
	return nil
}

func (ui *UI) cmdReseed(*gocui.Gui, *gocui.View) error {
	ui.mu.Lock()
	ui.seed = time.Now().UnixNano()
	ui.sim.Reset(ui.seed)
	ui.gen = 0
	ui.mu.Unlock()
	ui.redraw()
	return nil
}

func (ui *UI) cmdReset(*gocui.Gui, *gocui.View) error {
	ui.mu.Lock()
	ui.sim.Reset(0)
	ui.gen = 0
	ui.mu.Unlock()
	ui.redraw()
	return nil
}
