//go:build ebiten

package cmd

import (
	"errors"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"rulegrid/internal/app"
)

var (
	guiSim   string
	guiScale int
	guiTPS   int
	guiSeed  int64
	guiSize  int
	guiRule  int
)

// guiCmd opens an ebiten window around a scenario.
var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Watch a scenario in a graphical window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := map[string]string{}
		if cmd.Flags().Changed("size") {
			cfg["size"] = strconv.Itoa(guiSize)
		}
		if cmd.Flags().Changed("rule") {
			cfg["rule"] = strconv.Itoa(guiRule)
		}
		sim, err := buildSim(guiSim, cfg)
		if err != nil {
			return err
		}
		if guiSeed != 0 {
			sim.Reset(guiSeed)
		}

		game := app.New(sim, guiScale, guiSeed)
		size := sim.Size()

		ebiten.SetWindowTitle("rulegrid — " + sim.Name())
		ebiten.SetTPS(guiTPS)
		ebiten.SetWindowSize(size.W*guiScale, size.H*guiScale)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	guiCmd.Flags().StringVar(&guiSim, "sim", "life", "scenario to display")
	guiCmd.Flags().IntVar(&guiScale, "scale", 8, "pixel scale multiplier")
	guiCmd.Flags().IntVar(&guiTPS, "tps", 10, "generations per second")
	guiCmd.Flags().Int64Var(&guiSeed, "seed", 0, "random fill seed (0 = canonical seed pattern)")
	guiCmd.Flags().IntVar(&guiSize, "size", 0, "board extent override")
	guiCmd.Flags().IntVar(&guiRule, "rule", 0, "Wolfram code for the elementary scenario")
	rootCmd.AddCommand(guiCmd)
}
