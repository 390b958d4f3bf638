package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"rulegrid/internal/view"
)

var (
	watchSim  string
	watchSeed int64
	watchRate int
	watchSize int
	watchRule int
)

// watchCmd opens an interactive terminal session around a scenario.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a scenario interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := map[string]string{}
		if cmd.Flags().Changed("size") {
			cfg["size"] = strconv.Itoa(watchSize)
		}
		if cmd.Flags().Changed("rule") {
			cfg["rule"] = strconv.Itoa(watchRule)
		}
		sim, err := buildSim(watchSim, cfg)
		if err != nil {
			return err
		}
		if watchSeed != 0 {
			sim.Reset(watchSeed)
		}
		ui, err := view.New(sim, watchSeed, watchRate)
		if err != nil {
			return err
		}
		return ui.Run()
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchSim, "sim", "life", "scenario to watch")
	watchCmd.Flags().Int64Var(&watchSeed, "seed", 0, "random fill seed (0 = canonical seed pattern)")
	watchCmd.Flags().IntVar(&watchRate, "rate", 10, "run-mode speed in generations per second")
	watchCmd.Flags().IntVar(&watchSize, "size", 0, "board extent override")
	watchCmd.Flags().IntVar(&watchRule, "rule", 0, "Wolfram code for the elementary scenario")
	rootCmd.AddCommand(watchCmd)
}
