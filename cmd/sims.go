package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"rulegrid/internal/core"
)

// simsCmd lists every registered scenario.
var simsCmd = &cobra.Command{
	Use:   "sims",
	Short: "List available scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(core.Sims()))
		for name := range core.Sims() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(simsCmd)
}
