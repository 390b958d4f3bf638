//go:build !ebiten

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// guiCmd explains how to enable the graphical build when the ebiten
// build tag is absent.
var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Watch a scenario in a graphical window (requires the ebiten build tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("the gui command requires the ebiten build tag; rebuild with `go build -tags ebiten ./...`")
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
