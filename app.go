package main

import (
	"github.com/memmaker/unitcommand/client"
	"github.com/spf13/cobra"
)

var (
	flagWidth     int
	flagHeight    int
	flagUnitCount int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open a window and command a grid of units",
	Long: `Opens a window over a field of units seen from above.
Drag with the left mouse button to select, click to pick a single unit,
right click to send the selection. WASD pans the camera, Escape quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Run(config, client.WindowOptions{
			Title:     "Unit Command",
			Width:     flagWidth,
			Height:    flagHeight,
			UnitCount: flagUnitCount,
		})
	},
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height")
	windowCmd.Flags().IntVar(&flagUnitCount, "units", 16, "Number of units to spawn")
}
