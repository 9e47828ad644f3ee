// unitsim drives group selection and movement of units, either from a
// scripted scenario or interactively from a window.
//
// Usage:
//
//	unitsim run --scenario <file>          - Run a scenario headless and print the result
//	unitsim formation --count N --x --z    - Print the move positions for N units
//	unitsim window                         - Open a window with a grid of units
package main

import (
	"fmt"
	"os"

	"github.com/memmaker/unitcommand/engine/util"
	"github.com/memmaker/unitcommand/game"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagLogLevel   string

	config game.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "unitsim",
	Short:         "Select units and move them as a group",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := game.LoadConfig(flagConfigPath)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			loaded.LogLevel = flagLogLevel
		}
		level, err := util.ParseLogLevel(loaded.LogLevel)
		if err != nil {
			return err
		}
		util.SetLogLevel(level)
		config = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (error, warning, info, debug)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(formationCmd)
	rootCmd.AddCommand(windowCmd)
}
