package main

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/unitcommand/game"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagScenarioPath string
	flagTiming       bool

	flagFormationCount int
	flagFormationX     float32
	flagFormationY     float32
	flagFormationZ     float32
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario without a window",
	Long: `Loads a YAML scenario, ticks the simulation with its scripted input
and prints where every unit ended up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagScenarioPath == "" {
			return errors.New("--scenario is required")
		}
		scenario, err := game.LoadScenario(flagScenarioPath)
		if err != nil {
			return err
		}
		run, err := scenario.Build(config)
		if err != nil {
			return err
		}
		run.Run()
		printReport(cmd.OutOrStdout(), run, flagTiming)
		return nil
	},
}

var formationCmd = &cobra.Command{
	Use:   "formation",
	Short: "Print the ring formation for a group move",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFormationCount < 0 {
			return errors.Errorf("--count must not be negative, got %d", flagFormationCount)
		}
		target := mgl32.Vec3{flagFormationX, flagFormationY, flagFormationZ}
		positions := game.GenerateMovePositions(target, flagFormationCount, config.RingSpacing)
		out := cmd.OutOrStdout()
		for i, position := range positions {
			fmt.Fprintf(out, "%3d  %8.3f %8.3f %8.3f\n", i, position.X(), position.Y(), position.Z())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&flagScenarioPath, "scenario", "", "Path to the scenario YAML file")
	runCmd.Flags().BoolVar(&flagTiming, "timing", false, "Print per-system timings")

	formationCmd.Flags().IntVar(&flagFormationCount, "count", 1, "Number of units")
	formationCmd.Flags().Float32Var(&flagFormationX, "x", 0, "Target X")
	formationCmd.Flags().Float32Var(&flagFormationY, "y", 0, "Target Y")
	formationCmd.Flags().Float32Var(&flagFormationZ, "z", 0, "Target Z")
}

func printReport(out io.Writer, run *game.ScenarioRun, timing bool) {
	fmt.Fprintf(out, "Scenario %q after %d ticks\n\n", run.Scenario.Name, run.Simulation.Ticks())

	fmt.Fprintf(out, "  %-4s  %-16s  %-28s  %-8s  %s\n", "ID", "Name", "Position", "Selected", "Order")
	fmt.Fprintf(out, "  %-4s  %-16s  %-28s  %-8s  %s\n", "--", "----", "--------", "--------", "-----")
	for _, unit := range run.Registry.Units() {
		position := unit.GetPosition()
		order := "-"
		if unit.HasActiveOverride() {
			target := unit.Override.TargetPosition
			order = fmt.Sprintf("-> (%.2f, %.2f, %.2f)", target.X(), target.Y(), target.Z())
		}
		fmt.Fprintf(out, "  %-4d  %-16s  (%7.2f, %7.2f, %7.2f)  %-8t  %s\n",
			unit.ID, unit.Name, position.X(), position.Y(), position.Z(), unit.IsSelected(), order)
	}

	events := run.Events.Events()
	if len(events) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Selection events:")
		for _, event := range events {
			switch event.Type {
			case game.SelectionAreaStarted:
				fmt.Fprintf(out, "  %s at %v\n", event.Type, event.Start)
			default:
				fmt.Fprintf(out, "  %s %v -> %v\n", event.Type, event.Rect, event.Selected)
			}
		}
	}

	if timing {
		fmt.Fprintln(out)
		fmt.Fprintln(out, run.Simulation.TimingReport())
	}
}
