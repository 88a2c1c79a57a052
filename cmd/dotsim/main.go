package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/dotsim/internal/config"
	"github.com/san-kum/dotsim/internal/gui"
	"github.com/san-kum/dotsim/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	numBodies  int
	logLevel   string
	watch      bool

	ticks  int
	tickMs float64
	format string
	plot   bool

	scenarioFile string
	sweepMin     int
	sweepMax     int
	sweepSteps   int
)

// main registers the commands and runs the terminal frontend when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "dotsim",
		Short:        "gravity and chain-reaction dots simulation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := watchPath()
			if err != nil {
				return err
			}
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			return viz.Run(app.sim, app.cfg, path, app.log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&numBodies, "bodies", config.DefaultInitialBodies, "number of initial dots")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "apply edits to --config while running")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			gui.Run(app.sim, app.cfg, app.log)
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks")
	runCmd.Flags().Float64Var(&tickMs, "tick-ms", config.DefaultTargetTickMs, "tick duration in milliseconds")
	runCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json, svg)")
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot the dot count (table format only)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scripted input events (yaml)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "measure chain reactions across initial dot counts",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 10, "fewest initial dots")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 100, "most initial dots")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of runs")
	sweepCmd.Flags().IntVar(&ticks, "ticks", 600, "ticks per run")
	sweepCmd.Flags().Float64Var(&tickMs, "tick-ms", config.DefaultTargetTickMs, "tick duration in milliseconds")
	sweepCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scripted input events (yaml, default: one blast in the center)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-8s %3d dots, %.0fms ticks, theme %s\n", name, p.InitialBodies, p.TargetTickMs, p.Theme)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the selected preset's values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, runCmd, sweepCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// watchPath is the file --watch follows, or "" when watching is off.
func watchPath() (string, error) {
	if !watch {
		return "", nil
	}
	if configFile == "" {
		return "", fmt.Errorf("--watch needs a file to follow, pass one with --config")
	}
	return configFile, nil
}
