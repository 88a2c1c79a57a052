package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dotsim/internal/automation"
	"github.com/san-kum/dotsim/internal/export"
	"github.com/san-kum/dotsim/internal/report"
	"github.com/san-kum/dotsim/internal/sim"
)

func runHeadless(cmd *cobra.Command, args []string) error {
	svg := format == "svg"
	f := report.FormatTable
	if !svg {
		var err error
		if f, err = report.ParseFormat(format); err != nil {
			return err
		}
	}

	app, err := setup(cmd)
	if err != nil {
		return err
	}

	if scenarioFile != "" {
		sc, err := automation.LoadScenario(scenarioFile)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		script, err := automation.NewScript(sc, app.sim.World())
		if err != nil {
			return err
		}
		script.Attach(app.sim)
		app.log.Info("scenario loaded", "name", sc.Name, "events", len(sc.Events))
	}

	var last sim.Frame
	app.sim.AddObserver(sim.ObserverFunc(func(fr *sim.Frame) { last = *fr }))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cfg := sim.RunConfig{Ticks: ticks, TickMs: app.cfg.TargetTickMs}
	app.log.Info("running", "ticks", cfg.Ticks, "tick_ms", cfg.TickMs, "seed", app.cfg.Seed)

	result, err := app.sim.Run(ctx, cfg)
	if err != nil {
		if !errors.Is(err, context.Canceled) || result == nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		app.log.Warn("run interrupted", "steps", result.StepsTaken)
	}

	out := cmd.OutOrStdout()
	if svg {
		return export.FrameToSVG(out, &last, app.cfg.Bounds(), result.Centroids)
	}

	run := report.Run{
		Preset:        preset,
		Seed:          app.cfg.Seed,
		Width:         app.cfg.Width,
		Height:        app.cfg.Height,
		TickMs:        cfg.TickMs,
		Ticks:         cfg.Ticks,
		InitialBodies: app.cfg.InitialBodies,
	}
	if err := report.Write(out, f, run, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if f == report.FormatTable && plot && len(result.Bodies) > 1 {
		series := make([]float64, len(result.Bodies))
		for i, n := range result.Bodies {
			series[i] = float64(n)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("dots")))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	app, err := setup(cmd)
	if err != nil {
		return err
	}

	var sc *automation.Scenario
	if scenarioFile != "" {
		if sc, err = automation.LoadScenario(scenarioFile); err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sweep := automation.Sweep{
		MinBodies: sweepMin,
		MaxBodies: sweepMax,
		NumSteps:  sweepSteps,
		Ticks:     ticks,
		TickMs:    app.cfg.TargetTickMs,
		Seed:      app.cfg.Seed,
		Bounds:    app.cfg.Bounds(),
	}
	results, err := automation.RunSweep(ctx, sweep, sc, app.log)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DOTS\tDESTROYED\tSURVIVORS\tPEAK BLASTS")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", r.Bodies, r.Destroyed, r.Survivors, r.PeakExplosions)
	}
	return tw.Flush()
}
