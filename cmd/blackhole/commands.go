package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/config"
	"github.com/Clayten/blackholes/internal/export"
	"github.com/Clayten/blackholes/internal/storage"
	"github.com/Clayten/blackholes/internal/track"
	"github.com/Clayten/blackholes/internal/units"
	"github.com/Clayten/blackholes/internal/viz"
)

func showHole(cmd *cobra.Command, args []string) error {
	hole, _, err := loadHole(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderObservables(hole, viz.ThemeByName(themeName), -1))
	return nil
}

// parseInput reads a magnitude and optional unit from the command line.
func parseInput(args []string) (blackhole.Input, error) {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return blackhole.Input{}, fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if len(args) < 2 {
		return blackhole.Raw(v), nil
	}
	q, err := units.New(v, args[1])
	if err != nil {
		return blackhole.Input{}, err
	}
	return blackhole.Dimensioned(q), nil
}

func setField(cmd *cobra.Command, args []string) error {
	f, err := blackhole.ParseField(args[0])
	if err != nil {
		return err
	}
	in, err := parseInput(args[1:])
	if err != nil {
		return err
	}

	hole, _, err := loadHole(cmd)
	if err != nil {
		return err
	}
	if err := hole.Set(f, in); err != nil {
		return err
	}
	slog.Debug("field set", "field", f, "input", in, "mass", hole.Mass())

	fmt.Println(viz.RenderObservables(hole, viz.ThemeByName(themeName), f))
	return nil
}

func ageHole(cmd *cobra.Command, args []string) error {
	u := "s"
	if len(args) > 1 {
		u = args[1]
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}
	elapsed, err := units.New(v, u)
	if err != nil {
		return err
	}

	hole, _, err := loadHole(cmd)
	if err != nil {
		return err
	}
	before := hole.Snapshot()
	radiated, err := hole.AgeBy(elapsed)
	if err != nil {
		return err
	}

	th := viz.ThemeByName(themeName)
	fmt.Println(viz.RenderAging(th, elapsed, radiated, before, hole.Snapshot()))
	fmt.Println(viz.RenderObservables(hole, th, -1))
	return nil
}

type stepLogger struct{}

func (stepLogger) OnStep(s track.Sample) {
	slog.Debug("step", "n", s.Step, "elapsed_s", s.ElapsedS, "mass_kg", s.MassKg)
}

func trackHole(cmd *cobra.Command, args []string) error {
	hole, cfg, err := loadHole(cmd)
	if err != nil {
		return err
	}

	tcfg := track.Config{Steps: cfg.Track.Steps, Fraction: cfg.Track.Fraction}
	if cmd.Flags().Changed("steps") {
		tcfg.Steps = steps
	}
	if cmd.Flags().Changed("fraction") {
		tcfg.Fraction = fraction
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracker := track.New(hole)
	tracker.AddObserver(stepLogger{})

	fmt.Printf("tracking %s over %d steps...\n", hole.Mass(), tcfg.Steps)
	start := time.Now()
	result, err := tracker.Run(ctx, tcfg)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("radiated: %s J\n", viz.FormatValue(result.TotalRadiatedJ))
	fmt.Printf("evaporated: %v\n", result.Evaporated)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, tcfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if plotTrack != "" {
		data, err := result.Column(plotTrack)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(viz.Plot(data, viz.PlotOptions{Caption: plotTrack, Log: true}))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tMASS (kg)\tSTEPS\tEVAPORATED\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%v\t%s\n",
			r.ID, r.Label, viz.FormatValue(r.InitialMassKg), r.StepsTaken, r.Evaporated,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, result, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	data, err := result.Column(column)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s: %s", meta.ID, column)
	if logScale {
		caption += " (log10)"
	}
	fmt.Println(viz.Plot(data, viz.PlotOptions{Caption: caption, Log: logScale}))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return storage.ExportJSON(os.Stdout, meta, samples)
	case "csv":
		return storage.WriteCSV(os.Stdout, samples)
	case "svg":
		svg, err := export.TrackToSVG(samples, column, export.SVGOptions{
			Stroke: string(viz.ThemeByName(themeName).Primary),
			Log:    logScale,
		})
		if err != nil {
			return err
		}
		fmt.Println(svg)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (want json, csv or svg)", format)
	}
}

func comparePresets(cmd *cobra.Command, args []string) error {
	tcfg := track.DefaultConfig()
	if cmd.Flags().Changed("steps") {
		tcfg.Steps = steps
	}
	if cmd.Flags().Changed("fraction") {
		tcfg.Fraction = fraction
	}

	holes := make([]*blackhole.BlackHole, len(args))
	for i, name := range args {
		p := config.GetPreset(name)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		hole, err := p.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		holes[i] = hole
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := track.NewEnsemble(holes...).Run(ctx, tcfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMASS (kg)\tLIFETIME\tRADIATED (J)\tEVAPORATED")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n",
			args[i], viz.FormatValue(r.InitialMassKg),
			viz.FormatValue(r.Samples[0].LifetimeS)+" s",
			viz.FormatValue(r.TotalRadiatedJ), r.Evaporated)
	}
	return w.Flush()
}
