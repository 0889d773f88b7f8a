package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/config"
	"github.com/Clayten/blackholes/internal/track"
	"github.com/Clayten/blackholes/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	envFile    string
	verbose    bool
	themeName  string
	// initial state overrides
	field    string
	value    float64
	unit     string
	massUnit string
	display  []string
	// track
	steps     int
	fraction  float64
	plotTrack string
	saveRun   bool
	// plot / export
	column   string
	logScale bool
	format   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blackhole",
		Short: "schwarzschild black hole calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbose)
		},
		RunE: runExplorer,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".blackhole", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with BLACKHOLE_* overrides")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&themeName, "theme", "horizon", "color theme")
	pf.StringVar(&field, "field", "", "field the initial value describes")
	pf.Float64Var(&value, "value", 0, "initial value")
	pf.StringVar(&unit, "unit", "", "unit of the initial value")
	pf.StringVar(&massUnit, "mass-unit", "", "unit mass is reported in")
	pf.StringArrayVar(&display, "display", nil, "display unit as field=unit (repeatable)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print every observable",
		Args:  cobra.NoArgs,
		RunE:  showHole,
	}

	setCmd := &cobra.Command{
		Use:   "set [field] [value] [unit]",
		Short: "write one observable and print the result",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  setField,
	}

	ageCmd := &cobra.Command{
		Use:   "age [duration] [unit]",
		Short: "evaporate the hole for a span of time",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  ageHole,
	}

	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "follow the hole through its evaporation",
		Args:  cobra.NoArgs,
		RunE:  trackHole,
	}
	trackCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (default from config)")
	trackCmd.Flags().Float64Var(&fraction, "fraction", 0, "fraction of the lifetime to cover (default from config)")
	trackCmd.Flags().StringVar(&plotTrack, "plot", "", "plot a column after tracking: "+strings.Join(track.Columns(), ", "))
	trackCmd.Flags().BoolVar(&saveRun, "save", false, "store the run under --data")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "mass", "column to plot: "+strings.Join(track.Columns(), ", "))
	plotCmd.Flags().BoolVar(&logScale, "log", false, "plot log10 of the values")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "json, csv or svg")
	exportCmd.Flags().StringVar(&column, "column", "mass", "column for svg export")
	exportCmd.Flags().BoolVar(&logScale, "log", false, "log10 scale for svg export")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "track several presets side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE:  comparePresets,
	}
	compareCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (default 100)")
	compareCmd.Flags().Float64Var(&fraction, "fraction", 0, "fraction of each lifetime to cover (default 1)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s = %g %s\n", name, p.Field, p.Value, p.Unit)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive explorer",
		RunE:  runExplorer,
	}

	rootCmd.AddCommand(showCmd, setCmd, ageCmd, trackCmd, listCmd, plotCmd, exportCmd, compareCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

// loadConfig layers, lowest first: defaults, preset, config file, env file,
// process environment, flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fileEnv, err := config.LoadEnvFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	if err := cfg.ApplyEnv(fileEnv); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(processEnv()); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("field") {
		cfg.Field = field
	}
	if flags.Changed("value") {
		cfg.Value = value
	}
	if flags.Changed("unit") {
		cfg.Unit = unit
	}
	if flags.Changed("mass-unit") {
		cfg.MassUnit = massUnit
	}
	if err := applyDisplay(cfg, display); err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "field", cfg.Field, "value", cfg.Value, "unit", cfg.Unit, "preset", preset)
	return cfg, nil
}

func processEnv() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, config.EnvPrefix) {
			env[k] = v
		}
	}
	return env
}

func applyDisplay(cfg *config.Config, pairs []string) error {
	for _, p := range pairs {
		name, u, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid --display %q, want field=unit", p)
		}
		if cfg.DisplayUnits == nil {
			cfg.DisplayUnits = make(map[string]string)
		}
		cfg.DisplayUnits[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(u)
	}
	return nil
}

func loadHole(cmd *cobra.Command) (*blackhole.BlackHole, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	hole, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return hole, cfg, nil
}

func runExplorer(cmd *cobra.Command, args []string) error {
	hole, _, err := loadHole(cmd)
	if err != nil {
		return err
	}
	return viz.RunExplorer(hole)
}
