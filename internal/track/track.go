// Package track follows a black hole through its evaporation by applying
// [blackhole.BlackHole.AgeBy] in equal steps of its initial lifetime.
//
// Each step is the exact closed-form aging relation, so the samples lie on
// the analytic curve M(t) = M₀(1 - t/τ₀)^⅓ regardless of the step count.
package track

import (
	"context"
	"fmt"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/units"
)

type Config struct {
	Steps    int
	Fraction float64
}

func DefaultConfig() Config {
	return Config{Steps: 100, Fraction: 1}
}

// Sample is the state of the hole after ElapsedS seconds.
type Sample struct {
	Step        int     `json:"step"`
	ElapsedS    float64 `json:"elapsed_s"`
	MassKg      float64 `json:"mass_kg"`
	RadiusM     float64 `json:"radius_m"`
	LuminosityW float64 `json:"luminosity_w"`
	LifetimeS   float64 `json:"lifetime_s"`
	RadiatedJ   float64 `json:"radiated_j"`
}

type Result struct {
	Samples        []Sample
	InitialMassKg  float64
	TotalRadiatedJ float64
	StepsTaken     int
	Evaporated     bool
}

type Observer interface {
	OnStep(s Sample)
}

type Tracker struct {
	hole      *blackhole.BlackHole
	observers []Observer
}

func New(hole *blackhole.BlackHole) *Tracker {
	return &Tracker{hole: hole, observers: make([]Observer, 0)}
}

func (t *Tracker) AddObserver(o Observer) { t.observers = append(t.observers, o) }

// Run ages the hole through cfg.Fraction of its current lifetime in
// cfg.Steps equal steps. With Fraction 1 the last step consumes whatever
// lifetime remains so the hole ends with exactly zero mass.
func (t *Tracker) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	start := t.hole.Snapshot()
	result := &Result{
		Samples:       make([]Sample, 0, cfg.Steps+1),
		InitialMassKg: start.MassKg,
	}
	result.Samples = append(result.Samples, sampleOf(0, 0, 0, start))

	if start.MassKg == 0 {
		result.Evaporated = true
		return result, nil
	}

	dt := start.LifetimeS * cfg.Fraction / float64(cfg.Steps)
	elapsed := 0.0

	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		step := dt
		if i == cfg.Steps && cfg.Fraction >= 1 {
			step = t.hole.Snapshot().LifetimeS
		}
		if step <= 0 {
			break
		}

		radiated, err := t.hole.AgeBy(units.FromSI(step, units.Dimension{Time: 1}))
		if err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		elapsed += step
		result.TotalRadiatedJ += radiated.SI()
		result.StepsTaken++

		s := sampleOf(i, elapsed, result.TotalRadiatedJ, t.hole.Snapshot())
		result.Samples = append(result.Samples, s)
		for _, o := range t.observers {
			o.OnStep(s)
		}

		if s.MassKg == 0 {
			result.Evaporated = true
			break
		}
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Fraction <= 0 || cfg.Fraction > 1 {
		return fmt.Errorf("fraction must be in (0, 1], got %g", cfg.Fraction)
	}
	return nil
}

func sampleOf(step int, elapsed, radiated float64, s blackhole.Snapshot) Sample {
	return Sample{
		Step:        step,
		ElapsedS:    elapsed,
		MassKg:      s.MassKg,
		RadiusM:     s.RadiusM,
		LuminosityW: s.LuminosityW,
		LifetimeS:   s.LifetimeS,
		RadiatedJ:   radiated,
	}
}

// Column extracts one series from the samples for plotting.
func (r *Result) Column(name string) ([]float64, error) {
	var get func(Sample) float64
	switch name {
	case "mass":
		get = func(s Sample) float64 { return s.MassKg }
	case "radius":
		get = func(s Sample) float64 { return s.RadiusM }
	case "luminosity":
		get = func(s Sample) float64 { return s.LuminosityW }
	case "lifetime":
		get = func(s Sample) float64 { return s.LifetimeS }
	case "radiated":
		get = func(s Sample) float64 { return s.RadiatedJ }
	default:
		return nil, fmt.Errorf("unknown column: %s", name)
	}
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = get(s)
	}
	return out, nil
}

// Columns lists the names Column accepts.
func Columns() []string {
	return []string{"mass", "radius", "luminosity", "lifetime", "radiated"}
}
