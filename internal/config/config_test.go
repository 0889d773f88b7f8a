package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Clayten/blackholes/internal/blackhole"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field != "mass" {
		t.Errorf("expected field mass, got %s", cfg.Field)
	}
	if cfg.Value <= 0 {
		t.Error("value should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sun")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Value != 2e30 {
		t.Errorf("expected value 2e30, got %g", cfg.Value)
	}

	cfg.DisplayUnits["radius"] = "m"
	if Presets["sun"].DisplayUnits["radius"] != "km" {
		t.Error("GetPreset returned a shared map")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			b, err := GetPreset(name).Build()
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if b.Mass().SI() <= 0 {
				t.Errorf("expected positive mass, got %v", b.Mass())
			}
		})
	}
}

func TestBuild_AppliesUnits(t *testing.T) {
	b, err := GetPreset("sun").Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if b.MassUnit() != "Msun" {
		t.Errorf("expected mass unit Msun, got %q", b.MassUnit())
	}
	if b.Radius().Unit() != "km" {
		t.Errorf("expected radius in km, got %q", b.Radius().Unit())
	}
	if b.Lifetime().Unit() != "yr" {
		t.Errorf("expected lifetime in yr, got %q", b.Lifetime().Unit())
	}
}

func TestBuild_OneSecond(t *testing.T) {
	b, err := GetPreset("one_second").Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if math.Abs(b.Lifetime().SI()-1) > 1e-9 {
		t.Errorf("expected lifetime of 1 s, got %v", b.Lifetime())
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"unknown field", func(c *Config) { c.Field = "spin" }, blackhole.ErrUnknownField},
		{"wrong kind", func(c *Config) { c.Unit = "m/s" }, blackhole.ErrInvalidDimension},
		{"negative mass", func(c *Config) { c.Value = -1 }, blackhole.ErrInvalidMass},
		{"bad display unit", func(c *Config) { c.DisplayUnits = map[string]string{"radius": "J"} }, blackhole.ErrInvalidDimension},
		{"bad display field", func(c *Config) { c.DisplayUnits = map[string]string{"charge": "C"} }, blackhole.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.Build(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate_Track(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Track.Steps = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero steps")
	}

	cfg = DefaultConfig()
	cfg.Track.Fraction = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for fraction above 1")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hole.yaml")
	cfg := GetPreset("sgr_a")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Value != cfg.Value || loaded.Unit != "Msun" {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
	if loaded.DisplayUnits["radius"] != "au" {
		t.Errorf("display units lost: %v", loaded.DisplayUnits)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("field: lifetime\nvalue: 10\nunit: yr\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Field != "lifetime" || cfg.Track.Steps != DefaultSteps {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadOnto_LayersOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := "value: 3\nunit: Msun\ndisplay_units:\n  energy: erg\ntrack:\n  steps: 7\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOnto(path, GetPreset("sun"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "sun" || cfg.MassUnit != "Msun" || cfg.Field != "mass" {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if cfg.Value != 3 || cfg.Unit != "Msun" || cfg.Track.Steps != 7 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Track.Fraction != 1 {
		t.Errorf("track fraction lost: %g", cfg.Track.Fraction)
	}
	if cfg.DisplayUnits["radius"] != "km" || cfg.DisplayUnits["energy"] != "erg" {
		t.Errorf("display units not merged: %v", cfg.DisplayUnits)
	}
	if Presets["sun"].DisplayUnits["energy"] != "" {
		t.Error("preset table modified")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(map[string]string{
		"BLACKHOLE_FIELD":          "radius",
		"BLACKHOLE_VALUE":          "3",
		"BLACKHOLE_UNIT":           "km",
		"BLACKHOLE_TRACK_STEPS":    "12",
		"BLACKHOLE_DISPLAY_ENERGY": "erg",
		"OTHER":                    "ignored",
	})
	if err != nil {
		t.Fatalf("apply env failed: %v", err)
	}
	if cfg.Field != "radius" || cfg.Value != 3 || cfg.Unit != "km" || cfg.Track.Steps != 12 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.DisplayUnits["energy"] != "erg" {
		t.Errorf("expected energy display erg, got %v", cfg.DisplayUnits)
	}

	if err := cfg.ApplyEnv(map[string]string{"BLACKHOLE_VALUE": "lots"}); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	env, err := LoadEnvFile(filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("expected empty env, got %v", env)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("BLACKHOLE_MASS_UNIT=Msun\n"), 0644); err != nil {
		t.Fatal(err)
	}
	env, err = LoadEnvFile(path)
	if err != nil {
		t.Fatalf("load env failed: %v", err)
	}
	if env["BLACKHOLE_MASS_UNIT"] != "Msun" {
		t.Errorf("unexpected env: %v", env)
	}
}
