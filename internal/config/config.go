package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/units"
)

const (
	DefaultField    = "mass"
	DefaultValue    = 2e30
	DefaultUnit     = "kg"
	DefaultSteps    = 100
	DefaultFraction = 1.0
)

// EnvPrefix namespaces the environment overrides read by ApplyEnv.
const EnvPrefix = "BLACKHOLE_"

type Config struct {
	Name         string            `yaml:"name,omitempty"`
	Field        string            `yaml:"field"`
	Value        float64           `yaml:"value"`
	Unit         string            `yaml:"unit"`
	MassUnit     string            `yaml:"mass_unit,omitempty"`
	DisplayUnits map[string]string `yaml:"display_units,omitempty"`
	Track        TrackConfig       `yaml:"track"`
}

type TrackConfig struct {
	Steps    int     `yaml:"steps"`
	Fraction float64 `yaml:"fraction"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: DefaultField,
		Value: DefaultValue,
		Unit:  DefaultUnit,
		Track: TrackConfig{
			Steps:    DefaultSteps,
			Fraction: DefaultFraction,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over base: keys present in the file replace base's
// values and display_units entries are merged. base is modified and returned.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file. A missing file
// yields an empty map.
func LoadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return env, nil
}

// ApplyEnv overrides fields from BLACKHOLE_* keys: FIELD, VALUE, UNIT,
// MASS_UNIT, TRACK_STEPS, TRACK_FRACTION and DISPLAY_<FIELD>.
func (c *Config) ApplyEnv(env map[string]string) error {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name, ok := strings.CutPrefix(k, EnvPrefix)
		if !ok {
			continue
		}
		v := strings.TrimSpace(env[k])
		switch name {
		case "FIELD":
			c.Field = v
		case "VALUE":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			c.Value = f
		case "UNIT":
			c.Unit = v
		case "MASS_UNIT":
			c.MassUnit = v
		case "TRACK_STEPS":
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			c.Track.Steps = n
		case "TRACK_FRACTION":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			c.Track.Fraction = f
		default:
			field, ok := strings.CutPrefix(name, "DISPLAY_")
			if !ok {
				continue
			}
			if c.DisplayUnits == nil {
				c.DisplayUnits = make(map[string]string)
			}
			c.DisplayUnits[strings.ToLower(field)] = v
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := blackhole.ParseField(c.Field); err != nil {
		return err
	}
	for name := range c.DisplayUnits {
		if _, err := blackhole.ParseField(name); err != nil {
			return fmt.Errorf("display_units: %w", err)
		}
	}
	if c.Track.Steps <= 0 {
		return fmt.Errorf("track steps must be positive, got %d", c.Track.Steps)
	}
	if c.Track.Fraction <= 0 || c.Track.Fraction > 1 {
		return fmt.Errorf("track fraction must be in (0, 1], got %g", c.Track.Fraction)
	}
	return nil
}

// Input returns the configured initial value. An empty unit yields a raw
// magnitude read in the field's base unit.
func (c *Config) Input() (blackhole.Input, error) {
	if c.Unit == "" {
		return blackhole.Raw(c.Value), nil
	}
	q, err := units.New(c.Value, c.Unit)
	if err != nil {
		return blackhole.Input{}, err
	}
	return blackhole.Dimensioned(q), nil
}

// Build constructs the black hole described by c and applies its unit
// preferences.
func (c *Config) Build() (*blackhole.BlackHole, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	field, _ := blackhole.ParseField(c.Field)
	in, err := c.Input()
	if err != nil {
		return nil, err
	}
	b, err := blackhole.New(in, field)
	if err != nil {
		return nil, err
	}

	if c.MassUnit != "" {
		if err := b.SetMassUnit(c.MassUnit); err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(c.DisplayUnits))
	for name := range c.DisplayUnits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, _ := blackhole.ParseField(name)
		if err := b.SetDisplayUnit(f, c.DisplayUnits[name]); err != nil {
			return nil, err
		}
	}
	return b, nil
}
