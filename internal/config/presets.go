package config

import "sort"

var Presets = map[string]*Config{
	"sun": {
		Name: "sun", Field: "mass", Value: 2e30, Unit: "kg", MassUnit: "Msun",
		DisplayUnits: map[string]string{"radius": "km", "lifetime": "yr"},
		Track:        TrackConfig{Steps: 100, Fraction: 1},
	},
	"earth": {
		Name: "earth", Field: "mass", Value: 5.972e24, Unit: "kg",
		DisplayUnits: map[string]string{"radius": "mm", "lifetime": "yr"},
		Track:        TrackConfig{Steps: 100, Fraction: 1},
	},
	"moon": {
		Name: "moon", Field: "mass", Value: 7.342e22, Unit: "kg",
		DisplayUnits: map[string]string{"radius": "um", "lifetime": "yr"},
		Track:        TrackConfig{Steps: 100, Fraction: 1},
	},
	"sgr_a": {
		Name: "sgr_a", Field: "mass", Value: 4.3e6, Unit: "Msun",
		DisplayUnits: map[string]string{"radius": "au", "lifetime": "Gyr"},
		Track:        TrackConfig{Steps: 100, Fraction: 1},
	},
	"m87": {
		Name: "m87", Field: "mass", Value: 6.5e9, Unit: "Msun",
		DisplayUnits: map[string]string{"radius": "au", "lifetime": "Gyr"},
		Track:        TrackConfig{Steps: 100, Fraction: 1},
	},
	"primordial": {
		Name: "primordial", Field: "mass", Value: 1e12, Unit: "kg",
		DisplayUnits: map[string]string{"radius": "fm", "lifetime": "Gyr", "luminosity": "MW"},
		Track:        TrackConfig{Steps: 200, Fraction: 1},
	},
	"one_second": {
		Name: "one_second", Field: "lifetime", Value: 1, Unit: "s",
		DisplayUnits: map[string]string{"luminosity": "PW", "energy": "megaton"},
		Track:        TrackConfig{Steps: 50, Fraction: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.DisplayUnits = make(map[string]string, len(p.DisplayUnits))
	for k, v := range p.DisplayUnits {
		cfg.DisplayUnits[k] = v
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
