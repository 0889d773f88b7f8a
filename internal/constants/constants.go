// Package constants supplies the fundamental physical constants as
// dimensioned quantities (CODATA 2018 exact or recommended values).
//
// Every accessor is a pure function returning a fresh immutable value, so
// callers on any goroutine may use them freely.
package constants

import "github.com/Clayten/blackholes/internal/units"

// SI magnitudes.
const (
	GravitationalConstantSI = 6.67430e-11    // m^3 kg^-1 s^-2
	SpeedOfLightSI          = 299792458.0    // m s^-1, exact
	PlanckConstantSI        = 6.62607015e-34 // J s, exact
)

var (
	gravitation  = units.MustNew(GravitationalConstantSI, "m^3/kg*s^2")
	speedOfLight = units.MustNew(SpeedOfLightSI, "m/s")
	planck       = units.MustNew(PlanckConstantSI, "J*s")
)

// GravitationalConstant returns G.
func GravitationalConstant() units.Quantity { return gravitation }

// SpeedOfLight returns c.
func SpeedOfLight() units.Quantity { return speedOfLight }

// PlanckConstant returns h. The reduced constant ħ = h/2π is left to callers.
func PlanckConstant() units.Quantity { return planck }
