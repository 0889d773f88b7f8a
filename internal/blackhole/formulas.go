package blackhole

import (
	"math"

	"github.com/Clayten/blackholes/internal/constants"
	"github.com/Clayten/blackholes/internal/units"
)

// observable pairs the closed-form relation between mass and one derived
// quantity. collapse marks observables whose non-positive values mean a
// fully evaporated hole.
type observable struct {
	forward  func(m units.Quantity) units.Quantity
	inverse  func(v units.Quantity) (units.Quantity, error)
	collapse bool
}

var observables = map[Field]observable{
	FieldRadius:     {forward: radiusOf, inverse: massFromRadius},
	FieldArea:       {forward: areaOf, inverse: massFromArea},
	FieldGravity:    {forward: gravityOf, inverse: massFromGravity, collapse: true},
	FieldEnergy:     {forward: energyOf, inverse: massFromEnergy},
	FieldLuminosity: {forward: luminosityOf, inverse: massFromLuminosity, collapse: true},
	FieldLifetime:   {forward: lifetimeOf, inverse: massFromLifetime, collapse: true},
	FieldEntropy:    {forward: entropyOf, inverse: massFromEntropy},
}

func zeroOf(k units.Kind) units.Quantity {
	dim, _ := k.Dimension()
	return units.FromSI(0, dim)
}

func g() units.Quantity { return constants.GravitationalConstant() }

func c() units.Quantity { return constants.SpeedOfLight() }

// hbar is the reduced Planck constant h/2π.
func hbar() units.Quantity { return constants.PlanckConstant().Scale(1 / (2 * math.Pi)) }

// r = 2GM/c²
func radiusOf(m units.Quantity) units.Quantity {
	return g().Mul(m).Scale(2).Div(c().Pow(2))
}

// M = rc²/2G
func massFromRadius(r units.Quantity) (units.Quantity, error) {
	return r.Mul(c().Pow(2)).Div(g().Scale(2)), nil
}

// A = 4πr²
func areaOf(m units.Quantity) units.Quantity {
	return radiusOf(m).Pow(2).Scale(4 * math.Pi)
}

// M = √(A/16πG²)·c²
func massFromArea(a units.Quantity) (units.Quantity, error) {
	root, err := a.Div(g().Pow(2).Scale(16 * math.Pi)).Root(2)
	if err != nil {
		return units.Quantity{}, err
	}
	return root.Mul(c().Pow(2)), nil
}

// γ = c⁴/4GM
func gravityOf(m units.Quantity) units.Quantity {
	if m.IsZero() {
		return zeroOf(units.KindAcceleration)
	}
	return c().Pow(4).Div(g().Mul(m).Scale(4))
}

// M = c⁴/4Gγ
func massFromGravity(a units.Quantity) (units.Quantity, error) {
	return c().Pow(4).Div(g().Mul(a).Scale(4)), nil
}

// E = Mc²
func energyOf(m units.Quantity) units.Quantity {
	return m.Mul(c().Pow(2))
}

// M = E/c²
func massFromEnergy(e units.Quantity) (units.Quantity, error) {
	return e.Div(c().Pow(2)), nil
}

func luminosityCoefficient() units.Quantity {
	return hbar().Mul(c().Pow(6)).Div(g().Pow(2).Scale(15360 * math.Pi))
}

// L = ħc⁶/15360πG²M²
func luminosityOf(m units.Quantity) units.Quantity {
	if m.IsZero() {
		return zeroOf(units.KindPower)
	}
	return luminosityCoefficient().Div(m).Div(m)
}

// M = √(ħc⁶/15360πG²L)
func massFromLuminosity(l units.Quantity) (units.Quantity, error) {
	return luminosityCoefficient().Div(l).Root(2)
}

func lifetimeCoefficient() units.Quantity {
	return g().Pow(2).Scale(5120 * math.Pi).Div(hbar().Mul(c().Pow(4)))
}

// τ = 5120πG²M³/ħc⁴
func lifetimeOf(m units.Quantity) units.Quantity {
	return lifetimeCoefficient().Mul(m.Pow(3))
}

// M = ∛(τħc⁴/5120πG²)
func massFromLifetime(t units.Quantity) (units.Quantity, error) {
	return t.Div(lifetimeCoefficient()).Root(3)
}

func entropyCoefficient() units.Quantity {
	return g().Scale(4 * math.Pi).Div(hbar().Mul(c()))
}

// S/k_B = 4πGM²/ħc
func entropyOf(m units.Quantity) units.Quantity {
	return entropyCoefficient().Mul(m).Mul(m)
}

// M = √S / √(4πG/ħc); S/coefficient would underflow for tiny masses.
func massFromEntropy(s units.Quantity) (units.Quantity, error) {
	rs, err := s.Root(2)
	if err != nil {
		return units.Quantity{}, err
	}
	rc, err := entropyCoefficient().Root(2)
	if err != nil {
		return units.Quantity{}, err
	}
	return rs.Div(rc), nil
}
