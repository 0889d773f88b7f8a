package blackhole

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/Clayten/blackholes/internal/units"
)

// BlackHole is a Schwarzschild black hole. Mass, held in kilograms, is the
// only stored physical state.
type BlackHole struct {
	mu       sync.RWMutex
	massKg   float64
	massUnit string
	display  [fieldCount]string
}

func newDefault() *BlackHole {
	b := &BlackHole{massUnit: FieldMass.BaseUnit()}
	for f := FieldMass; f < fieldCount; f++ {
		b.display[f] = f.BaseUnit()
	}
	return b
}

// New creates a black hole from a value of the given field. Any field other
// than FieldMass starts from zero mass and applies that field's setter.
func New(value Input, field Field) (*BlackHole, error) {
	b := newDefault()
	if err := b.Set(field, value); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithMass is shorthand for New(Dimensioned(m), FieldMass).
func NewWithMass(m units.Quantity) (*BlackHole, error) {
	return New(Dimensioned(m), FieldMass)
}

// Set dispatches to the setter of f.
func (b *BlackHole) Set(f Field, value Input) error {
	switch f {
	case FieldMass:
		return b.SetMass(value)
	case FieldRadius:
		return b.SetRadius(value)
	case FieldArea:
		return b.SetArea(value)
	case FieldGravity:
		return b.SetGravity(value)
	case FieldEnergy:
		return b.SetEnergy(value)
	case FieldLuminosity:
		return b.SetLuminosity(value)
	case FieldLifetime:
		return b.SetLifetime(value)
	case FieldEntropy:
		return b.SetEntropy(value)
	}
	return fmt.Errorf("%w: %v", ErrUnknownField, f)
}

// Get reads f in its display unit. Entropy is returned unitless.
func (b *BlackHole) Get(f Field) (units.Quantity, error) {
	switch f {
	case FieldMass:
		return b.Mass(), nil
	case FieldRadius, FieldArea, FieldGravity, FieldEnergy, FieldLuminosity, FieldLifetime:
		return b.read(f), nil
	case FieldEntropy:
		return units.Scalar(b.Entropy()), nil
	}
	return units.Quantity{}, fmt.Errorf("%w: %v", ErrUnknownField, f)
}

// Mass returns the mass in the current mass unit.
func (b *BlackHole) Mass() units.Quantity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return present(b.mass(), b.massUnit)
}

// SetMass replaces the mass. Raw magnitudes and unitless quantities are read
// in the current mass unit; a quantity carrying a mass unit also makes that
// unit the new mass unit.
func (b *BlackHole) SetMass(value Input) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, err := value.resolve(b.massUnit)
	if err != nil {
		return &FieldError{Field: FieldMass, Value: value.String(), Wrapped: err}
	}
	unit := b.massUnit
	switch q.Kind() {
	case units.KindMass:
		if value.IsDimensioned() {
			unit = q.Unit()
		}
	case units.KindUnitless:
		q, err = units.New(q.Value(), b.massUnit)
		if err != nil {
			return &FieldError{Field: FieldMass, Value: value.String(), Wrapped: err}
		}
	default:
		return &FieldError{Field: FieldMass, Value: value.String(), Wrapped: ErrInvalidDimension}
	}

	if err := checkMass(q.SI()); err != nil {
		return &FieldError{Field: FieldMass, Value: value.String(), Wrapped: err}
	}
	b.massKg = q.SI()
	b.massUnit = unit
	return nil
}

// MassUnit returns the unit Mass reports in.
func (b *BlackHole) MassUnit() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.massUnit
}

// SetMassUnit changes the unit Mass reports in. The physical mass is unchanged.
func (b *BlackHole) SetMassUnit(unit string) error {
	return b.SetDisplayUnit(FieldMass, unit)
}

// DisplayUnit returns the unit reads of f are converted to.
func (b *BlackHole) DisplayUnit(f Field) string {
	if !f.Valid() {
		return ""
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if f == FieldMass {
		return b.massUnit
	}
	return b.display[f]
}

// SetDisplayUnit sets the unit reads of f are converted to. The unit must
// have the kind of f.
func (b *BlackHole) SetDisplayUnit(f Field, unit string) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	probe, err := units.New(1, unit)
	if err != nil {
		return &FieldError{Field: f, Value: unit, Wrapped: err}
	}
	if probe.Kind() != f.Kind() {
		return &FieldError{Field: f, Value: unit, Wrapped: ErrInvalidDimension}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if f == FieldMass {
		b.massUnit = probe.Unit()
	} else {
		b.display[f] = probe.Unit()
	}
	return nil
}

func (b *BlackHole) Radius() units.Quantity { return b.read(FieldRadius) }

func (b *BlackHole) SetRadius(value Input) error { return b.write(FieldRadius, value) }

func (b *BlackHole) Area() units.Quantity { return b.read(FieldArea) }

func (b *BlackHole) SetArea(value Input) error { return b.write(FieldArea, value) }

// Gravity is the surface gravity at the horizon. A zero-mass hole reads zero.
func (b *BlackHole) Gravity() units.Quantity { return b.read(FieldGravity) }

// SetGravity solves for mass; a non-positive gravity collapses the mass to zero.
func (b *BlackHole) SetGravity(value Input) error { return b.write(FieldGravity, value) }

func (b *BlackHole) Energy() units.Quantity { return b.read(FieldEnergy) }

func (b *BlackHole) SetEnergy(value Input) error { return b.write(FieldEnergy, value) }

// Luminosity is the Hawking radiation power. A zero-mass hole reads zero.
func (b *BlackHole) Luminosity() units.Quantity { return b.read(FieldLuminosity) }

// SetLuminosity solves for mass; a non-positive luminosity collapses the mass to zero.
func (b *BlackHole) SetLuminosity(value Input) error { return b.write(FieldLuminosity, value) }

// Lifetime is the time left until complete evaporation.
func (b *BlackHole) Lifetime() units.Quantity { return b.read(FieldLifetime) }

// SetLifetime solves for mass; a non-positive lifetime collapses the mass to zero.
func (b *BlackHole) SetLifetime(value Input) error { return b.write(FieldLifetime, value) }

// Entropy is the Bekenstein–Hawking entropy in units of Boltzmann's constant.
func (b *BlackHole) Entropy() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return entropyOf(b.mass()).SI()
}

// SetEntropy solves for mass. Only raw magnitudes and unitless quantities
// are accepted.
func (b *BlackHole) SetEntropy(value Input) error { return b.write(FieldEntropy, value) }

// Snapshot holds every observable in SI base units.
type Snapshot struct {
	MassKg      float64 `json:"mass_kg"`
	RadiusM     float64 `json:"radius_m"`
	AreaM2      float64 `json:"area_m2"`
	GravityMS2  float64 `json:"gravity_m_s2"`
	EnergyJ     float64 `json:"energy_j"`
	LuminosityW float64 `json:"luminosity_w"`
	LifetimeS   float64 `json:"lifetime_s"`
	Entropy     float64 `json:"entropy"`
}

// Snapshot reads all observables against a single mass.
func (b *BlackHole) Snapshot() Snapshot {
	b.mu.RLock()
	m := b.mass()
	b.mu.RUnlock()

	return Snapshot{
		MassKg:      m.SI(),
		RadiusM:     radiusOf(m).SI(),
		AreaM2:      areaOf(m).SI(),
		GravityMS2:  gravityOf(m).SI(),
		EnergyJ:     energyOf(m).SI(),
		LuminosityW: luminosityOf(m).SI(),
		LifetimeS:   lifetimeOf(m).SI(),
		Entropy:     entropyOf(m).SI(),
	}
}

func (b *BlackHole) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, f := range Fields() {
		q, _ := b.Get(f)
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s: %s", f, q)
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *BlackHole) mass() units.Quantity {
	return units.FromSI(b.massKg, units.Dimension{Mass: 1})
}

func (b *BlackHole) read(f Field) units.Quantity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return present(observables[f].forward(b.mass()), b.display[f])
}

func (b *BlackHole) write(f Field, value Input) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeLocked(f, value)
}

// writeLocked validates value, solves for the new mass and commits mass and
// display unit together. Nothing is changed on failure.
func (b *BlackHole) writeLocked(f Field, value Input) error {
	q, err := value.resolve(b.display[f])
	if err != nil {
		return &FieldError{Field: f, Value: value.String(), Wrapped: err}
	}
	if q.Kind() != f.Kind() {
		return &FieldError{Field: f, Value: value.String(), Wrapped: ErrInvalidDimension}
	}

	unit := b.display[f]
	if value.IsDimensioned() && f != FieldEntropy {
		unit = q.Unit()
	}

	obs := observables[f]
	massKg := 0.0
	if !obs.collapse || q.SI() > 0 || math.IsNaN(q.SI()) {
		m, err := obs.inverse(q)
		if err != nil {
			return &FieldError{Field: f, Value: value.String(), Wrapped: err}
		}
		massKg = m.SI()
	}
	if err := checkMass(massKg); err != nil {
		return &FieldError{Field: f, Value: value.String(), Wrapped: err}
	}

	b.massKg = massKg
	b.display[f] = unit
	return nil
}

func checkMass(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < 0 {
		return ErrInvalidMass
	}
	return nil
}

// present converts q to unit. unit has already been validated against the
// kind of q, so failure falls back to q unchanged.
func present(q units.Quantity, unit string) units.Quantity {
	p, err := q.ConvertTo(unit)
	if err != nil {
		return q
	}
	return p
}
