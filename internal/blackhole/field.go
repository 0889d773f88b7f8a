package blackhole

import (
	"fmt"
	"strings"

	"github.com/Clayten/blackholes/internal/units"
)

// Field selects the canonical mass or one of the derived observables.
type Field int

const (
	FieldMass Field = iota
	FieldRadius
	FieldArea
	FieldGravity
	FieldEnergy
	FieldLuminosity
	FieldLifetime
	FieldEntropy

	fieldCount
)

var fieldInfo = [fieldCount]struct {
	name     string
	kind     units.Kind
	baseUnit string
}{
	FieldMass:       {"mass", units.KindMass, "kg"},
	FieldRadius:     {"radius", units.KindLength, "m"},
	FieldArea:       {"area", units.KindArea, "m^2"},
	FieldGravity:    {"gravity", units.KindAcceleration, "m/s^2"},
	FieldEnergy:     {"energy", units.KindEnergy, "J"},
	FieldLuminosity: {"luminosity", units.KindPower, "W"},
	FieldLifetime:   {"lifetime", units.KindTime, "s"},
	FieldEntropy:    {"entropy", units.KindUnitless, ""},
}

var fieldAliases = map[string]Field{
	"total_energy":         FieldEnergy,
	"surface_gravity":      FieldGravity,
	"schwarzschild_radius": FieldRadius,
}

// Fields lists every field in declaration order.
func Fields() []Field {
	fs := make([]Field, 0, fieldCount)
	for f := FieldMass; f < fieldCount; f++ {
		fs = append(fs, f)
	}
	return fs
}

// ParseField resolves a field name, case-insensitively.
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f := FieldMass; f < fieldCount; f++ {
		if fieldInfo[f].name == name {
			return f, nil
		}
	}
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (f Field) Valid() bool {
	return f >= FieldMass && f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldInfo[f].name
}

// Kind is the physical dimension a value assigned to f must have.
func (f Field) Kind() units.Kind {
	if !f.Valid() {
		return units.KindOther
	}
	return fieldInfo[f].kind
}

// BaseUnit is the default display unit of f.
func (f Field) BaseUnit() string {
	if !f.Valid() {
		return ""
	}
	return fieldInfo[f].baseUnit
}
