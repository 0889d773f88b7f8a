package blackhole

import (
	"strconv"

	"github.com/Clayten/blackholes/internal/units"
)

// Input is a value handed to a setter: either a raw magnitude, read in the
// target's current display unit, or a dimensioned quantity.
type Input struct {
	raw         float64
	q           units.Quantity
	dimensioned bool
}

// Raw wraps a bare magnitude.
func Raw(v float64) Input {
	return Input{raw: v}
}

// Dimensioned wraps a quantity that carries its own unit.
func Dimensioned(q units.Quantity) Input {
	return Input{q: q, dimensioned: true}
}

func (in Input) IsDimensioned() bool { return in.dimensioned }

func (in Input) String() string {
	if in.dimensioned {
		return in.q.String()
	}
	return strconv.FormatFloat(in.raw, 'g', -1, 64)
}

// resolve returns the input as a quantity, reading raw magnitudes in unit.
func (in Input) resolve(unit string) (units.Quantity, error) {
	if in.dimensioned {
		return in.q, nil
	}
	return units.New(in.raw, unit)
}
