package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is an immutable dimensioned value. The zero Quantity is a
// unitless zero.
type Quantity struct {
	si     float64
	dim    Dimension
	unit   string
	factor float64
}

// New expresses v in the given unit.
func New(v float64, unit string) (Quantity, error) {
	factor, dim, err := parseUnit(unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{si: v * factor, dim: dim, unit: strings.TrimSpace(unit), factor: factor}, nil
}

// MustNew is like New but panics on an unknown unit. Intended for
// package-level constants.
func MustNew(v float64, unit string) Quantity {
	q, err := New(v, unit)
	if err != nil {
		panic(fmt.Sprintf("units: %v", err))
	}
	return q
}

// Scalar returns a unitless quantity.
func Scalar(v float64) Quantity {
	return Quantity{si: v, factor: 1}
}

// FromSI builds a quantity from an SI magnitude, labelled with the
// canonical SI expression of dim.
func FromSI(v float64, dim Dimension) Quantity {
	return Quantity{si: v, dim: dim, unit: dim.String(), factor: 1}
}

// Parse reads "<number> [unit]", e.g. "5 kg", "2e30 kg", "3.2 m/s^2".
// A bare number is unitless.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	numStr, unit, _ := strings.Cut(s, " ")
	if numStr == "" {
		return Quantity{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	return New(v, unit)
}

func (q Quantity) scale() float64 {
	if q.factor == 0 {
		return 1
	}
	return q.factor
}

// Value is the magnitude in q's own unit.
func (q Quantity) Value() float64 { return q.si / q.scale() }

// SI is the magnitude in SI base units.
func (q Quantity) SI() float64 { return q.si }

func (q Quantity) Unit() string { return q.unit }

func (q Quantity) Dimension() Dimension { return q.dim }

func (q Quantity) Kind() Kind { return KindOf(q.dim) }

func (q Quantity) IsUnitless() bool { return q.dim.IsZero() }

func (q Quantity) IsZero() bool { return q.si == 0 }

func (q Quantity) IsFinite() bool {
	return !math.IsNaN(q.si) && !math.IsInf(q.si, 0)
}

// ConvertTo re-expresses q in unit. Units of a different dimension fail
// with ErrIncompatibleUnits.
func (q Quantity) ConvertTo(unit string) (Quantity, error) {
	factor, dim, err := parseUnit(unit)
	if err != nil {
		return Quantity{}, err
	}
	if dim != q.dim {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s (%s) to %q (%s)",
			ErrIncompatibleUnits, q.unitLabel(), q.Kind(), unit, KindOf(dim))
	}
	return Quantity{si: q.si, dim: dim, unit: strings.TrimSpace(unit), factor: factor}, nil
}

// In returns the magnitude of q expressed in unit.
func (q Quantity) In(unit string) (float64, error) {
	c, err := q.ConvertTo(unit)
	if err != nil {
		return 0, err
	}
	return c.Value(), nil
}

// Add returns q+o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, q.mismatch("add", o)
	}
	return q.withSI(q.si + o.si), nil
}

// Sub returns q-o expressed in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.dim != o.dim {
		return Quantity{}, q.mismatch("subtract", o)
	}
	return q.withSI(q.si - o.si), nil
}

func (q Quantity) Mul(o Quantity) Quantity {
	return FromSI(q.si*o.si, q.dim.Mul(o.dim))
}

func (q Quantity) Div(o Quantity) Quantity {
	return FromSI(q.si/o.si, q.dim.Div(o.dim))
}

// Scale multiplies the magnitude by a pure number, keeping q's unit.
func (q Quantity) Scale(f float64) Quantity {
	return q.withSI(q.si * f)
}

func (q Quantity) Pow(n int) Quantity {
	return FromSI(math.Pow(q.si, float64(n)), q.dim.Scale(n))
}

// Root takes the n-th root. Every exponent of q's dimension must be a
// multiple of n. Even roots of negative magnitudes are NaN.
func (q Quantity) Root(n int) (Quantity, error) {
	if n <= 0 {
		return Quantity{}, fmt.Errorf("%w: root %d", ErrBadExponent, n)
	}
	if !q.dim.divisible(n) {
		return Quantity{}, fmt.Errorf("%w: root %d of %s", ErrBadExponent, n, q.unitLabel())
	}
	var v float64
	switch n {
	case 1:
		v = q.si
	case 2:
		v = math.Sqrt(q.si)
	case 3:
		v = math.Cbrt(q.si)
	default:
		if q.si < 0 && n%2 == 0 {
			v = math.NaN()
		} else {
			v = math.Copysign(math.Pow(math.Abs(q.si), 1/float64(n)), q.si)
		}
	}
	return FromSI(v, q.dim.root(n)), nil
}

// Compare returns -1, 0 or +1. Quantities of different dimension are not
// comparable.
func (q Quantity) Compare(o Quantity) (int, error) {
	if q.dim != o.dim {
		return 0, q.mismatch("compare", o)
	}
	switch {
	case q.si < o.si:
		return -1, nil
	case q.si > o.si:
		return 1, nil
	}
	return 0, nil
}

func (q Quantity) String() string {
	if q.unit == "" {
		return fmt.Sprintf("%.2E", q.Value())
	}
	return fmt.Sprintf("%.2E %s", q.Value(), q.unit)
}

func (q Quantity) withSI(v float64) Quantity {
	q.si = v
	return q
}

func (q Quantity) unitLabel() string {
	if q.unit == "" {
		return "unitless"
	}
	return q.unit
}

func (q Quantity) mismatch(op string, o Quantity) error {
	return fmt.Errorf("%w: cannot %s %s and %s", ErrIncompatibleUnits, op, q.unitLabel(), o.unitLabel())
}
