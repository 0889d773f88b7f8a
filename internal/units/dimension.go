package units

import (
	"math"
	"strconv"
	"strings"
)

// Dimension holds the exponents of the kg, m and s base units. Arithmetic
// whose result leaves the int8 range yields an overflowed dimension, which
// matches no Kind and propagates through further arithmetic.
type Dimension struct {
	Mass   int8
	Length int8
	Time   int8

	overflow bool
}

// Dimensionless is the dimension of pure numbers.
var Dimensionless = Dimension{}

func dimensionOf(mass, length, time int) Dimension {
	for _, e := range [...]int{mass, length, time} {
		if e < math.MinInt8 || e > math.MaxInt8 {
			return Dimension{overflow: true}
		}
	}
	return Dimension{Mass: int8(mass), Length: int8(length), Time: int8(time)}
}

func (d Dimension) Mul(o Dimension) Dimension {
	if d.overflow || o.overflow {
		return Dimension{overflow: true}
	}
	return dimensionOf(int(d.Mass)+int(o.Mass), int(d.Length)+int(o.Length), int(d.Time)+int(o.Time))
}

func (d Dimension) Div(o Dimension) Dimension {
	if d.overflow || o.overflow {
		return Dimension{overflow: true}
	}
	return dimensionOf(int(d.Mass)-int(o.Mass), int(d.Length)-int(o.Length), int(d.Time)-int(o.Time))
}

func (d Dimension) Scale(n int) Dimension {
	if d.overflow {
		return d
	}
	return dimensionOf(int(d.Mass)*n, int(d.Length)*n, int(d.Time)*n)
}

func (d Dimension) IsZero() bool {
	return d == Dimensionless
}

// Overflowed reports whether an exponent left the int8 range.
func (d Dimension) Overflowed() bool {
	return d.overflow
}

// divisible reports whether every exponent is a multiple of n.
func (d Dimension) divisible(n int) bool {
	if d.overflow {
		return false
	}
	return int(d.Mass)%n == 0 && int(d.Length)%n == 0 && int(d.Time)%n == 0
}

func (d Dimension) root(n int) Dimension {
	return dimensionOf(int(d.Mass)/n, int(d.Length)/n, int(d.Time)/n)
}

// String renders the dimension as an SI unit expression that Parse accepts,
// e.g. "kg*m^2/s^2".
func (d Dimension) String() string {
	if d.overflow {
		return "overflow"
	}
	var num, den []string
	add := func(sym string, exp int8) {
		switch {
		case exp > 0:
			num = append(num, term(sym, exp))
		case exp < 0:
			den = append(den, term(sym, -exp))
		}
	}
	add("kg", d.Mass)
	add("m", d.Length)
	add("s", d.Time)

	if len(num) == 0 && len(den) == 0 {
		return ""
	}
	n := strings.Join(num, "*")
	if n == "" {
		n = "1"
	}
	if len(den) == 0 {
		return n
	}
	return n + "/" + strings.Join(den, "*")
}

func term(sym string, exp int8) string {
	if exp == 1 {
		return sym
	}
	return sym + "^" + strconv.Itoa(int(exp))
}
