package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type unitDef struct {
	factor     float64
	dim        Dimension
	prefixable bool
}

var (
	dimMass   = Dimension{Mass: 1}
	dimLength = Dimension{Length: 1}
	dimTime   = Dimension{Time: 1}
	dimEnergy = Dimension{Mass: 1, Length: 2, Time: -2}
	dimPower  = Dimension{Mass: 1, Length: 2, Time: -3}
)

const (
	SolarMass       = 1.98847e30 // kg, IAU nominal
	SolarLuminosity = 3.828e26   // W, IAU nominal
	JulianYear      = 365.25 * 86400
	Electronvolt    = 1.602176634e-19
)

var registry = map[string]unitDef{
	"kg":    {1, dimMass, false},
	"g":     {1e-3, dimMass, true},
	"t":     {1e3, dimMass, false},
	"tonne": {1e3, dimMass, false},
	"lb":    {0.45359237, dimMass, false},
	"Msun":  {SolarMass, dimMass, false},
	"M☉":    {SolarMass, dimMass, false},

	"m":  {1, dimLength, true},
	"au": {1.495978707e11, dimLength, false},
	"ly": {9.4607304725808e15, dimLength, false},
	"pc": {3.0856775814913673e16, dimLength, true},
	"mi": {1609.344, dimLength, false},
	"ft": {0.3048, dimLength, false},

	"s":       {1, dimTime, true},
	"sec":     {1, dimTime, false},
	"min":     {60, dimTime, false},
	"h":       {3600, dimTime, false},
	"hr":      {3600, dimTime, false},
	"d":       {86400, dimTime, false},
	"day":     {86400, dimTime, false},
	"days":    {86400, dimTime, false},
	"week":    {7 * 86400, dimTime, false},
	"yr":      {JulianYear, dimTime, true},
	"year":    {JulianYear, dimTime, false},
	"years":   {JulianYear, dimTime, false},
	"Hz":      {1, Dimension{Time: -1}, true},
	"gee":     {9.80665, Dimension{Length: 1, Time: -2}, false},
	"N":       {1, Dimension{Mass: 1, Length: 1, Time: -2}, true},
	"Pa":      {1, Dimension{Mass: 1, Length: -1, Time: -2}, true},
	"J":       {1, dimEnergy, true},
	"eV":      {Electronvolt, dimEnergy, true},
	"erg":     {1e-7, dimEnergy, false},
	"cal":     {4.184, dimEnergy, false},
	"kWh":     {3.6e6, dimEnergy, false},
	"megaton": {4.184e15, dimEnergy, false},
	"W":       {1, dimPower, true},
	"hp":      {745.7, dimPower, false},
	"Lsun":    {SolarLuminosity, dimPower, false},
	"L☉":      {SolarLuminosity, dimPower, false},
}

// Two-letter prefixes come first so "da" wins over "d".
var prefixes = []struct {
	sym    string
	factor float64
}{
	{"da", 1e1},
	{"Y", 1e24}, {"Z", 1e21}, {"E", 1e18}, {"P", 1e15}, {"T", 1e12},
	{"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2}, {"d", 1e-1},
	{"c", 1e-2}, {"m", 1e-3}, {"u", 1e-6}, {"µ", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18},
}

func lookup(sym string) (float64, Dimension, error) {
	if def, ok := registry[sym]; ok {
		return def.factor, def.dim, nil
	}
	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(sym, p.sym)
		if !ok || rest == "" {
			continue
		}
		if def, ok := registry[rest]; ok && def.prefixable {
			return p.factor * def.factor, def.dim, nil
		}
	}
	return 0, Dimension{}, fmt.Errorf("%w: %q", ErrUnknownUnit, sym)
}

var normalizer = strings.NewReplacer("²", "^2", "³", "^3", "·", "*", "⋅", "*")

// parseUnit resolves a unit expression to its SI scale factor and dimension.
// The empty expression is the unitless scale 1.
func parseUnit(expr string) (float64, Dimension, error) {
	expr = normalizer.Replace(strings.TrimSpace(expr))
	if expr == "" {
		return 1, Dimensionless, nil
	}

	num, den, _ := strings.Cut(expr, "/")
	factor, dim, err := parseTerms(num)
	if err != nil {
		return 0, Dimension{}, err
	}
	if strings.TrimSpace(den) == "" {
		if strings.Contains(expr, "/") {
			return 0, Dimension{}, fmt.Errorf("%w: empty denominator in %q", ErrUnknownUnit, expr)
		}
		return factor, dim, nil
	}
	if strings.Contains(den, "/") {
		return 0, Dimension{}, fmt.Errorf("%w: more than one '/' in %q", ErrUnknownUnit, expr)
	}
	dfactor, ddim, err := parseTerms(den)
	if err != nil {
		return 0, Dimension{}, err
	}
	dim = dim.Div(ddim)
	if dim.Overflowed() {
		return 0, Dimension{}, fmt.Errorf("%w: %q overflows", ErrBadExponent, expr)
	}
	return factor / dfactor, dim, nil
}

func parseTerms(s string) (float64, Dimension, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '*' || r == ' ' || r == '\t' })
	factor, dim := 1.0, Dimensionless
	for _, f := range fields {
		sym, expStr, hasExp := strings.Cut(f, "^")
		exp := 1
		if hasExp {
			n, err := strconv.Atoi(expStr)
			if err != nil || n == 0 || n < math.MinInt8 || n > math.MaxInt8 {
				return 0, Dimension{}, fmt.Errorf("%w: %q", ErrBadExponent, f)
			}
			exp = n
		}
		if sym == "1" {
			continue
		}
		tf, td, err := lookup(sym)
		if err != nil {
			return 0, Dimension{}, err
		}
		factor *= math.Pow(tf, float64(exp))
		dim = dim.Mul(td.Scale(exp))
		if dim.Overflowed() {
			return 0, Dimension{}, fmt.Errorf("%w: %q overflows", ErrBadExponent, s)
		}
	}
	return factor, dim, nil
}
