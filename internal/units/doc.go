// Package units provides dimensioned quantities over the mass, length and
// time base dimensions.
//
// A [Quantity] carries its magnitude in SI base units together with a
// [Dimension] (integer exponents of kg, m and s) and the label of the unit it
// was expressed in:
//
//   - [New] and [Parse] build quantities from a magnitude and a unit expression
//   - [Quantity.Mul], [Quantity.Div], [Quantity.Pow] and [Quantity.Root]
//     combine dimensions algebraically
//   - [Quantity.Add] and [Quantity.Sub] require matching dimensions
//   - [Quantity.ConvertTo] re-expresses a quantity in another unit of the same [Kind]
//
// # Unit Expressions
//
// Terms are joined by '*', '·' or whitespace and may carry an integer
// exponent ("m^2", "m²"). Everything after the first '/' is the denominator,
// so "m^3/kg*s^2" reads as m³·kg⁻¹·s⁻². Metric prefixes apply to g, m, s,
// J, W, eV, N, Hz, Pa, pc and yr:
//
//	q, _ := units.Parse("2.5 km")
//	m, _ := q.In("m") // 2500
//
// Quantities are immutable values and safe for concurrent use.
package units
