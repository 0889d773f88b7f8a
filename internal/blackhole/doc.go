// Package blackhole models a Schwarzschild black hole as a single canonical
// mass from which every other observable is derived on demand.
//
// Seven observables are exposed as forward/inverse pairs:
//
//   - [BlackHole.Radius]: Schwarzschild radius, 2GM/c²
//   - [BlackHole.Area]: horizon area, 4πr²
//   - [BlackHole.Gravity]: surface gravity, c⁴/4GM
//   - [BlackHole.Energy]: rest energy, Mc²
//   - [BlackHole.Luminosity]: Hawking luminosity, ħc⁶/15360πG²M²
//   - [BlackHole.Lifetime]: evaporation time, 5120πG²M³/ħc⁴
//   - [BlackHole.Entropy]: Bekenstein–Hawking entropy in units of k_B, 4πGM²/ħc
//
// Writing any observable validates the kind of the supplied value, solves
// for the mass and stores it. The unit a value was written in becomes that
// observable's display unit for later reads.
//
// # Example
//
//	b, _ := blackhole.New(blackhole.Dimensioned(units.MustNew(2e30, "kg")), blackhole.FieldMass)
//	_ = b.SetDisplayUnit(blackhole.FieldRadius, "km")
//	fmt.Println(b.Radius()) // 2.97E+00 km
//
//	radiated, _ := b.AgeBy(units.MustNew(1, "yr"))
//
// # Thread Safety
//
// A BlackHole may be shared between goroutines. Reads take a shared lock and
// every mutation, including the read-modify-write in [BlackHole.AgeBy], is
// serialized under an exclusive lock.
package blackhole
