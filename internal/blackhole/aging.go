package blackhole

import (
	"math"

	"github.com/Clayten/blackholes/internal/units"
)

// AgeBy advances the hole by elapsed, shortening its remaining lifetime, and
// returns the energy radiated meanwhile in the energy display unit. An
// elapsed time at or beyond the remaining lifetime evaporates the hole
// completely, leaving zero mass.
//
// elapsed must be a positive time quantity; there is no implicit unit.
func (b *BlackHole) AgeBy(elapsed units.Quantity) (units.Quantity, error) {
	if elapsed.Kind() != units.KindTime {
		return units.Quantity{}, &FieldError{Field: FieldLifetime, Value: elapsed.String(), Wrapped: ErrInvalidDimension}
	}
	if !(elapsed.SI() > 0) || math.IsInf(elapsed.SI(), 0) {
		return units.Quantity{}, &FieldError{Field: FieldLifetime, Value: elapsed.String(), Wrapped: ErrInvalidDuration}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	before := energyOf(b.mass())
	remaining, err := lifetimeOf(b.mass()).Sub(elapsed)
	if err != nil {
		return units.Quantity{}, err
	}
	if err := b.writeLocked(FieldLifetime, Dimensioned(present(remaining, b.display[FieldLifetime]))); err != nil {
		return units.Quantity{}, err
	}
	after := energyOf(b.mass())

	radiated, err := before.Sub(after)
	if err != nil {
		return units.Quantity{}, err
	}
	return present(radiated, b.display[FieldEnergy]), nil
}
