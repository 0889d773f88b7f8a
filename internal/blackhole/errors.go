package blackhole

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a value whose kind does not match the
	// observable it was assigned to.
	ErrInvalidDimension = errors.New("blackhole: invalid dimension")

	// ErrInvalidMass indicates a resulting mass that is negative, infinite or NaN.
	ErrInvalidMass = errors.New("blackhole: mass must be finite and non-negative")

	// ErrUnknownField indicates a field selector outside the supported set.
	ErrUnknownField = errors.New("blackhole: unknown field")

	// ErrInvalidDuration indicates a non-positive or non-finite aging interval.
	ErrInvalidDuration = errors.New("blackhole: elapsed time must be positive and finite")
)

// FieldError wraps a validation failure with the field and value involved.
type FieldError struct {
	Field   Field
	Value   string
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v (%s = %s)", e.Wrapped, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
