package units

import "errors"

var (
	ErrUnknownUnit       = errors.New("units: unknown unit")
	ErrIncompatibleUnits = errors.New("units: incompatible dimensions")
	ErrBadExponent       = errors.New("units: invalid exponent")
	ErrParse             = errors.New("units: cannot parse quantity")
)
