package cvd

import "errors"

var (
	// ErrTemperatureRange indicates a temperature outside [TempMin, TempMax].
	ErrTemperatureRange = errors.New("cvd: temperature out of range")

	// ErrResistanceRange indicates a resistance outside the achievable range
	// for the configured coefficients (the image of [TempMin, TempMax]).
	ErrResistanceRange = errors.New("cvd: resistance out of range")

	// ErrNumericInstability indicates that the analytic inverse hit a
	// non-real intermediate (negative square-root operand or degenerate
	// divisor). Not reachable with standard platinum coefficients; surfaced
	// instead of returning NaN when coefficients are ill-conditioned.
	ErrNumericInstability = errors.New("cvd: numeric instability in analytic inverse")
)
