package cvd

import (
	"fmt"
	"math"
)

// solveCubic finds the real root of x³ + a2·x² + a1·x + a0 = 0 by a reduced
// Cardano formula.
//
// This is a partial implementation specialized for the resolvent cubic that
// arises when inverting the Callendar-Van Dusen quartic over the negative
// temperature domain: it assumes the single-real-root regime (positive
// Cardano discriminant). It is neither stable nor correct for the general
// cubic and must not be used as one.
func solveCubic(a2, a1, a0 float64) (float64, error) {
	q := a1/3 - a2*a2/9
	r := (a1*a2-3*a0)/6 - a2*a2*a2/27
	disc := r*r + q*q*q
	if disc < 0 {
		return 0, fmt.Errorf("%w: cubic discriminant %g < 0 (three real roots)", ErrNumericInstability, disc)
	}
	a := math.Cbrt(math.Abs(r) + math.Sqrt(disc))
	if a == 0 {
		return 0, fmt.Errorf("%w: degenerate cubic", ErrNumericInstability)
	}
	return a - q/a - a2/3, nil
}

// solveQuartic finds the relevant real root of
// x⁴ + a3·x³ + a2·x² + a1·x + a0 = 0 by Ferrari's method: depress the
// quartic, solve the resolvent cubic, factor into two quadratics and take the
// root lying in the sub-zero temperature range.
//
// Like solveCubic this is a partial implementation with a narrow
// precondition: exactly one root of the quartic is physically relevant, which
// holds for platinum-sensor coefficients over [-200 °C, 0 °C). Do not reuse
// it as a general quartic solver.
func solveQuartic(a3, a2, a1, a0 float64) (float64, error) {
	s := a3 / 4
	b0 := a0 - a1*s + a2*s*s - 3*s*s*s*s
	b1 := a1 - 2*a2*s + 8*s*s*s
	b2 := a2 - 6*s*s

	m, err := solveCubic(b2, b2*b2/4-b0, -b1*b1/8)
	if err != nil {
		return 0, err
	}
	inner := m*m + b2*m + b2*b2/4 - b0
	if inner < 0 {
		return 0, fmt.Errorf("%w: negative operand %g in quartic factorization", ErrNumericInstability, inner)
	}
	rr := -math.Sqrt(inner)
	if m < 0 {
		return 0, fmt.Errorf("%w: negative resolvent root %g", ErrNumericInstability, m)
	}
	tail := -m/2 - b2/2 - rr
	if tail < 0 {
		return 0, fmt.Errorf("%w: negative operand %g in root extraction", ErrNumericInstability, tail)
	}
	return math.Sqrt(m/2) - s - math.Sqrt(tail), nil
}
