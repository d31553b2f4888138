package cvd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveQuartic_NegativeDomainRoots(t *testing.T) {
	conv := New(nil)
	r0, a, b, c := conv.Coefficients()

	for _, temp := range []float64{-200, -156, -100, -42.5, -11, -0.5} {
		r, err := conv.Resistance(temp)
		require.NoError(t, err)

		got, err := solveQuartic(-100, b/c, a/c, (1-r/r0)/c)
		require.NoError(t, err, "t=%g", temp)
		require.InDelta(t, temp, got, 1e-6, "t=%g", temp)
	}
}

func TestSolveCubic_ResolventRegime(t *testing.T) {
	// x³ - 6x² + 11x - 6 has roots 1, 2, 3; shifted so only one is real:
	// x³ + 0x² + 0x - 8 = 0 has the single real root 2.
	got, err := solveCubic(0, 0, -8)
	require.NoError(t, err)
	require.InDelta(t, 2.0, got, 1e-12)
}

func TestSolveCubic_ThreeRealRootsRejected(t *testing.T) {
	// x³ - 3x = 0 has three real roots; outside the solver's precondition.
	_, err := solveCubic(0, -3, 0)
	require.ErrorIs(t, err, ErrNumericInstability)
}
