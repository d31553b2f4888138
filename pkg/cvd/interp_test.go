package cvd

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperature_TableA1_Interp(t *testing.T) {
	conv := New(&Config{Strategy: Interpolation})
	for _, tc := range tableA1 {
		t.Run(fmt.Sprintf("R=%g", tc.res), func(t *testing.T) {
			got, err := conv.Temperature(tc.res)
			require.NoError(t, err)
			assert.InDelta(t, tc.temp, got, tolFor(tc.temp))
		})
	}
}

func TestTemperature_RoundTrip_Interp(t *testing.T) {
	conv := New(&Config{Strategy: Interpolation})

	temps := make([]float64, 0, 2101)
	for temp := TempMin; temp <= TempMax; temp += 0.5 {
		temps = append(temps, temp)
	}
	rs, err := conv.ResistanceBatch(temps)
	require.NoError(t, err)

	got, err := conv.TemperatureBatch(rs)
	require.NoError(t, err)
	require.Len(t, got, len(temps))

	var worst float64
	for i, want := range temps {
		require.InDelta(t, want, got[i], tolFor(want), "round trip at t=%g", want)
		if d := math.Abs(got[i] - want); d > worst {
			worst = d
		}
	}
	t.Logf("worst round-trip error at precision 3: %.3e °C", worst)
}

func TestStrategiesAgree(t *testing.T) {
	analytic := New(nil)
	interp := New(&Config{Strategy: Interpolation})

	lo, hi := analytic.ResistanceRange()
	rs := make([]float64, 0, 1500)
	for r := lo; r <= hi; r += 0.25 {
		rs = append(rs, r)
	}

	ta, err := analytic.TemperatureBatch(rs)
	require.NoError(t, err)
	ti, err := interp.TemperatureBatch(rs)
	require.NoError(t, err)

	var worst float64
	for i, r := range rs {
		require.InDelta(t, ta[i], ti[i], tolFor(ta[i]), "strategies disagree at R=%g", r)
		if d := math.Abs(ta[i] - ti[i]); d > worst {
			worst = d
		}
	}
	t.Logf("worst analytic/interpolation disagreement: %.3e °C", worst)
}

func TestInterp_BoundarySaturation(t *testing.T) {
	conv := New(&Config{Strategy: Interpolation})
	lo, hi := conv.ResistanceRange()

	// exact bounds saturate to the grid endpoints, no error
	got, err := conv.Temperature(lo)
	require.NoError(t, err)
	assert.Equal(t, TempMin, got)

	got, err = conv.Temperature(hi)
	require.NoError(t, err)
	assert.Equal(t, TempMax, got)
}

func TestInterp_PrecisionTradeoff(t *testing.T) {
	analytic := New(nil)
	probes := []float64{-180, -56.5, -2, 0.5, 33.3, 250, 700, 849}

	for _, precision := range []int{1, 2, 3} {
		conv := New(&Config{Strategy: Interpolation, Precision: precision})
		step := math.Pow(10, -float64(precision))
		for _, temp := range probes {
			r, err := analytic.Resistance(temp)
			require.NoError(t, err)
			got, err := conv.Temperature(r)
			require.NoError(t, err)
			// linear interpolation over a near-linear curve stays well
			// inside one grid step
			assert.InDelta(t, temp, got, step, "precision=%d t=%g", precision, temp)
		}
	}
}

func TestInterp_TableGrid(t *testing.T) {
	conv := New(&Config{Strategy: Interpolation, Precision: 1})
	tab := conv.newTable()

	require.Len(t, tab.temps, 10501)
	assert.Equal(t, TempMin, tab.temps[0], "first grid point forced to domain start")
	assert.Equal(t, TempMax, tab.temps[len(tab.temps)-1], "last grid point forced to domain end")

	for i := 1; i < len(tab.res); i++ {
		require.Greater(t, tab.res[i], tab.res[i-1], "table must be strictly increasing at i=%d", i)
	}
}
