package cvd

import (
	"math"
	"sort"
)

// interpTable is an ephemeral (temperature, resistance) grid over the full
// domain, strictly increasing in both columns. Built per call, never shared.
type interpTable struct {
	temps []float64
	res   []float64
}

// newTable evaluates the forward polynomial over a uniform temperature grid
// with step 10^-Precision. Both endpoints are forced to exact domain bounds
// so accumulated step drift cannot shave the interval.
func (c *Converter) newTable() *interpTable {
	step := math.Pow(10, -float64(c.cfg.Precision))
	n := int(math.Round((TempMax-TempMin)/step)) + 1

	temps := make([]float64, n)
	res := make([]float64, n)
	for i := range temps {
		temps[i] = TempMin + float64(i)*step
	}
	temps[0] = TempMin
	temps[n-1] = TempMax
	for i, t := range temps {
		res[i] = c.forward(t)
	}
	return &interpTable{temps: temps, res: res}
}

// lookup inverts one resistance by monotone linear interpolation, saturating
// at the grid boundary for readings at the extremes of the achievable range.
func (tb *interpTable) lookup(r float64) float64 {
	last := len(tb.res) - 1
	if r <= tb.res[0] {
		return tb.temps[0]
	}
	if r >= tb.res[last] {
		return tb.temps[last]
	}
	hi := sort.SearchFloat64s(tb.res, r)
	lo := hi - 1
	frac := (r - tb.res[lo]) / (tb.res[hi] - tb.res[lo])
	return tb.temps[lo] + frac*(tb.temps[hi]-tb.temps[lo])
}
