package cvd

import "fmt"

// cvdPos is the Callendar-Van Dusen polynomial for t >= 0 °C.
func cvdPos(t, r0, a, b float64) float64 {
	return r0 * (1 + a*t + b*t*t)
}

// cvdNeg is the Callendar-Van Dusen polynomial for t < 0 °C.
func cvdNeg(t, r0, a, b, c float64) float64 {
	return r0 * (1 + a*t + b*t*t + c*(t-100)*t*t*t)
}

func (c *Converter) forward(t float64) float64 {
	if t < 0 {
		return cvdNeg(t, c.cfg.R0, c.cfg.A, c.cfg.B, c.cfg.C)
	}
	return cvdPos(t, c.cfg.R0, c.cfg.A, c.cfg.B)
}

func (c *Converter) checkTemperature(t float64) error {
	// The negated comparison also rejects NaN.
	if !(t >= TempMin && t <= TempMax) {
		return fmt.Errorf("%w: %g °C outside [%g, %g]", ErrTemperatureRange, t, TempMin, TempMax)
	}
	return nil
}

func (c *Converter) checkResistance(r float64) error {
	if !(r >= c.rMin && r <= c.rMax) {
		return fmt.Errorf("%w: %g Ohm outside achievable [%g, %g]", ErrResistanceRange, r, c.rMin, c.rMax)
	}
	return nil
}

// Resistance converts a single temperature in °C to resistance in Ohm.
func (c *Converter) Resistance(t float64) (float64, error) {
	if err := c.checkTemperature(t); err != nil {
		return 0, err
	}
	return c.forward(t), nil
}

// ResistanceBatch converts a slice of temperatures to resistances,
// preserving length and order. The whole batch is validated up front: if any
// element is out of range the call fails and no results are returned.
func (c *Converter) ResistanceBatch(ts []float64) ([]float64, error) {
	for _, t := range ts {
		if err := c.checkTemperature(t); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = c.forward(t)
	}
	return out, nil
}

// Temperature converts a single resistance in Ohm to temperature in °C using
// the configured inversion strategy.
func (c *Converter) Temperature(r float64) (float64, error) {
	if err := c.checkResistance(r); err != nil {
		return 0, err
	}
	if c.cfg.Strategy == Interpolation {
		return c.newTable().lookup(r), nil
	}
	return c.inverseAnalytic(r)
}

// TemperatureBatch converts a slice of resistances to temperatures,
// preserving length and order, with the same all-or-nothing validation as
// ResistanceBatch. The interpolation strategy builds its table once for the
// whole batch.
func (c *Converter) TemperatureBatch(rs []float64) ([]float64, error) {
	for _, r := range rs {
		if err := c.checkResistance(r); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(rs))
	if c.cfg.Strategy == Interpolation {
		tab := c.newTable()
		for i, r := range rs {
			out[i] = tab.lookup(r)
		}
		return out, nil
	}
	for i, r := range rs {
		t, err := c.inverseAnalytic(r)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// TemperatureToResistance converts with the standard Pt100 coefficients.
func TemperatureToResistance(t float64) (float64, error) {
	return New(nil).Resistance(t)
}

// TemperatureToResistanceBatch converts a slice with the standard Pt100
// coefficients.
func TemperatureToResistanceBatch(ts []float64) ([]float64, error) {
	return New(nil).ResistanceBatch(ts)
}

// ResistanceToTemperature converts with the standard Pt100 coefficients and
// the analytic inverse.
func ResistanceToTemperature(r float64) (float64, error) {
	return New(nil).Temperature(r)
}

// ResistanceToTemperatureBatch converts a slice with the standard Pt100
// coefficients and the analytic inverse.
func ResistanceToTemperatureBatch(rs []float64) ([]float64, error) {
	return New(nil).TemperatureBatch(rs)
}
