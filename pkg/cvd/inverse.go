package cvd

import (
	"fmt"
	"math"
)

// inverseAnalytic recovers temperature in closed form, dispatching on which
// side of R0 the reading falls.
func (c *Converter) inverseAnalytic(r float64) (float64, error) {
	if r >= c.cfg.R0 {
		return c.invPos(r)
	}
	return c.invNeg(r)
}

// invPos inverts the t >= 0 branch: B·t² + A·t + (1 - R/R0) = 0.
// The smaller-magnitude root is the physical one (B < 0 convention).
func (c *Converter) invPos(r float64) (float64, error) {
	a := c.cfg.A / c.cfg.B
	b := (1 - r/c.cfg.R0) / c.cfg.B
	disc := a*a - 4*b
	if disc < 0 {
		return 0, fmt.Errorf("%w: quadratic discriminant %g < 0", ErrNumericInstability, disc)
	}
	return 0.5 * (-a - math.Sqrt(disc)), nil
}

// invNeg inverts the t < 0 branch:
// C·t⁴ - 100C·t³ + B·t² + A·t + (1 - R/R0) = 0, normalized to monic form.
func (c *Converter) invNeg(r float64) (float64, error) {
	return solveQuartic(-100, c.cfg.B/c.cfg.C, c.cfg.A/c.cfg.C, (1-r/c.cfg.R0)/c.cfg.C)
}
