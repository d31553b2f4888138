package cvd

// Strategy selects how resistance is inverted back to temperature.
type Strategy int

const (
	// Analytic inverts the polynomial in closed form: quadratic formula
	// above 0 °C, Ferrari's quartic solution below.
	Analytic Strategy = iota

	// Interpolation builds a dense forward table over the full temperature
	// domain and inverts by monotone linear interpolation. Slower per call,
	// but immune to the analytic solver's numeric failure modes.
	Interpolation
)

// Temperature domain of the Callendar-Van Dusen equations per IEC 60751.
// Both endpoints are valid inputs.
const (
	TempMin = -200.0 // °C
	TempMax = 850.0  // °C
)

// Config holds sensor coefficients and inversion knobs.
// Units:
//   - R0: Ohms (resistance at 0 °C, e.g. 100 for Pt100, 1000 for Pt1000)
//   - A, B, C: IEC 60751 polynomial coefficients
//   - Precision: decimal digits of the interpolation grid step (step = 10^-Precision)
type Config struct {
	R0 float64
	A  float64
	B  float64
	C  float64

	Strategy  Strategy
	Precision int
}

// _defaultConfig returns a Config pre-filled with the IEC 60751 standard
// platinum coefficients.
func _defaultConfig() *Config {
	return &Config{
		R0:        100.0,      // Ohm at 0 °C (Pt100)
		A:         3.9083e-3,  // 1/°C
		B:         -5.775e-7,  // 1/°C²
		C:         -4.183e-12, // 1/°C⁴
		Strategy:  Analytic,
		Precision: 3, // 1 mK grid step
	}
}

// Converter performs resistance/temperature conversion for one fixed set of
// coefficients. It holds no mutable state and is safe for concurrent use.
type Converter struct {
	cfg *Config

	// achievable resistance range, image of [TempMin, TempMax]
	rMin, rMax float64
}

// New creates a converter with the given config.
// Nonzero fields in cfg override defaults; a nil cfg yields the standard
// Pt100 converter.
// Notes:
//   - R0 and Precision must be > 0 to override.
//   - A, B, C override when nonzero (zero would make the polynomial constant
//     or non-invertible, so it is treated as "unset").
//   - Strategy is taken verbatim; the zero value is Analytic.
func New(cfg *Config) *Converter {
	base := _defaultConfig()

	merged := *base
	if cfg != nil {
		if cfg.R0 > 0 {
			merged.R0 = cfg.R0
		}
		if cfg.A != 0 {
			merged.A = cfg.A
		}
		if cfg.B != 0 {
			merged.B = cfg.B
		}
		if cfg.C != 0 {
			merged.C = cfg.C
		}
		merged.Strategy = cfg.Strategy
		if cfg.Precision > 0 {
			merged.Precision = cfg.Precision
		}
	}

	c := &Converter{cfg: &merged}
	c.rMin = c.forward(TempMin)
	c.rMax = c.forward(TempMax)
	return c
}

// Coefficients returns the effective coefficients after default merging.
func (c *Converter) Coefficients() (r0, a, b, cc float64) {
	return c.cfg.R0, c.cfg.A, c.cfg.B, c.cfg.C
}

// ResistanceRange returns the achievable resistance interval, the image of
// [TempMin, TempMax] under the forward polynomial.
func (c *Converter) ResistanceRange() (lo, hi float64) {
	return c.rMin, c.rMax
}
