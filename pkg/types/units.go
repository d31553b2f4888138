package types

import "fmt"

// Celsius is a float64 wrapper representing a temperature in degrees Celsius.
type Celsius float64

func (c Celsius) String() string {
	return fmt.Sprintf("%.2f °C", float64(c))
}

// Kelvin returns the temperature in Kelvin.
func (c Celsius) Kelvin() float64 { return float64(c) + 273.15 }

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (c Celsius) Fahrenheit() float64 { return float64(c)*1.8 + 32 }

// Ohm is a float64 wrapper representing an electrical resistance in Ohms.
type Ohm float64

// Humanized returns a human-readable string with automatic unit (mΩ, Ω, kΩ).
func (o Ohm) Humanized() string {
	v := float64(o)
	switch {
	case v >= 1000:
		return fmt.Sprintf("%.3f kΩ", v/1000)
	case v < 1:
		return fmt.Sprintf("%.2f mΩ", v*1000)
	default:
		return fmt.Sprintf("%.2f Ω", v)
	}
}

func (o Ohm) String() string {
	return fmt.Sprintf("%.4f Ω", float64(o))
}

// Milli returns the resistance in milliohms.
func (o Ohm) Milli() float64 { return float64(o) * 1000 }

// Kilo returns the resistance in kiloohms.
func (o Ohm) Kilo() float64 { return float64(o) / 1000 }
