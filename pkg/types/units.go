package types

import (
	"fmt"
	"math"
)

// Volts is a float64 wrapper representing an electric potential in volts.
type Volts float64

// Amps is a float64 wrapper representing an electric current in amperes.
type Amps float64

// Watts is a float64 wrapper representing a power in watts.
type Watts float64

// Humanized returns a human-readable string with automatic unit (V, mV, µV).
func (v Volts) Humanized() string { return humanized(float64(v), "V") }

// Milli returns the potential in millivolts.
func (v Volts) Milli() float64 { return float64(v) * 1e3 }

// Humanized returns a human-readable string with automatic unit (A, mA, µA).
func (a Amps) Humanized() string { return humanized(float64(a), "A") }

// Milli returns the current in milliamperes.
func (a Amps) Milli() float64 { return float64(a) * 1e3 }

// Micro returns the current in microamperes.
func (a Amps) Micro() float64 { return float64(a) * 1e6 }

// Humanized returns a human-readable string with automatic unit (W, mW, µW).
func (w Watts) Humanized() string { return humanized(float64(w), "W") }

// Milli returns the power in milliwatts.
func (w Watts) Milli() float64 { return float64(w) * 1e3 }

// humanized picks the SI prefix by magnitude. The sign rides along; zero is
// reported in the base unit.
func humanized(x float64, unit string) string {
	ax := math.Abs(x)
	switch {
	case x == 0:
		return fmt.Sprintf("0.00 %s", unit)
	case ax >= 1:
		return fmt.Sprintf("%.2f %s", x, unit)
	case ax >= 1e-3:
		return fmt.Sprintf("%.1f m%s", x*1e3, unit)
	default:
		return fmt.Sprintf("%.1f µ%s", x*1e6, unit)
	}
}
