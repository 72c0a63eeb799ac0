// Package units converts recorded vehicle speeds between display units.
// Recordings store speed in metres per second; conversion is applied only
// at the reporting edge.
package units

import "fmt"

// Unit identifies a speed display unit.
type Unit string

// Supported units. MPS is the canonical storage unit.
const (
	MPS  Unit = "mps"
	MPH  Unit = "mph"
	KMPH Unit = "kmph"
	KPH  Unit = "kph"
)

var factors = map[Unit]float64{
	MPS:  1,
	MPH:  2.2369362920544,
	KMPH: 3.6,
	KPH:  3.6,
}

// Valid reports whether u is a supported unit. Matching is case-sensitive.
func Valid(u Unit) bool {
	_, ok := factors[u]
	return ok
}

// ValidString returns the supported units for flag error messages.
func ValidString() string {
	return "mps, mph, kmph, kph"
}

// Convert converts a speed in metres per second to the target unit.
// Unknown units pass the value through unchanged.
func Convert(speedMPS float64, to Unit) float64 {
	f, ok := factors[to]
	if !ok {
		return speedMPS
	}
	return speedMPS * f
}

// Label returns an axis label for the unit, e.g. "Speed (mph)".
func Label(u Unit) string {
	return fmt.Sprintf("Speed (%s)", u)
}
