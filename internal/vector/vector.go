// Package vector provides the 3D value types used to describe drone flight
// tracks: Vector3D for positions and displacements, and Rotator3D for
// attitudes. All operations return new values; nothing mutates the receiver.
package vector

import (
	"fmt"
	"math"
)

// Vector3D is a point or displacement in cartesian 3D space. The zero value
// is the origin. Components are plain float64 so the type system carries the
// "components are always floating-point reals" invariant; dynamically typed
// input (decoded JSON/YAML) must go through FromValues instead.
type Vector3D struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum v + o.
func (v Vector3D) Add(o Vector3D) Vector3D {
	return Vector3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vector3D) Sub(o Vector3D) Vector3D {
	return Vector3D{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v with every component multiplied by f. Scalar
// multiplication commutes, so one method covers both operand orders.
func (v Vector3D) Scale(f float64) Vector3D {
	return Vector3D{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Div returns v with every component divided by f. Division follows
// IEEE-754: a zero divisor yields ±Inf or NaN, not an error.
func (v Vector3D) Div(f float64) Vector3D {
	return Vector3D{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

// FloorDiv returns the component-wise floored quotient of v by f.
func (v Vector3D) FloorDiv(f float64) Vector3D {
	return Vector3D{
		X: math.Floor(v.X / f),
		Y: math.Floor(v.Y / f),
		Z: math.Floor(v.Z / f),
	}
}

// Mod returns the component-wise floored remainder of v by f. The result
// takes the sign of the divisor, pairing with FloorDiv so that
// v.FloorDiv(f).Scale(f).Add(v.Mod(f)) == v. Note this is not math.Mod,
// whose result takes the sign of the dividend.
func (v Vector3D) Mod(f float64) Vector3D {
	return Vector3D{
		X: floorMod(v.X, f),
		Y: floorMod(v.Y, f),
		Z: floorMod(v.Z, f),
	}
}

func floorMod(x, m float64) float64 {
	return x - math.Floor(x/m)*m
}

// Pow returns v with every component raised to the power f.
func (v Vector3D) Pow(f float64) Vector3D {
	return Vector3D{
		X: math.Pow(v.X, f),
		Y: math.Pow(v.Y, f),
		Z: math.Pow(v.Z, f),
	}
}

// Neg returns the component-wise negation of v.
func (v Vector3D) Neg() Vector3D {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs returns the component-wise absolute value of v.
func (v Vector3D) Abs() Vector3D {
	return Vector3D{
		X: math.Abs(v.X),
		Y: math.Abs(v.Y),
		Z: math.Abs(v.Z),
	}
}

// Round returns v with every component rounded to the given number of
// decimal digits, halves away from zero. Zero digits rounds to integers.
func (v Vector3D) Round(digits int) Vector3D {
	return Vector3D{
		X: roundTo(v.X, digits),
		Y: roundTo(v.Y, digits),
		Z: roundTo(v.Z, digits),
	}
}

func roundTo(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}

// Floor returns the component-wise floor of v.
func (v Vector3D) Floor() Vector3D {
	return Vector3D{
		X: math.Floor(v.X),
		Y: math.Floor(v.Y),
		Z: math.Floor(v.Z),
	}
}

// Ceil returns the component-wise ceiling of v.
func (v Vector3D) Ceil() Vector3D {
	return Vector3D{
		X: math.Ceil(v.X),
		Y: math.Ceil(v.Y),
		Z: math.Ceil(v.Z),
	}
}

// Trunc returns v with every component truncated toward zero.
func (v Vector3D) Trunc() Vector3D {
	return Vector3D{
		X: math.Trunc(v.X),
		Y: math.Trunc(v.Y),
		Z: math.Trunc(v.Z),
	}
}

// Equal reports exact component-wise equality. No tolerance is applied.
func (v Vector3D) Equal(o Vector3D) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Less always fails: "less than" has no canonical meaning for a 3D
// quantity, and returning a lexicographic or magnitude ordering here would
// silently give callers an arbitrary answer. The method exists so the
// absence is declared rather than discovered.
func (v Vector3D) Less(o Vector3D) (bool, error) {
	return false, &UnsupportedOperationError{Op: "<"}
}

// LessOrEqual always fails. See Less.
func (v Vector3D) LessOrEqual(o Vector3D) (bool, error) {
	return false, &UnsupportedOperationError{Op: "<="}
}

// Greater always fails. See Less.
func (v Vector3D) Greater(o Vector3D) (bool, error) {
	return false, &UnsupportedOperationError{Op: ">"}
}

// GreaterOrEqual always fails. See Less.
func (v Vector3D) GreaterOrEqual(o Vector3D) (bool, error) {
	return false, &UnsupportedOperationError{Op: ">="}
}

// IsZero reports whether every component is exactly zero.
func (v Vector3D) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Len returns the number of components, which is always 3.
func (v Vector3D) Len() int {
	return 3
}

// Components returns the components in fixed (X, Y, Z) order.
func (v Vector3D) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// MarkerSegments returns the degenerate per-axis segment pairs
// [[x,x],[y,y],[z,z]] used to draw the vector as a zero-length line marker
// on a 3D axes.
func (v Vector3D) MarkerSegments() [3][2]float64 {
	return [3][2]float64{{v.X, v.X}, {v.Y, v.Y}, {v.Z, v.Z}}
}

// String returns the human-readable form "(x, y, z)".
func (v Vector3D) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// GoString returns a reconstructable form, used by %#v.
func (v Vector3D) GoString() string {
	return fmt.Sprintf("vector.New(%v, %v, %v)", v.X, v.Y, v.Z)
}
