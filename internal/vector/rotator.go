package vector

import (
	"fmt"
	"math"
)

// Rotator3D is a 3D attitude. It is authored in degrees but stored in
// radians: NewRotator converts once, at construction, and no degree
// accessor exists afterwards. Reading X/Y/Z (or any promoted operation)
// works on radians, so callers that constructed with degrees must not
// expect degrees back.
type Rotator3D struct {
	Vector3D
}

// NewRotator returns the rotator for the given per-axis angles in degrees.
func NewRotator(xDeg, yDeg, zDeg float64) Rotator3D {
	return Rotator3D{Vector3D{
		X: degToRad(xDeg),
		Y: degToRad(yDeg),
		Z: degToRad(zDeg),
	}}
}

// RotatorFromRadians builds a rotator from already-converted radian values.
// It exists for decoding serialized rotations, which are stored in radians;
// using it with degree values skips the construction-time conversion and
// produces a wrong attitude.
func RotatorFromRadians(x, y, z float64) Rotator3D {
	return Rotator3D{Vector3D{X: x, Y: y, Z: z}}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// GoString returns a reconstructable form in the stored radian values.
func (r Rotator3D) GoString() string {
	return fmt.Sprintf("vector.RotatorFromRadians(%v, %v, %v)", r.X, r.Y, r.Z)
}
