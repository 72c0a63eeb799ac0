package vector

import (
	"encoding/json"
	"fmt"
)

// Dynamic kind validation for deserialized input. Decoded JSON and YAML
// carry values as any; these routines are the single place where each
// semantic kind (numeric, boolean, 3-component sequence) is checked and
// coerced. Static callers never need them.

// Numeric validates that value is an integer or floating-point number and
// coerces it to float64. Booleans are never numbers here, even though Go
// would not confuse them: JSON sources can hand either, and the contract is
// strict.
func Numeric(attr string, value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &TypeMismatchError{Attr: attr, Expected: "int or float", Actual: "malformed number"}
		}
		return f, nil
	default:
		return 0, &TypeMismatchError{Attr: attr, Expected: "int or float", Actual: KindOf(value)}
	}
}

// Boolean validates that value is a strict boolean. Numeric 0/1 is
// rejected, never coerced.
func Boolean(attr string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, &TypeMismatchError{Attr: attr, Expected: "bool", Actual: KindOf(value)}
	}
	return b, nil
}

// Triple validates a dynamically typed 3-component numeric sequence and
// returns its coerced values in order. It fails on the first offending
// component, naming it as <attr>.x, <attr>.y or <attr>.z.
func Triple(attr string, value any) ([3]float64, error) {
	seq, ok := value.([]any)
	if !ok {
		return [3]float64{}, &TypeMismatchError{Attr: attr, Expected: "sequence of 3 numbers", Actual: KindOf(value)}
	}
	if len(seq) != 3 {
		return [3]float64{}, &TypeMismatchError{
			Attr:     attr,
			Expected: "sequence of 3 numbers",
			Actual:   fmt.Sprintf("sequence of %d", len(seq)),
		}
	}
	var out [3]float64
	for i, axis := range [3]string{"x", "y", "z"} {
		f, err := Numeric(attr+"."+axis, seq[i])
		if err != nil {
			return [3]float64{}, err
		}
		out[i] = f
	}
	return out, nil
}

// FromValues builds a Vector3D from dynamically typed component values.
func FromValues(attr string, x, y, z any) (Vector3D, error) {
	fx, err := Numeric(attr+".x", x)
	if err != nil {
		return Vector3D{}, err
	}
	fy, err := Numeric(attr+".y", y)
	if err != nil {
		return Vector3D{}, err
	}
	fz, err := Numeric(attr+".z", z)
	if err != nil {
		return Vector3D{}, err
	}
	return New(fx, fy, fz), nil
}

// RotatorFromValues builds a Rotator3D from dynamically typed degree
// values, applying the construction-time degree-to-radian conversion.
func RotatorFromValues(attr string, xDeg, yDeg, zDeg any) (Rotator3D, error) {
	v, err := FromValues(attr, xDeg, yDeg, zDeg)
	if err != nil {
		return Rotator3D{}, err
	}
	return NewRotator(v.X, v.Y, v.Z), nil
}

// KindOf names the dynamic kind of a decoded value for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
