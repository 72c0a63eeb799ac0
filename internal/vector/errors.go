package vector

import "fmt"

// TypeMismatchError reports a dynamically typed value of the wrong kind at
// a deserialization boundary. It always names the offending attribute, the
// expected semantic kind, and the kind actually received. Validation
// failures are fatal to the call that triggered them; nothing downgrades
// them to a default value.
type TypeMismatchError struct {
	Attr     string // attribute or parameter path, e.g. "samples[2].speed"
	Expected string // semantic kind, e.g. "int or float"
	Actual   string // received kind, e.g. "string"
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s for %s but got %s instead", e.Expected, e.Attr, e.Actual)
}

// UnsupportedOperationError is returned by the relational comparison
// operators on Vector3D, unconditionally. It marks a declared capability
// absence, not a validation failure.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s operation not supported for Vector3D", e.Op)
}
