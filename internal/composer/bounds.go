// Package composer renders recorded flight tracks: a 3D HTML page of the
// flown path against the planned waypoints, a speed-profile PNG, and the
// ring-layout JSON consumed by track authoring tools. It also applies
// scene files (YAML) that transform a recording before rendering.
package composer

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Bounds is a cubic display box: every axis gets the same half-width so the
// plotted shape is not visually distorted by uneven axis scaling.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// AxisBounds computes display bounds for the given coordinate sequences.
// Each axis is centered at (max+min)/2; the shared half-width is the
// largest of the three axes' half-ranges plus the offset margin.
func AxisBounds(xs, ys, zs []float64, offset float64) (Bounds, error) {
	if len(xs) == 0 {
		return Bounds{}, errors.New("no coordinates to bound")
	}
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return Bounds{}, fmt.Errorf("coordinate sequences differ in length: x=%d y=%d z=%d", len(xs), len(ys), len(zs))
	}

	xMin, xMax := floats.Min(xs), floats.Max(xs)
	yMin, yMax := floats.Min(ys), floats.Max(ys)
	zMin, zMax := floats.Min(zs), floats.Max(zs)

	half := (xMax - xMin) / 2
	if h := (yMax - yMin) / 2; h > half {
		half = h
	}
	if h := (zMax - zMin) / 2; h > half {
		half = h
	}
	half += offset

	cx := (xMax + xMin) / 2
	cy := (yMax + yMin) / 2
	cz := (zMax + zMin) / 2

	return Bounds{
		XMin: cx - half, XMax: cx + half,
		YMin: cy - half, YMax: cy + half,
		ZMin: cz - half, ZMax: cz + half,
	}, nil
}
