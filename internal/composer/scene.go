package composer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aeronav-data/track.report/internal/stats"
	"github.com/aeronav-data/track.report/internal/vector"
)

// Scene is a rendering scene file: a title, an axis margin, and an ordered
// list of geometric transforms applied to every position and waypoint of a
// recording before it is rendered. Transform arguments are dynamically
// typed YAML values and are kind-checked when applied, so a scene that says
// `scale: "2"` fails with a type-mismatch naming the field rather than
// rendering garbage.
type Scene struct {
	Title      string      `yaml:"title"`
	Offset     float64     `yaml:"offset"`
	Transforms []Transform `yaml:"transforms"`
}

// Transform is one scene operation. Supported ops: "translate" (value is a
// 3-number sequence), "scale" (numeric factor), "round" (numeric digit
// count).
type Transform struct {
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &scene, nil
}

// Apply transforms a single vector, validating the transform argument.
// The attr argument names the scene field in errors, e.g. "transforms[0]".
func (t Transform) Apply(attr string, v vector.Vector3D) (vector.Vector3D, error) {
	switch t.Op {
	case "translate":
		d, err := vector.Triple(attr+".value", t.Value)
		if err != nil {
			return vector.Vector3D{}, err
		}
		return v.Add(vector.New(d[0], d[1], d[2])), nil
	case "scale":
		f, err := vector.Numeric(attr+".value", t.Value)
		if err != nil {
			return vector.Vector3D{}, err
		}
		return v.Scale(f), nil
	case "round":
		n, err := vector.Numeric(attr+".value", t.Value)
		if err != nil {
			return vector.Vector3D{}, err
		}
		return v.Round(int(n)), nil
	default:
		return vector.Vector3D{}, fmt.Errorf("%s: %w", attr, &vector.UnsupportedOperationError{Op: t.Op})
	}
}

// ApplyScene runs every transform, in order, over the recording's sample
// positions and waypoints. Rotations and speeds are left untouched. A
// failing transform aborts the whole application; the recording is only
// modified once every transform has validated and run.
func ApplyScene(rec *stats.Recording, scene *Scene) error {
	positions := make([]vector.Vector3D, len(rec.Samples))
	for i, s := range rec.Samples {
		positions[i] = s.Position
	}
	waypoints := make([]vector.Vector3D, len(rec.Waypoints))
	copy(waypoints, rec.Waypoints)

	for ti, t := range scene.Transforms {
		attr := fmt.Sprintf("transforms[%d]", ti)
		for i, p := range positions {
			next, err := t.Apply(attr, p)
			if err != nil {
				return err
			}
			positions[i] = next
		}
		for i, wp := range waypoints {
			next, err := t.Apply(attr, wp)
			if err != nil {
				return err
			}
			waypoints[i] = next
		}
	}

	for i := range rec.Samples {
		rec.Samples[i].Position = positions[i]
	}
	rec.Waypoints = waypoints
	return nil
}
