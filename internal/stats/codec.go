package stats

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/aeronav-data/track.report/internal/vector"
)

// Recording is the serialized snapshot of a TrackStatistics. Rotations are
// carried in their stored radian form; decoding must not re-apply the
// degree-to-radian conversion.
type Recording struct {
	ID            uuid.UUID
	Timestep      float64
	IsCompleted   bool
	DistanceToEnd float64
	Waypoints     []vector.Vector3D
	Samples       []Sample
}

type wireRecording struct {
	RecordingID   string       `json:"recording_id"`
	Timestep      float64      `json:"timestep"`
	IsCompleted   bool         `json:"is_completed"`
	DistanceToEnd float64      `json:"distance_to_end"`
	Waypoints     [][3]float64 `json:"waypoints"`
	Samples       []wireSample `json:"samples"`
}

type wireSample struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
	Speed    float64    `json:"speed"`
}

// Snapshot captures the recorder state as a Recording.
func Snapshot(ts *TrackStatistics) *Recording {
	return &Recording{
		ID:            ts.ID(),
		Timestep:      ts.Timestep(),
		IsCompleted:   ts.Completed(),
		DistanceToEnd: ts.DistanceToEnd(),
		Waypoints:     ts.Waypoints(),
		Samples:       ts.Samples(),
	}
}

// EncodeRecording serializes a Recording to its JSON wire form.
func EncodeRecording(rec *Recording) ([]byte, error) {
	wire := wireRecording{
		RecordingID:   rec.ID.String(),
		Timestep:      rec.Timestep,
		IsCompleted:   rec.IsCompleted,
		DistanceToEnd: rec.DistanceToEnd,
		Waypoints:     make([][3]float64, 0, len(rec.Waypoints)),
		Samples:       make([]wireSample, 0, len(rec.Samples)),
	}
	for _, w := range rec.Waypoints {
		wire.Waypoints = append(wire.Waypoints, w.Components())
	}
	for _, s := range rec.Samples {
		wire.Samples = append(wire.Samples, wireSample{
			Position: s.Position.Components(),
			Rotation: s.Rotation.Components(),
			Speed:    s.Speed,
		})
	}
	return json.MarshalIndent(wire, "", "  ")
}

// DecodeRecording parses and validates a JSON recording. Every field is
// kind-checked through the vector validation routines, so a recording with
// e.g. "is_completed": 1 or a plain number where a position triple belongs
// fails with a type-mismatch error naming the field. A failed decode
// returns no Recording at all; there is no partial result.
func DecodeRecording(data []byte) (*Recording, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}

	rec := &Recording{}

	if idRaw, ok := raw["recording_id"]; ok {
		s, ok := idRaw.(string)
		if !ok {
			return nil, &vector.TypeMismatchError{Attr: "recording_id", Expected: "uuid string", Actual: vector.KindOf(idRaw)}
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse recording_id: %w", err)
		}
		rec.ID = id
	}

	timestep, err := vector.Numeric("timestep", raw["timestep"])
	if err != nil {
		return nil, err
	}
	rec.Timestep = timestep

	if v, ok := raw["is_completed"]; ok {
		completed, err := vector.Boolean("is_completed", v)
		if err != nil {
			return nil, err
		}
		rec.IsCompleted = completed
	}

	if v, ok := raw["distance_to_end"]; ok {
		distance, err := vector.Numeric("distance_to_end", v)
		if err != nil {
			return nil, err
		}
		rec.DistanceToEnd = distance
	}

	if v, ok := raw["waypoints"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, &vector.TypeMismatchError{Attr: "waypoints", Expected: "list", Actual: vector.KindOf(v)}
		}
		rec.Waypoints = make([]vector.Vector3D, 0, len(list))
		for i, item := range list {
			t, err := vector.Triple(fmt.Sprintf("waypoints[%d]", i), item)
			if err != nil {
				return nil, err
			}
			rec.Waypoints = append(rec.Waypoints, vector.New(t[0], t[1], t[2]))
		}
	}

	if v, ok := raw["samples"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, &vector.TypeMismatchError{Attr: "samples", Expected: "list", Actual: vector.KindOf(v)}
		}
		rec.Samples = make([]Sample, 0, len(list))
		for i, item := range list {
			sample, err := decodeSample(fmt.Sprintf("samples[%d]", i), item)
			if err != nil {
				return nil, err
			}
			rec.Samples = append(rec.Samples, sample)
		}
	}

	return rec, nil
}

// decodeSample validates one sample object: position, then rotation, then
// speed, failing on the first violation.
func decodeSample(attr string, item any) (Sample, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Sample{}, &vector.TypeMismatchError{Attr: attr, Expected: "sample object", Actual: vector.KindOf(item)}
	}

	pos, err := vector.Triple(attr+".position", obj["position"])
	if err != nil {
		return Sample{}, err
	}
	rot, err := vector.Triple(attr+".rotation", obj["rotation"])
	if err != nil {
		return Sample{}, err
	}
	speed, err := vector.Numeric(attr+".speed", obj["speed"])
	if err != nil {
		return Sample{}, err
	}

	return Sample{
		Position: vector.New(pos[0], pos[1], pos[2]),
		// Stored form is radians already.
		Rotation: vector.RotatorFromRadians(rot[0], rot[1], rot[2]),
		Speed:    speed,
	}, nil
}

// Rebuild turns a decoded Recording back into a live recorder, preserving
// its session identifier when the recording carries one.
func Rebuild(rec *Recording) *TrackStatistics {
	ts := New(WaypointList(rec.Waypoints), rec.Timestep)
	if rec.ID != uuid.Nil {
		ts.mu.Lock()
		ts.id = rec.ID
		ts.mu.Unlock()
	}
	ts.SetCompleted(rec.IsCompleted)
	ts.SetDistanceToEnd(rec.DistanceToEnd)
	for _, s := range rec.Samples {
		ts.AddSample(s.Position, s.Rotation, s.Speed)
	}
	return ts
}
