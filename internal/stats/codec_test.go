package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aeronav-data/track.report/internal/vector"
)

func recordedStatistics(t *testing.T) *TrackStatistics {
	t.Helper()
	ts := New(testTrack(), 0.1)
	ts.AddSample(vector.New(0, 0, 0), vector.NewRotator(0, 0, 0), 5)
	ts.AddSample(vector.New(1, 1, 1), vector.NewRotator(0, 90, 0), 7)
	ts.SetCompleted(true)
	ts.SetDistanceToEnd(2.5)
	return ts
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := recordedStatistics(t)
	rec := Snapshot(ts)

	data, err := EncodeRecording(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeRecording(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff(rec, decoded); diff != "" {
		t.Errorf("recording mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePreservesRadians(t *testing.T) {
	// Rotations serialize in their stored radian form; decoding must not
	// re-apply the degree-to-radian conversion.
	ts := New(testTrack(), 0.1)
	ts.AddSample(vector.New(0, 0, 0), vector.NewRotator(0, 90, 0), 1)

	data, err := EncodeRecording(Snapshot(ts))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeRecording(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := decoded.Samples[0].Rotation.Y
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("rotation.y = %v, want π/2", got)
	}
}

func TestDecodeRejectsNumericCompletedFlag(t *testing.T) {
	data := []byte(`{"timestep": 0.1, "is_completed": 1}`)

	_, err := DecodeRecording(data)
	var mismatch *vector.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *TypeMismatchError", err)
	}
	if mismatch.Attr != "is_completed" {
		t.Errorf("error names %q, want is_completed", mismatch.Attr)
	}
}

func TestDecodeRejectsMissingTimestep(t *testing.T) {
	_, err := DecodeRecording([]byte(`{"waypoints": []}`))
	var mismatch *vector.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *TypeMismatchError", err)
	}
	if mismatch.Attr != "timestep" {
		t.Errorf("error names %q, want timestep", mismatch.Attr)
	}
}

func TestDecodeRejectsMalformedSamples(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantAttr string
	}{
		{
			"plain number for sample",
			`{"timestep": 0.1, "samples": [5]}`,
			"samples[0]",
		},
		{
			"plain number for position",
			`{"timestep": 0.1, "samples": [{"position": 5, "rotation": [0,0,0], "speed": 1}]}`,
			"samples[0].position",
		},
		{
			"string speed",
			`{"timestep": 0.1, "samples": [{"position": [0,0,0], "rotation": [0,0,0], "speed": "7"}]}`,
			"samples[0].speed",
		},
		{
			"bad rotation component",
			`{"timestep": 0.1, "samples": [{"position": [0,0,0], "rotation": [0,true,0], "speed": 1}]}`,
			"samples[0].rotation.y",
		},
		{
			"bad waypoint",
			`{"timestep": 0.1, "waypoints": [[0,0,0], "near"]}`,
			"waypoints[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeRecording([]byte(tt.body))
			var mismatch *vector.TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("got %v, want *TypeMismatchError", err)
			}
			if mismatch.Attr != tt.wantAttr {
				t.Errorf("error names %q, want %q", mismatch.Attr, tt.wantAttr)
			}
			if rec != nil {
				t.Error("failed decode returned a partial recording")
			}
		})
	}
}

func TestDecodeFailureLeavesNoSamples(t *testing.T) {
	// A rejected append never lands partially: the decode fails as a whole
	// and a rebuild from a clean decode has only the valid state.
	bad := []byte(`{"timestep": 0.1, "samples": [{"position": [0,0,0], "rotation": [0,0,0], "speed": true}]}`)
	if rec, err := DecodeRecording(bad); err == nil || rec != nil {
		t.Fatal("decode with invalid speed must fail entirely")
	}
}

func TestRebuild(t *testing.T) {
	ts := recordedStatistics(t)

	data, err := EncodeRecording(Snapshot(ts))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rec, err := DecodeRecording(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rebuilt := Rebuild(rec)
	if rebuilt.ID() != ts.ID() {
		t.Errorf("rebuilt ID = %v, want %v", rebuilt.ID(), ts.ID())
	}
	if !rebuilt.Completed() {
		t.Error("completion flag lost")
	}
	if rebuilt.DistanceToEnd() != 2.5 {
		t.Errorf("DistanceToEnd() = %v, want 2.5", rebuilt.DistanceToEnd())
	}
	if diff := cmp.Diff(ts.Samples(), rebuilt.Samples()); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ts.Waypoints(), rebuilt.Waypoints()); diff != "" {
		t.Errorf("waypoints mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsBadDistance(t *testing.T) {
	_, err := DecodeRecording([]byte(`{"timestep": 0.1, "distance_to_end": "far"}`))
	var mismatch *vector.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *TypeMismatchError", err)
	}
	if mismatch.Attr != "distance_to_end" {
		t.Errorf("error names %q, want distance_to_end", mismatch.Attr)
	}
}
