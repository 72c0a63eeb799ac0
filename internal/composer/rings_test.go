package composer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aeronav-data/track.report/internal/stats"
	"github.com/aeronav-data/track.report/internal/vector"
)

func TestRingExport(t *testing.T) {
	rec := &stats.Recording{
		Waypoints: []vector.Vector3D{
			vector.New(0, 0, 0),
			vector.New(1, 1, 1),
			vector.New(2, 1, 0),
			vector.New(3, 3, 3),
		},
	}

	layout, err := RingExport(rec)
	if err != nil {
		t.Fatalf("RingExport error: %v", err)
	}

	want := &RingLayout{
		Start: [3]float64{0, 0, 0},
		End:   [3]float64{3, 3, 3},
		Rings: []Ring{
			{Position: [3]float64{1, 1, 1}},
			{Position: [3]float64{2, 1, 0}},
		},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestRingExportTwoWaypoints(t *testing.T) {
	rec := &stats.Recording{
		Waypoints: []vector.Vector3D{vector.New(0, 0, 0), vector.New(1, 1, 1)},
	}
	layout, err := RingExport(rec)
	if err != nil {
		t.Fatalf("RingExport error: %v", err)
	}
	if len(layout.Rings) != 0 {
		t.Errorf("expected no rings, got %d", len(layout.Rings))
	}
}

func TestRingExportTooFewWaypoints(t *testing.T) {
	rec := &stats.Recording{Waypoints: []vector.Vector3D{vector.New(0, 0, 0)}}
	if _, err := RingExport(rec); err == nil {
		t.Error("single waypoint must fail")
	}
}

func TestMarshalRingLayoutShape(t *testing.T) {
	layout := &RingLayout{
		Start: [3]float64{0, 0, 0},
		End:   [3]float64{2, 2, 2},
		Rings: []Ring{{Position: [3]float64{1, 1, 1}}},
	}

	data, err := MarshalRingLayout(layout)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"start":[0,0,0],"end":[2,2,2],"rings":[{"position":[1,1,1],"rotation":[0,0,0]}]}`
	var gotJSON, wantJSON any
	if err := json.Unmarshal(data, &gotJSON); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &wantJSON); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	if diff := cmp.Diff(wantJSON, gotJSON); diff != "" {
		t.Errorf("ring JSON mismatch (-want +got):\n%s", diff)
	}
}
