package composer

import (
	"encoding/json"
	"fmt"

	"github.com/aeronav-data/track.report/internal/stats"
)

// Ring is one interior gate of a ring layout. Rotation defaults to level
// flight through the gate.
type Ring struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
}

// RingLayout is the track-authoring structure derived from a waypoint
// sequence: the first waypoint is the start, the last is the end, and
// everything in between becomes a ring.
type RingLayout struct {
	Start [3]float64 `json:"start"`
	End   [3]float64 `json:"end"`
	Rings []Ring     `json:"rings"`
}

// RingExport builds the ring layout for a recording's waypoints.
func RingExport(rec *stats.Recording) (*RingLayout, error) {
	wps := rec.Waypoints
	if len(wps) < 2 {
		return nil, fmt.Errorf("ring export needs at least 2 waypoints, got %d", len(wps))
	}

	layout := &RingLayout{
		Start: wps[0].Components(),
		End:   wps[len(wps)-1].Components(),
		Rings: make([]Ring, 0, len(wps)-2),
	}
	for _, wp := range wps[1 : len(wps)-1] {
		layout.Rings = append(layout.Rings, Ring{Position: wp.Components()})
	}
	return layout, nil
}

// MarshalRingLayout renders the layout as compact JSON, the form the track
// authoring tools paste into scenario files.
func MarshalRingLayout(layout *RingLayout) ([]byte, error) {
	return json.Marshal(layout)
}
