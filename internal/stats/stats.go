// Package stats records the state of a vehicle flying a track: a
// chronological, append-only log of (position, rotation, speed) samples
// plus derived completion state. The recorder itself never decides when to
// sample; the driving loop calls AddSample once per elapsed timestep.
package stats

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aeronav-data/track.report/internal/vector"
)

// WaypointSource is the track-side collaborator: anything exposing an
// ordered, read-only sequence of waypoints. Consumed once at construction.
type WaypointSource interface {
	Waypoints() []vector.Vector3D
}

// WaypointList is the trivial WaypointSource, used when the waypoints are
// already in hand (tests, decoded recordings).
type WaypointList []vector.Vector3D

// Waypoints returns the list itself.
func (w WaypointList) Waypoints() []vector.Vector3D {
	return w
}

// Sample is one recorded reading. Speed is in metres per second, the
// canonical storage unit; display conversion happens in internal/units.
type Sample struct {
	Position vector.Vector3D
	Rotation vector.Rotator3D
	Speed    float64
}

// TrackStatistics accumulates flight samples against a fixed track. All
// methods are safe for concurrent use; the log only grows, and call order
// defines chronological order.
type TrackStatistics struct {
	mu sync.Mutex

	id            uuid.UUID
	timestep      float64
	waypoints     []vector.Vector3D
	completed     bool
	distanceToEnd float64
	samples       []Sample
}

// New creates a recorder for the given track and nominal sampling interval.
// The timestep is not positivity-checked: zero and negative values are
// accepted, and the caller owns the sampling cadence.
func New(track WaypointSource, timestep float64) *TrackStatistics {
	return &TrackStatistics{
		id:        uuid.New(),
		timestep:  timestep,
		waypoints: track.Waypoints(),
	}
}

// ID returns the recording session identifier assigned at construction.
func (ts *TrackStatistics) ID() uuid.UUID {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.id
}

// Timestep returns the nominal sampling interval in seconds.
func (ts *TrackStatistics) Timestep() float64 {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.timestep
}

// SetTimestep replaces the nominal sampling interval. Like New, it accepts
// zero and negative values.
func (ts *TrackStatistics) SetTimestep(timestep float64) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.timestep = timestep
}

// Waypoints returns the track's waypoint sequence. The slice is shared with
// the track and is read-only by contract.
func (ts *TrackStatistics) Waypoints() []vector.Vector3D {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.waypoints
}

// Completed reports whether the track has been flown to the end.
func (ts *TrackStatistics) Completed() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.completed
}

// SetCompleted records the completion flag.
func (ts *TrackStatistics) SetCompleted(completed bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.completed = completed
}

// DistanceToEnd returns the last reported remaining distance.
func (ts *TrackStatistics) DistanceToEnd() float64 {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.distanceToEnd
}

// SetDistanceToEnd records the remaining distance to the track end.
func (ts *TrackStatistics) SetDistanceToEnd(distance float64) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.distanceToEnd = distance
}

// AddSample appends one (position, rotation, speed) reading to the log.
// No deduplication, reordering or timestamping happens here: the log is
// exactly the call sequence.
func (ts *TrackStatistics) AddSample(position vector.Vector3D, rotation vector.Rotator3D, speed float64) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.samples = append(ts.samples, Sample{
		Position: position,
		Rotation: rotation,
		Speed:    speed,
	})
}

// Samples returns a snapshot copy of the log in insertion order.
func (ts *TrackStatistics) Samples() []Sample {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]Sample, len(ts.samples))
	copy(out, ts.samples)
	return out
}

// Len returns the number of recorded samples.
func (ts *TrackStatistics) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.samples)
}
