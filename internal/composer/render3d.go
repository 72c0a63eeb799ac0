package composer

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/aeronav-data/track.report/internal/stats"
)

// viridis ramp used for speed coloring, slow to fast.
var speedColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// RenderTrack3D writes an HTML page with a 3D line chart of the flown path
// (colored by speed) and the planned waypoint polyline, both inside the
// cubic axis bounds so the track keeps its true proportions.
func RenderTrack3D(w io.Writer, rec *stats.Recording, offset float64) error {
	xs, ys, zs := trackCoordinates(rec)
	if len(xs) == 0 {
		return fmt.Errorf("recording %s has no coordinates to plot", rec.ID)
	}

	bounds, err := AxisBounds(xs, ys, zs, offset)
	if err != nil {
		return err
	}

	flown := make([]opts.Chart3DData, 0, len(rec.Samples))
	maxSpeed := 0.0
	for _, s := range rec.Samples {
		if s.Speed > maxSpeed {
			maxSpeed = s.Speed
		}
		flown = append(flown, opts.Chart3DData{
			Value: []interface{}{s.Position.X, s.Position.Y, s.Position.Z, s.Speed},
		})
	}
	if maxSpeed == 0 {
		maxSpeed = 1
	}

	planned := make([]opts.Chart3DData, 0, len(rec.Waypoints))
	for _, wp := range rec.Waypoints {
		// Constant zero in the speed dimension keeps the planned line at
		// the bottom of the color ramp.
		planned = append(planned, opts.Chart3DData{
			Value: []interface{}{wp.X, wp.Y, wp.Z, 0.0},
		})
	}

	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Flight Track",
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Flight Track",
			Subtitle: fmt.Sprintf("recording=%s samples=%d waypoints=%d", rec.ID, len(rec.Samples), len(rec.Waypoints)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Type: "value", Min: bounds.XMin, Max: bounds.XMax}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Type: "value", Min: bounds.YMin, Max: bounds.YMax}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Type: "value", Min: bounds.ZMin, Max: bounds.ZMax}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxSpeed),
			Dimension:  "3",
			InRange:    &opts.VisualMapInRange{Color: speedColors},
		}),
	)

	if len(planned) > 0 {
		line.AddSeries("planned", planned)
	}
	if len(flown) > 0 {
		line.AddSeries("flown", flown)
	}

	return line.Render(w)
}

// trackCoordinates flattens sample positions and waypoints into the
// per-axis sequences the bounds procedure consumes.
func trackCoordinates(rec *stats.Recording) (xs, ys, zs []float64) {
	n := len(rec.Samples) + len(rec.Waypoints)
	xs = make([]float64, 0, n)
	ys = make([]float64, 0, n)
	zs = make([]float64, 0, n)
	for _, s := range rec.Samples {
		xs = append(xs, s.Position.X)
		ys = append(ys, s.Position.Y)
		zs = append(zs, s.Position.Z)
	}
	for _, wp := range rec.Waypoints {
		xs = append(xs, wp.X)
		ys = append(ys, wp.Y)
		zs = append(zs, wp.Z)
	}
	return xs, ys, zs
}
