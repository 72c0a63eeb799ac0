package composer

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aeronav-data/track.report/internal/stats"
	"github.com/aeronav-data/track.report/internal/units"
)

// SpeedProfile writes a PNG of speed over elapsed time to path. Elapsed
// time is sample index times the recording timestep; speeds are converted
// from the stored m/s to the requested unit.
func SpeedProfile(path string, rec *stats.Recording, unit units.Unit) error {
	if len(rec.Samples) == 0 {
		return fmt.Errorf("recording %s has no samples to plot", rec.ID)
	}

	pts := make(plotter.XYs, 0, len(rec.Samples))
	speeds := make([]float64, 0, len(rec.Samples))
	for i, s := range rec.Samples {
		v := units.Convert(s.Speed, unit)
		speeds = append(speeds, v)
		pts = append(pts, plotter.XY{X: float64(i) * rec.Timestep, Y: v})
	}

	mean := stat.Mean(speeds, nil)
	sigma := 0.0
	if len(speeds) > 1 {
		sigma = stat.StdDev(speeds, nil)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Speed Profile (mean %.2f, stddev %.2f)", mean, sigma)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = units.Label(unit)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build speed line: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 158, B: 137, A: 255}
	line.Width = vg.Points(1.5)
	p.Add(plotter.NewGrid(), line)
	p.Legend.Add("speed", line)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save speed profile: %w", err)
	}
	return nil
}
