// Command trackplot renders a recorded flight track: a 3D HTML page of the
// flown path against the planned waypoints, and a speed-profile PNG.
// It can also print the ring-layout JSON used by track authoring tools.
//
// Usage:
//
//	trackplot -input recording.json [-scene scene.yaml] [-out plots] [-units mph] [-offset 1] [-rings]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aeronav-data/track.report/internal/composer"
	"github.com/aeronav-data/track.report/internal/stats"
	"github.com/aeronav-data/track.report/internal/units"
)

var (
	input     = flag.String("input", "", "Recording JSON file (required)")
	scenePath = flag.String("scene", "", "Optional scene YAML to apply before rendering")
	outDir    = flag.String("out", "plots", "Output directory")
	unitFlag  = flag.String("units", "mps", "Speed unit for the profile plot")
	offset    = flag.Float64("offset", 1.0, "Axis margin added around the track")
	rings     = flag.Bool("rings", false, "Print ring-layout JSON to stdout")
)

func main() {
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	unit := units.Unit(*unitFlag)
	if !units.Valid(unit) {
		log.Fatalf("invalid units %q: must be one of %s", *unitFlag, units.ValidString())
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read recording: %v", err)
	}
	rec, err := stats.DecodeRecording(data)
	if err != nil {
		log.Fatalf("decode recording: %v", err)
	}
	log.Printf("Loaded recording %s: %d samples, %d waypoints", rec.ID, len(rec.Samples), len(rec.Waypoints))

	margin := *offset
	if *scenePath != "" {
		scene, err := composer.LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		if err := composer.ApplyScene(rec, scene); err != nil {
			log.Fatalf("apply scene: %v", err)
		}
		if scene.Offset != 0 {
			margin = scene.Offset
		}
		log.Printf("Applied scene %q (%d transforms)", scene.Title, len(scene.Transforms))
	}

	if *rings {
		layout, err := composer.RingExport(rec)
		if err != nil {
			log.Fatalf("ring export: %v", err)
		}
		out, err := composer.MarshalRingLayout(layout)
		if err != nil {
			log.Fatalf("marshal ring layout: %v", err)
		}
		fmt.Println(string(out))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	htmlPath := filepath.Join(*outDir, "track.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create %s: %v", htmlPath, err)
	}
	if err := composer.RenderTrack3D(f, rec, margin); err != nil {
		f.Close()
		log.Fatalf("render track: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", htmlPath, err)
	}
	log.Printf("Wrote %s", htmlPath)

	pngPath := filepath.Join(*outDir, "speed.png")
	if err := composer.SpeedProfile(pngPath, rec, unit); err != nil {
		log.Fatalf("render speed profile: %v", err)
	}
	log.Printf("Wrote %s", pngPath)
}
