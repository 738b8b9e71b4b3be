// Command seisforward runs the convolutional forward model over four CSV
// grids and writes the synthetic sections next to them.
//
// Usage:
//
//	seisforward -x X.csv -y Y.csv -vp VP.csv -rhob RHOB.csv [flags]
//
// Each input CSV holds one grid, one row per depth sample and one column
// per trace. The tool writes ai.csv, rc_time.csv, seis_time.csv and
// seis_depth.csv into the output directory and prints the global maximum
// travel time and the shared time-axis length.
//
// Examples:
//
//	seisforward -x X.csv -y Y.csv -vp VP.csv -rhob RHOB.csv
//	seisforward -dt 0.05 -freq 2000 -x X.csv -y Y.csv -vp VP.csv -rhob RHOB.csv
//	seisforward -dz 10 -out results -x X.csv -y Y.csv -vp VP.csv -rhob RHOB.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-seismic/internal/gridio"
	"github.com/cwbudde/algo-seismic/seis/forward"
	"github.com/cwbudde/algo-seismic/seis/grid"
)

func main() {
	var (
		xPath    = flag.String("x", "", "X coordinate grid CSV (required)")
		yPath    = flag.String("y", "", "Y coordinate grid CSV (required)")
		vpPath   = flag.String("vp", "", "velocity grid CSV (required)")
		rhobPath = flag.String("rhob", "", "density grid CSV (required)")
		outDir   = flag.String("out", ".", "output directory")

		dt        = flag.Float64("dt", 0.02, "time axis spacing in ms")
		freq      = flag.Float64("freq", 4000, "Ricker peak frequency in Hz")
		vpScale   = flag.Float64("vpscale", 1e-3, "velocity unit conversion factor")
		rhobScale = flag.Float64("rhobscale", 1e3, "density unit conversion factor")
		dz        = flag.Float64("dz", 0, "fixed depth step in m (0 derives spacing from the Y grid)")
		workers   = flag.Int("workers", 0, "parallel workers (0 uses all CPUs)")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("seisforward: ")

	if *xPath == "" || *yPath == "" || *vpPath == "" || *rhobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	in, err := loadInput(*xPath, *yPath, *vpPath, *rhobPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := []forward.Option{
		forward.WithDt(*dt),
		forward.WithFrequency(*freq),
		forward.WithVPScale(*vpScale),
		forward.WithRHOBScale(*rhobScale),
	}
	if *dz > 0 {
		opts = append(opts, forward.WithDepthStep(*dz))
	}
	if *workers > 0 {
		opts = append(opts, forward.WithWorkers(*workers))
	}

	res, err := forward.Model(in, opts...)
	if err != nil {
		log.Fatal(err)
	}

	outputs := map[string]*grid.Grid{
		"ai.csv":         res.AI,
		"rc_time.csv":    res.RCTime,
		"seis_time.csv":  res.SeisTime,
		"seis_depth.csv": res.SeisDepth,
	}
	for name, g := range outputs {
		if err := gridio.Save(filepath.Join(*outDir, name), g); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("traces: %d, depth samples: %d\n", in.VP.NumTraces(), in.VP.NumSamples())
	fmt.Printf("T_max: %.2f ms, axis: %d samples at %.3g ms\n", res.TMax, res.Axis.Len(), res.Axis.Dt())
	fmt.Printf("wavelet: %d samples\n", len(res.Wavelet))
}

func loadInput(xPath, yPath, vpPath, rhobPath string) (forward.Input, error) {
	var in forward.Input
	var err error
	if in.X, err = gridio.Load(xPath); err != nil {
		return in, err
	}
	if in.Y, err = gridio.Load(yPath); err != nil {
		return in, err
	}
	if in.VP, err = gridio.Load(vpPath); err != nil {
		return in, err
	}
	if in.RHOB, err = gridio.Load(rhobPath); err != nil {
		return in, err
	}
	return in, nil
}
