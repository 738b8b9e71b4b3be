// Package gridio loads and saves grids as CSV, one row per depth sample
// and one column per trace. It exists for the command-line front end; the
// modelling packages themselves never touch files.
package gridio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-seismic/seis/grid"
)

// Load reads a CSV file into a grid. Every row must have the same number
// of fields and every field must parse as a float.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("gridio: %s row %d col %d: %w", path, i+1, j+1, err)
			}
			rows[i][j] = v
		}
	}

	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", path, err)
	}
	return g, nil
}

// Save writes a grid as CSV, one row per depth sample.
func Save(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, g.NumTraces())
	for i := 0; i < g.NumSamples(); i++ {
		for j := 0; j < g.NumTraces(); j++ {
			record[j] = strconv.FormatFloat(g.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("gridio: %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("gridio: %s: %w", path, err)
	}
	return nil
}
