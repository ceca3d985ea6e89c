// Package report aggregates the scalar query results into a single
// markdown-friendly summary of a dataset.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/orbitwatch/neoscan-cli/internal/dataset"
)

// maxOrbitLines caps the orbit listing in the rendered report.
const maxOrbitLines = 10

// Report is the computed summary of one dataset.
type Report struct {
	File  string
	RunID string

	Summary dataset.Summary

	BrightestName      int
	BrightestMagnitude float64
	ClosestName        int

	Orbits               dataset.OrbitCounts
	AboveAverageDiameter int
}

// Build runs the descriptive queries over ds and collects their results.
func Build(ds *dataset.Dataset, file string) (*Report, error) {
	r := &Report{File: file, RunID: uuid.NewString()}

	var err error
	if r.Summary, err = ds.Describe(); err != nil {
		return nil, err
	}
	if r.BrightestName, r.BrightestMagnitude, err = ds.MaxAbsoluteMagnitude(); err != nil {
		return nil, err
	}
	if r.ClosestName, err = ds.ClosestApproach(); err != nil {
		return nil, err
	}
	if r.Orbits, err = ds.OrbitCounts(); err != nil {
		return nil, err
	}
	if r.AboveAverageDiameter, err = ds.AboveAverageMaxDiameter(); err != nil {
		return nil, err
	}
	return r, nil
}

// Markdown renders a compact report suitable for the terminal or a doc file.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET REPORT]\n")
	if r.File != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.File))
	}
	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Summary.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", r.Summary.Columns))

	b.WriteString("[SCHEMA]\n")
	for _, name := range r.Summary.ColumnNames {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	b.WriteString("\n[EXTREMES]\n")
	b.WriteString(fmt.Sprintf("- max absolute magnitude: %v (name %d)\n", r.BrightestMagnitude, r.BrightestName))
	b.WriteString(fmt.Sprintf("- closest approach: name %d\n", r.ClosestName))

	b.WriteString("\n[ORBITS]\n")
	lim := len(r.Orbits)
	if lim > maxOrbitLines {
		lim = maxOrbitLines
	}
	for i := 0; i < lim; i++ {
		b.WriteString(fmt.Sprintf("- orbit %s: %d\n", r.Orbits[i].OrbitID, r.Orbits[i].Count))
	}
	if rest := len(r.Orbits) - lim; rest > 0 {
		b.WriteString(fmt.Sprintf("- ... and %d more\n", rest))
	}

	b.WriteString("\n[DIAMETER]\n")
	b.WriteString(fmt.Sprintf("- asteroids above the average max diameter: %d\n", r.AboveAverageDiameter))
	return b.String()
}
