package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orbitwatch/neoscan-cli/internal/chart"
	"github.com/orbitwatch/neoscan-cli/internal/stats"
)

func assertArtifact(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact %s is empty", path)
	}
}

func TestHistogram(t *testing.T) {
	vals := []float64{0.1, 0.2, 0.2, 0.3, 0.5, 0.9, 1.2, 1.2, 1.3, 2.0}
	p := filepath.Join(t.TempDir(), "hist.png")
	err := chart.Histogram(vals, 10, chart.Options{
		Title:  "Distribution of Average diameter size",
		XLabel: "Average Value",
		YLabel: "Count",
	}, p)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	assertArtifact(t, p)
}

func TestHistogramErrors(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hist.png")
	if err := chart.Histogram(nil, 10, chart.Options{}, p); err == nil {
		t.Fatalf("expected error for empty values")
	}
	if err := chart.Histogram([]float64{1, 2}, 0, chart.Options{}, p); err == nil {
		t.Fatalf("expected error for zero bins")
	}
}

func TestPie(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pie.png")
	if err := chart.Pie(3, 7, "Hazardous split", p); err != nil {
		t.Fatalf("Pie: %v", err)
	}
	assertArtifact(t, p)
}

func TestPieNoRows(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pie.png")
	if err := chart.Pie(0, 0, "Hazardous split", p); err == nil {
		t.Fatalf("expected error when both counts are zero")
	}
}

func TestRegressionScatter(t *testing.T) {
	x := make([]float64, 30)
	y := make([]float64, 30)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*x[i] + 1
	}
	fit, err := stats.LinRegress(x, y)
	if err != nil {
		t.Fatalf("LinRegress: %v", err)
	}
	p := filepath.Join(t.TempDir(), "scatter.png")
	err = chart.RegressionScatter(x, y, fit, chart.Options{
		Title:  "fit",
		XLabel: "x",
		YLabel: "y",
	}, p)
	if err != nil {
		t.Fatalf("RegressionScatter: %v", err)
	}
	assertArtifact(t, p)
}
