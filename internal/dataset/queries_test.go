package dataset_test

import (
	"errors"
	"testing"

	"github.com/orbitwatch/neoscan-cli/internal/dataset"
)

func mustDataset(t *testing.T, records [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return ds
}

func TestMaxAbsoluteMagnitudeTieBreak(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Absolute Magnitude"},
		{"111", "10.5"},
		{"222", "22.1"},
		{"333", "22.1"},
	})
	name, mag, err := ds.MaxAbsoluteMagnitude()
	if err != nil {
		t.Fatalf("MaxAbsoluteMagnitude: %v", err)
	}
	if name != 222 || mag != 22.1 {
		t.Fatalf("got (%d, %v), want (222, 22.1)", name, mag)
	}
}

func TestClosestApproach(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Miss Dist.(kilometers)"},
		{"1", "50000"},
		{"2", "12000"},
		{"3", "80000"},
	})
	name, err := ds.ClosestApproach()
	if err != nil {
		t.Fatalf("ClosestApproach: %v", err)
	}
	if name != 2 {
		t.Fatalf("got %d, want 2", name)
	}
}

func TestClosestApproachTieBreak(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Miss Dist.(kilometers)"},
		{"7", "12000"},
		{"8", "12000"},
	})
	name, err := ds.ClosestApproach()
	if err != nil {
		t.Fatalf("ClosestApproach: %v", err)
	}
	if name != 7 {
		t.Fatalf("tie should keep the first row, got %d", name)
	}
}

func TestOrbitCounts(t *testing.T) {
	ds := loadFixture(t)
	counts, err := ds.OrbitCounts()
	if err != nil {
		t.Fatalf("OrbitCounts: %v", err)
	}
	if got := counts.Total(); got != ds.Rows() {
		t.Fatalf("counts sum to %d, want %d", got, ds.Rows())
	}
	m := counts.Map()
	if len(m) != 4 {
		t.Fatalf("distinct orbits = %d, want 4", len(m))
	}
	if m["17"] != 3 {
		t.Fatalf("orbit 17 count = %d, want 3", m["17"])
	}
	// descending frequency, most common first
	if counts[0].OrbitID != "17" || counts[0].Count != 3 {
		t.Fatalf("first entry = %+v, want orbit 17 with count 3", counts[0])
	}
	for i := 1; i < len(counts); i++ {
		if counts[i].Count > counts[i-1].Count {
			t.Fatalf("counts not descending at %d: %+v", i, counts)
		}
	}
}

func TestOrbitCountsTieOrder(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Orbit ID"},
		{"1", "b"},
		{"2", "a"},
		{"3", "b"},
		{"4", "a"},
		{"5", "c"},
	})
	counts, err := ds.OrbitCounts()
	if err != nil {
		t.Fatalf("OrbitCounts: %v", err)
	}
	// b and a both appear twice; b was seen first
	if counts[0].OrbitID != "b" || counts[1].OrbitID != "a" || counts[2].OrbitID != "c" {
		t.Fatalf("unexpected order: %+v", counts)
	}
}

func TestAboveAverageMaxDiameter(t *testing.T) {
	ds := loadFixture(t)
	n, err := ds.AboveAverageMaxDiameter()
	if err != nil {
		t.Fatalf("AboveAverageMaxDiameter: %v", err)
	}
	if n < 0 || n > ds.Rows() {
		t.Fatalf("count %d outside [0, %d]", n, ds.Rows())
	}
	// fixture maxima: 0.284 0.206 0.517 0.019 0.284 0.898, mean ~0.368
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestAboveAverageMaxDiameterAllEqual(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Est Dia in KM(max)"},
		{"1", "0.5"},
		{"2", "0.5"},
		{"3", "0.5"},
	})
	n, err := ds.AboveAverageMaxDiameter()
	if err != nil {
		t.Fatalf("AboveAverageMaxDiameter: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0 for all-equal values", n)
	}
}

func TestHazardousCounts(t *testing.T) {
	ds := loadFixture(t)
	hazardous, safe, err := ds.HazardousCounts()
	if err != nil {
		t.Fatalf("HazardousCounts: %v", err)
	}
	if hazardous != 3 || safe != 3 {
		t.Fatalf("got (%d, %d), want (3, 3)", hazardous, safe)
	}
}

func TestQueriesOnEmptyDataset(t *testing.T) {
	ds := loadFixture(t)
	empty, err := ds.FilterFromYear("3000")
	if err != nil {
		t.Fatalf("FilterFromYear: %v", err)
	}
	if empty.Rows() != 0 {
		t.Fatalf("rows = %d, want 0", empty.Rows())
	}
	var ede *dataset.EmptyDatasetError
	if _, _, err := empty.MaxAbsoluteMagnitude(); !errors.As(err, &ede) {
		t.Fatalf("MaxAbsoluteMagnitude err = %v, want *EmptyDatasetError", err)
	}
	if _, err := empty.ClosestApproach(); !errors.As(err, &ede) {
		t.Fatalf("ClosestApproach err = %v, want *EmptyDatasetError", err)
	}
	if _, err := empty.OrbitCounts(); !errors.As(err, &ede) {
		t.Fatalf("OrbitCounts err = %v, want *EmptyDatasetError", err)
	}
	if _, err := empty.AboveAverageMaxDiameter(); !errors.As(err, &ede) {
		t.Fatalf("AboveAverageMaxDiameter err = %v, want *EmptyDatasetError", err)
	}
}

func TestQueryMissingColumn(t *testing.T) {
	ds := mustDataset(t, [][]string{
		{"Name", "Orbit ID"},
		{"1", "a"},
	})
	_, _, err := ds.MaxAbsoluteMagnitude()
	var se *dataset.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if se.Column != dataset.ColAbsoluteMagnitude {
		t.Fatalf("column = %q, want %q", se.Column, dataset.ColAbsoluteMagnitude)
	}
}
