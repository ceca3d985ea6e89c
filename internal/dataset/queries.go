package dataset

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// nameAt reads the integer asteroid identifier of row i.
func (d *Dataset) nameAt(i int) (int, error) {
	s, err := d.column(ColName)
	if err != nil {
		return 0, err
	}
	n, err := s.Elem(i).Int()
	if err != nil {
		return 0, &SchemaError{Column: ColName, Reason: "not an integer identifier"}
	}
	return n, nil
}

// MaxAbsoluteMagnitude returns the Name and Absolute Magnitude of the row with
// the globally maximum magnitude. Ties go to the first row in original order.
func (d *Dataset) MaxAbsoluteMagnitude() (name int, magnitude float64, err error) {
	if d.Rows() == 0 {
		return 0, 0, &EmptyDatasetError{Op: "max absolute magnitude"}
	}
	mags, err := d.Floats(ColAbsoluteMagnitude)
	if err != nil {
		return 0, 0, err
	}
	best := 0
	for i := 1; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	name, err = d.nameAt(best)
	if err != nil {
		return 0, 0, err
	}
	return name, mags[best], nil
}

// ClosestApproach returns the Name of the row with the minimum miss distance in
// kilometers. Ties go to the first row in original order.
func (d *Dataset) ClosestApproach() (int, error) {
	if d.Rows() == 0 {
		return 0, &EmptyDatasetError{Op: "closest approach"}
	}
	dists, err := d.Floats(ColMissDistKM)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := 1; i < len(dists); i++ {
		if dists[i] < dists[best] {
			best = i
		}
	}
	return d.nameAt(best)
}

// OrbitCount is one Orbit ID with its occurrence count.
type OrbitCount struct {
	OrbitID string
	Count   int
}

// OrbitCounts is ordered by descending count; equal counts keep the order the
// orbit was first seen in the dataset.
type OrbitCounts []OrbitCount

// Map returns the unordered mapping form.
func (oc OrbitCounts) Map() map[string]int {
	m := make(map[string]int, len(oc))
	for _, c := range oc {
		m[c.OrbitID] = c.Count
	}
	return m
}

// Total returns the sum of all counts, which equals the dataset row count.
func (oc OrbitCounts) Total() int {
	total := 0
	for _, c := range oc {
		total += c.Count
	}
	return total
}

// OrbitCounts counts occurrences of each distinct Orbit ID.
func (d *Dataset) OrbitCounts() (OrbitCounts, error) {
	if d.Rows() == 0 {
		return nil, &EmptyDatasetError{Op: "orbit counts"}
	}
	s, err := d.column(ColOrbitID)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, v := range s.Records() {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}
	out := make(OrbitCounts, 0, len(counts))
	for id, n := range counts {
		out = append(out, OrbitCount{OrbitID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].OrbitID] < firstSeen[out[j].OrbitID]
	})
	return out, nil
}

// AboveAverageMaxDiameter counts rows whose Est Dia in KM(max) strictly exceeds
// the arithmetic mean of that column. A dataset where all values are equal
// yields zero.
func (d *Dataset) AboveAverageMaxDiameter() (int, error) {
	if d.Rows() == 0 {
		return 0, &EmptyDatasetError{Op: "above-average max diameter"}
	}
	vals, err := d.Floats(ColEstDiaMaxKM)
	if err != nil {
		return 0, err
	}
	mean := stat.Mean(vals, nil)
	count := 0
	for _, v := range vals {
		if v > mean {
			count++
		}
	}
	return count, nil
}

// HazardousCounts returns how many rows are flagged hazardous and how many are
// not. The column is parsed leniently ("True"/"true"/"1", etc.) because CSV
// exports capitalize the booleans.
func (d *Dataset) HazardousCounts() (hazardous, safe int, err error) {
	if d.Rows() == 0 {
		return 0, 0, &EmptyDatasetError{Op: "hazardous counts"}
	}
	s, err := d.column(ColHazardous)
	if err != nil {
		return 0, 0, err
	}
	for _, v := range s.Records() {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return 0, 0, &SchemaError{Column: ColHazardous, Reason: "not a boolean: " + v}
		}
		if b {
			hazardous++
		} else {
			safe++
		}
	}
	return hazardous, safe, nil
}
