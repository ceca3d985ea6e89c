package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names of the NASA close-approach CSV consumed by the queries.
const (
	ColCloseApproachDate    = "Close Approach Date"
	ColAbsoluteMagnitude    = "Absolute Magnitude"
	ColName                 = "Name"
	ColMissDistKM           = "Miss Dist.(kilometers)"
	ColOrbitID              = "Orbit ID"
	ColEstDiaMinKM          = "Est Dia in KM(min)"
	ColEstDiaMaxKM          = "Est Dia in KM(max)"
	ColMinOrbitIntersection = "Minimum Orbit Intersection"
	ColHazardous            = "Hazardous"
	ColMilesPerHour         = "Miles per hour"

	// ColEstDiaAvgKM is the derived column added by WithAverageDiameter.
	ColEstDiaAvgKM = "Est Dia in KM(avg)"
)

// droppedColumns are irrelevant to every query and removed by Describe.
var droppedColumns = []string{"Orbiting Body", "Neo Reference ID", "Equinox"}

// Dataset is an immutable in-memory table of asteroid observations.
// Transform operations return a new Dataset and leave the receiver untouched.
type Dataset struct {
	df dataframe.DataFrame
}

// Load reads a CSV file into a Dataset. Failures are typed: *NotFoundError,
// *InvalidFormatError, *EmptyDataError, or *IOFailureError. A nil error
// guarantees a non-empty dataset.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &IOFailureError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path}
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, &InvalidFormatError{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOFailureError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, &IOFailureError{Path: path, Err: err}
	}
	// First record is the header; anything less means no data rows.
	if len(records) < 2 {
		return nil, &EmptyDataError{Path: path}
	}
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, &IOFailureError{Path: path, Err: df.Err}
	}
	return &Dataset{df: df}, nil
}

// FromRecords builds a Dataset from raw records where the first record is the
// header row. Used by tests and by callers that already hold parsed rows.
func FromRecords(records [][]string) (*Dataset, error) {
	if len(records) < 2 {
		return nil, &EmptyDataError{}
	}
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, &IOFailureError{Err: df.Err}
	}
	return &Dataset{df: df}, nil
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int { return d.df.Nrow() }

// Columns returns the column names in original order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// HasColumn reports whether the named column is present.
func (d *Dataset) HasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// column fetches a series, mapping an unknown name to *SchemaError.
func (d *Dataset) column(name string) (series.Series, error) {
	s := d.df.Col(name)
	if s.Err != nil {
		return series.Series{}, &SchemaError{Column: name}
	}
	return s, nil
}

// Floats returns the named column converted to float64 values.
func (d *Dataset) Floats(name string) ([]float64, error) {
	s, err := d.column(name)
	if err != nil {
		return nil, err
	}
	return s.Float(), nil
}

// FilterFromYear keeps rows whose Close Approach Date starts with a 4-character
// year prefix lexicographically >= year. The comparison is on strings, exactly
// as the dates are stored; it is correct because all prefixes are 4-digit
// years. Row order and columns are preserved; the receiver is unchanged.
func (d *Dataset) FilterFromYear(year string) (*Dataset, error) {
	if _, err := d.column(ColCloseApproachDate); err != nil {
		return nil, err
	}
	out := d.df.Filter(dataframe.F{
		Colname:    ColCloseApproachDate,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			v := el.String()
			if len(v) < 4 {
				return false
			}
			return v[:4] >= year
		},
	})
	if out.Err != nil {
		return nil, &IOFailureError{Err: out.Err}
	}
	return &Dataset{df: out}, nil
}

// Summary describes the dataset shape after pruning irrelevant columns.
type Summary struct {
	Rows        int
	Columns     int
	ColumnNames []string
}

// Describe drops Orbiting Body, Neo Reference ID and Equinox, then reports the
// resulting row count, column count and remaining column names in their
// original order. A missing drop target is a *SchemaError.
func (d *Dataset) Describe() (Summary, error) {
	df := d.df
	for _, name := range droppedColumns {
		if !d.HasColumn(name) {
			return Summary{}, &SchemaError{Column: name}
		}
		df = df.Drop(name)
		if df.Err != nil {
			return Summary{}, &IOFailureError{Err: df.Err}
		}
	}
	return Summary{
		Rows:        df.Nrow(),
		Columns:     df.Ncol(),
		ColumnNames: df.Names(),
	}, nil
}

// WithAverageDiameter returns a copy of the dataset with the derived
// "Est Dia in KM(avg)" column, the per-row mean of the min and max estimated
// diameters.
func (d *Dataset) WithAverageDiameter() (*Dataset, error) {
	mins, err := d.Floats(ColEstDiaMinKM)
	if err != nil {
		return nil, err
	}
	maxs, err := d.Floats(ColEstDiaMaxKM)
	if err != nil {
		return nil, err
	}
	avg := make([]float64, len(mins))
	for i := range mins {
		avg[i] = (mins[i] + maxs[i]) / 2
	}
	df := d.df.Mutate(series.New(avg, series.Float, ColEstDiaAvgKM))
	if df.Err != nil {
		return nil, &IOFailureError{Err: df.Err}
	}
	return &Dataset{df: df}, nil
}
