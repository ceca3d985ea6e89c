package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orbitwatch/neoscan-cli/internal/dataset"
)

var reportFixture = strings.Join([]string{
	"Neo Reference ID,Name,Absolute Magnitude,Est Dia in KM(min),Est Dia in KM(max),Close Approach Date,Orbit ID,Orbiting Body,Miss Dist.(kilometers),Minimum Orbit Intersection,Hazardous,Miles per hour,Equinox",
	"3703080,3703080,21.6,0.127,0.284,1995-01-07,17,Earth,61612810.0,0.025,True,36540.0,J2000",
	"2446862,2446862,20.3,0.231,0.517,2006-03-12,17,Earth,52078474.0,0.043,True,24689.0,J2000",
	"3092506,3092506,27.4,0.008,0.019,2007-06-01,9,Earth,12143794.0,0.311,False,51204.0,J2000",
}, "\n")

func TestBuildReport(t *testing.T) {
	p := filepath.Join(t.TempDir(), "neo.csv")
	if err := os.WriteFile(p, []byte(reportFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	md, err := buildReport(p, "2000")
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if !strings.Contains(md, "[DATASET REPORT]") {
		t.Fatalf("missing report header:\n%s", md)
	}
	// the 1995 approach is filtered out
	if !strings.Contains(md, "Rows: 2") {
		t.Fatalf("expected 2 rows after filter:\n%s", md)
	}
}

func TestBuildReportNoFilter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "neo.csv")
	if err := os.WriteFile(p, []byte(reportFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	md, err := buildReport(p, "")
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if !strings.Contains(md, "Rows: 3") {
		t.Fatalf("expected all 3 rows without filter:\n%s", md)
	}
}

func TestBuildReportMissingFile(t *testing.T) {
	_, err := buildReport(filepath.Join(t.TempDir(), "nope.csv"), "2000")
	var nf *dataset.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
}
