// Package stats provides the ordinary-least-squares regression used to test
// whether two dataset columns have a statistically significant linear
// relationship.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result holds the OLS fit of y against x.
type Result struct {
	Slope     float64
	Intercept float64
	R         float64 // Pearson correlation coefficient
	P         float64 // two-sided p-value for the null hypothesis slope == 0
	StdErr    float64 // standard error of the slope
	N         int
}

// Significant reports whether the slope differs from zero at level alpha.
func (r Result) Significant(alpha float64) bool { return r.P < alpha }

// Predict returns the fitted value at x.
func (r Result) Predict(x float64) float64 { return r.Slope*x + r.Intercept }

// LinRegress fits y = slope*x + intercept by ordinary least squares and runs a
// two-sided Student's t test on the slope. At least three observations are
// required for the test to have a degree of freedom.
func LinRegress(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, errors.New("linregress: x and y lengths differ")
	}
	n := len(x)
	if n < 3 {
		return Result{}, errors.New("linregress: need at least 3 observations")
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	r := stat.Correlation(x, y, nil)

	xmean := stat.Mean(x, nil)
	var sxx, sse float64
	for i := range x {
		dx := x[i] - xmean
		sxx += dx * dx
		resid := y[i] - (intercept + slope*x[i])
		sse += resid * resid
	}
	if sxx == 0 {
		return Result{}, errors.New("linregress: x is constant")
	}

	dof := float64(n - 2)
	res := Result{Slope: slope, Intercept: intercept, R: r, N: n}
	if sse == 0 {
		// Exact fit: a nonzero slope is maximally significant, a flat line
		// gives no evidence against the null.
		if slope != 0 {
			res.P = 0
		} else {
			res.P = 1
		}
		return res, nil
	}

	res.StdErr = math.Sqrt(sse / dof / sxx)
	t := slope / res.StdErr
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	p := 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}
	res.P = p
	return res, nil
}
