package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoscan-cli/internal/dataset"
	"github.com/orbitwatch/neoscan-cli/internal/stats"
)

var (
	rgFromYear string
	rgNoFilter bool
)

var regressCmd = &cobra.Command{
	Use:   "regress <file.csv>",
	Short: "Run the miss-distance vs speed regression and print the fit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		year := rgFromYear
		if year == "" {
			year = c.MinYear
		}
		if rgNoFilter {
			year = ""
		}
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		if year != "" {
			if ds, err = ds.FilterFromYear(year); err != nil {
				return err
			}
		}
		x, err := ds.Floats(dataset.ColMissDistKM)
		if err != nil {
			return err
		}
		y, err := ds.Floats(dataset.ColMilesPerHour)
		if err != nil {
			return err
		}
		fit, err := stats.LinRegress(x, y)
		if err != nil {
			return err
		}
		fmt.Printf("n:         %d\n", fit.N)
		fmt.Printf("slope:     %.6g\n", fit.Slope)
		fmt.Printf("intercept: %.6g\n", fit.Intercept)
		fmt.Printf("r:         %.4f\n", fit.R)
		fmt.Printf("p-value:   %.4g\n", fit.P)
		fmt.Printf("std err:   %.6g\n", fit.StdErr)
		if fit.Significant(c.SignificanceLevel) {
			fmt.Printf("✓ significant at alpha=%.2f\n", c.SignificanceLevel)
		} else {
			fmt.Printf("– not significant at alpha=%.2f\n", c.SignificanceLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regressCmd)
	regressCmd.Flags().StringVar(&rgFromYear, "from-year", "", "keep approaches from this 4-digit year onward (default from config)")
	regressCmd.Flags().BoolVar(&rgNoFilter, "no-filter", false, "skip the approach-year filter")
}
