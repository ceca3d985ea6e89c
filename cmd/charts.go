package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoscan-cli/internal/chart"
	"github.com/orbitwatch/neoscan-cli/internal/dataset"
	"github.com/orbitwatch/neoscan-cli/internal/stats"
	"github.com/orbitwatch/neoscan-cli/internal/utils"
)

var (
	chFromYear string
	chNoFilter bool
	chOutDir   string
	chAlpha    float64
)

var chartsCmd = &cobra.Command{
	Use:   "charts <file.csv>",
	Short: "Render the dataset charts (diameter and orbit histograms, hazard pie, regression scatter)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		path := args[0]
		year := chFromYear
		if year == "" {
			year = c.MinYear
		}
		if chNoFilter {
			year = ""
		}
		outDir := chOutDir
		if outDir == "" {
			outDir = c.OutputDir
		}
		alpha := c.SignificanceLevel
		if cmd.Flags().Changed("alpha") {
			alpha = chAlpha
		}

		ds, err := dataset.Load(path)
		if err != nil {
			return err
		}
		if year != "" {
			if ds, err = ds.FilterFromYear(year); err != nil {
				return err
			}
		}
		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		runID := uuid.NewString()[:8]
		base := utils.SanitizeBase(path)
		artifact := func(kind string) string {
			return filepath.Join(outDir, fmt.Sprintf("%s_%s_%s.png", base, runID, kind))
		}
		size := func(o chart.Options) chart.Options {
			o.Width = c.ChartWidth
			o.Height = c.ChartHeight
			return o
		}

		// Average-diameter histogram over the derived (min+max)/2 column.
		withAvg, err := ds.WithAverageDiameter()
		if err != nil {
			return err
		}
		avg, err := withAvg.Floats(dataset.ColEstDiaAvgKM)
		if err != nil {
			return err
		}
		p := artifact("diameter_hist")
		if err := chart.Histogram(avg, c.DiameterBins, size(chart.Options{
			Title:  "Distribution of Average diameter size",
			XLabel: "Average Value",
			YLabel: "Count",
		}), p); err != nil {
			return err
		}
		fmt.Printf("✓ %s\n", p)

		// Minimum Orbit Intersection histogram, values sorted descending first.
		moi, err := ds.Floats(dataset.ColMinOrbitIntersection)
		if err != nil {
			return err
		}
		moiSorted := append([]float64(nil), moi...)
		sort.Sort(sort.Reverse(sort.Float64Slice(moiSorted)))
		p = artifact("orbit_hist")
		if err := chart.Histogram(moiSorted, c.OrbitBins, size(chart.Options{
			Title:  "Distribution of Asteroids by Minimum Orbit Intersection",
			XLabel: "Min Orbit Intersection",
			YLabel: "Number of Asteroids",
		}), p); err != nil {
			return err
		}
		fmt.Printf("✓ %s\n", p)

		// Hazardous / non-hazardous pie.
		hazardous, safe, err := ds.HazardousCounts()
		if err != nil {
			return err
		}
		p = artifact("hazard_pie")
		if err := chart.Pie(hazardous, safe, "Percentage of Hazardous and Non-Hazardous Asteroids", p); err != nil {
			return err
		}
		fmt.Printf("✓ %s\n", p)

		// Regression scatter, rendered only when the slope is significant.
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
		if !fit.Significant(alpha) {
			fmt.Printf("– regression not significant (p=%.4f >= %.2f), scatter skipped\n", fit.P, alpha)
			return nil
		}
		p = artifact("regression")
		if err := chart.RegressionScatter(x, y, fit, size(chart.Options{
			Title:  "Linear Regression: Miss Distance vs Miles per hour",
			XLabel: "Miss Dist.(kilometers)",
			YLabel: "Miles per hour",
		}), p); err != nil {
			return err
		}
		fmt.Printf("✓ %s (p=%.4g)\n", p, fit.P)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVar(&chFromYear, "from-year", "", "keep approaches from this 4-digit year onward (default from config)")
	chartsCmd.Flags().BoolVar(&chNoFilter, "no-filter", false, "skip the approach-year filter")
	chartsCmd.Flags().StringVarP(&chOutDir, "out", "o", "", "directory for chart PNGs (default from config)")
	chartsCmd.Flags().Float64Var(&chAlpha, "alpha", 0.05, "significance level gating the regression scatter")
}
