package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neoscan-cli/internal/dataset"
	"github.com/orbitwatch/neoscan-cli/internal/report"
	"github.com/orbitwatch/neoscan-cli/internal/utils"
)

var (
	repFromYear   string
	repNoFilter   bool
	repOutputPath string
)

var reportCmd = &cobra.Command{
	Use:   "report <file.csv>",
	Short: "Summarize an asteroid dataset (schema, extremes, orbits, diameters)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		year := repFromYear
		if year == "" {
			year = c.MinYear
		}
		if repNoFilter {
			year = ""
		}
		md, err := buildReport(args[0], year)
		if err != nil {
			return err
		}
		if repOutputPath != "" {
			if err := utils.SafeWriteFile(repOutputPath, []byte(md)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

// buildReport loads the dataset, applies the optional year filter and renders
// the markdown report. An empty fromYear skips filtering.
func buildReport(path, fromYear string) (string, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return "", err
	}
	if fromYear != "" {
		if ds, err = ds.FilterFromYear(fromYear); err != nil {
			return "", err
		}
	}
	rep, err := report.Build(ds, path)
	if err != nil {
		return "", err
	}
	return rep.Markdown(), nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&repFromYear, "from-year", "", "keep approaches from this 4-digit year onward (default from config)")
	reportCmd.Flags().BoolVar(&repNoFilter, "no-filter", false, "skip the approach-year filter")
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report (Markdown)")
}
