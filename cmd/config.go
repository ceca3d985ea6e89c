package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/orbitwatch/neoscan-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set neoscan configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("min_year: %s\n", cfg.MinYear)
		fmt.Printf("diameter_bins: %d\n", cfg.DiameterBins)
		fmt.Printf("orbit_bins: %d\n", cfg.OrbitBins)
		fmt.Printf("chart_width: %.1f\n", cfg.ChartWidth)
		fmt.Printf("chart_height: %.1f\n", cfg.ChartHeight)
		fmt.Printf("significance_level: %.3f\n", cfg.SignificanceLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_dir":
			cfg.OutputDir = val
		case "min_year":
			if len(val) != 4 {
				return fmt.Errorf("invalid min_year: %s (want 4-digit year)", val)
			}
			cfg.MinYear = val
		case "diameter_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for diameter_bins: %v", val)
			}
			cfg.DiameterBins = i
		case "orbit_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for orbit_bins: %v", val)
			}
			cfg.OrbitBins = i
		case "chart_width":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for chart_width: %v", val)
			}
			cfg.ChartWidth = f
		case "chart_height":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for chart_height: %v", val)
			}
			cfg.ChartHeight = f
		case "significance_level":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f >= 1 {
				return fmt.Errorf("invalid significance_level: %v (want 0 < a < 1)", val)
			}
			cfg.SignificanceLevel = f
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
