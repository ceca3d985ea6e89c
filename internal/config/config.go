package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/orbitwatch/neoscan-cli/internal/utils"
)

// Global configuration structure.
type Global struct {
	// OutputDir is where chart PNGs and written reports land.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// MinYear is the default 4-digit year prefix for the close-approach filter.
	MinYear string `mapstructure:"min_year" yaml:"min_year"`

	// Chart parameters
	DiameterBins int     `mapstructure:"diameter_bins" yaml:"diameter_bins"`
	OrbitBins    int     `mapstructure:"orbit_bins" yaml:"orbit_bins"`
	ChartWidth   float64 `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight  float64 `mapstructure:"chart_height" yaml:"chart_height"`

	// SignificanceLevel gates the regression scatter render.
	SignificanceLevel float64 `mapstructure:"significance_level" yaml:"significance_level"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.neoscan/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".neoscan")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NEOSCAN")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_dir", "")
	v.SetDefault("min_year", "2000")
	v.SetDefault("diameter_bins", 100)
	v.SetDefault("orbit_bins", 10)
	v.SetDefault("chart_width", 6.0)
	v.SetDefault("chart_height", 4.0)
	v.SetDefault("significance_level", 0.05)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".neoscan")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve output_dir default: ~/.neoscan/charts
	if c.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.OutputDir = filepath.Join(home, ".neoscan", "charts")
	}
	return &c, nil
}
