package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all job configuration.
type Config struct {
	Input struct {
		Path  string `yaml:"path"`
		Sheet string `yaml:"sheet"` // xlsx sheet name, empty means first sheet
	} `yaml:"input"`
	Output struct {
		ChartPath  string `yaml:"chart_path"`
		ReportPath string `yaml:"report_path"`
	} `yaml:"output"`
	Windows struct {
		Short int `yaml:"short"`
		Long  int `yaml:"long"`
	} `yaml:"windows"`
	Chart struct {
		HistogramBins int `yaml:"histogram_bins"`
	} `yaml:"chart"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("INPUT_PATH"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("INPUT_SHEET"); v != "" {
		cfg.Input.Sheet = v
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.Output.ChartPath = v
	}
	if v := os.Getenv("REPORT_PATH"); v != "" {
		cfg.Output.ReportPath = v
	}

	// Defaults
	if cfg.Input.Path == "" {
		cfg.Input.Path = "data/EU_ETS_Carbon_Prices_2022-2024.csv"
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "EU_ETS_Analysis_Charts.png"
	}
	if cfg.Output.ReportPath == "" {
		cfg.Output.ReportPath = "EU_ETS_Analysis_Report.txt"
	}
	if cfg.Windows.Short == 0 {
		cfg.Windows.Short = 30
	}
	if cfg.Windows.Long == 0 {
		cfg.Windows.Long = 90
	}
	if cfg.Chart.HistogramBins == 0 {
		cfg.Chart.HistogramBins = 30
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if c.Output.ChartPath == "" || c.Output.ReportPath == "" {
		return fmt.Errorf("output paths are required")
	}
	if c.Windows.Short <= 0 || c.Windows.Long <= 0 {
		return fmt.Errorf("windows must be positive")
	}
	if c.Windows.Short >= c.Windows.Long {
		return fmt.Errorf("windows.short must be below windows.long")
	}
	if c.Chart.HistogramBins <= 0 {
		return fmt.Errorf("chart.histogram_bins must be positive")
	}
	return nil
}
