package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline settings. A YAML file given with --config
// overrides the defaults; individual flags override the file.
type Config struct {
	Input        string   `yaml:"input"`
	FillStrategy string   `yaml:"fill_strategy"`
	TestRatio    float64  `yaml:"test_ratio"`
	Seed         int64    `yaml:"seed"`
	MaxDepth     int      `yaml:"max_depth"`
	OutlierCols  []string `yaml:"outlier_columns"`
	CategoryCol  string   `yaml:"category_column"`
	ScatterX     string   `yaml:"scatter_x"`
	ScatterY     string   `yaml:"scatter_y"`
	ResultsDir   string   `yaml:"results_dir"`
	FiguresDir   string   `yaml:"figures_dir"`
}

func defaultConfig() Config {
	return Config{
		Input:        "housing.csv",
		FillStrategy: "median",
		TestRatio:    0.2,
		Seed:         42,
		MaxDepth:     5,
		OutlierCols:  []string{"Price", "median_income"},
		CategoryCol:  "ocean_proximity",
		ScatterX:     "median_income",
		ScatterY:     "Price",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
