// Package report persists evaluation metrics as indented JSON files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thecooked1/Housing-Price-Prediction/pkg/model"
)

// DefaultResultsDir returns the conventional results directory for the given
// working directory: one level up when running from a directory named
// "notebooks", else relative to it. Callers resolve this once and pass the
// result to Save.
func DefaultResultsDir(wd string) string {
	if filepath.Base(wd) == "notebooks" {
		return filepath.Join("..", "reports", "results")
	}
	return filepath.Join("reports", "results")
}

// Save writes the metrics record to <dir>/<filename> as JSON with 4-space
// indentation, creating the directory if absent. Returns the written path.
func Save(metrics model.Metrics, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create results dir: %w", err)
	}
	data, err := json.MarshalIndent(metrics, "", "    ")
	if err != nil {
		return "", fmt.Errorf("report: encode metrics: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write metrics file: %w", err)
	}
	return path, nil
}
