package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// SaveRunReport writes the run summary as JSON next to the scraped CSV
// files, so a run can be audited after the console output is gone.
func SaveRunReport(outputDir string, summary interface{}) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(outputDir, "run_report.json")
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run report: %w", err)
	}

	Infof("run report saved: %s", path)
	return nil
}

// NewProgressBar builds the card-progress bar shown while a page is
// harvested.
func NewProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
