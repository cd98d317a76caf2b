package main

import (
	"fmt"
	"strings"
)

// ValidateFlags checks the command-line flags before any browser launches.
func ValidateFlags(stats []string, games int, maxWorkers int) error {
	if len(stats) == 0 {
		return fmt.Errorf("no stat categories selected (use --stats, see 'mlbscraper list')")
	}
	for _, s := range stats {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("empty stat category in selection")
		}
	}

	if games < 1 || games > 162 {
		return fmt.Errorf("games must be between 1 and 162, got %d", games)
	}

	if maxWorkers < 1 || maxWorkers > 4 {
		return fmt.Errorf("workers must be between 1 and 4, got %d", maxWorkers)
	}

	return nil
}
