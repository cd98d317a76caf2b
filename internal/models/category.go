package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StatCategory is one selectable prop market on the catalog landing view.
type StatCategory struct {
	Key         string // stable numeric key, kept for CLI shorthand
	Name        string // display name, also used in the Stat Category column
	FilterXPath string // locator of the category's filter checkbox label
}

func filterXPath(name string) string {
	return fmt.Sprintf("//label[contains(@class, 'checkbox__label') and contains(., '%s')]", name)
}

// StatCategories lists every supported market in menu order.
var StatCategories = []StatCategory{
	{Key: "1", Name: "Home Runs", FilterXPath: filterXPath("Home Runs")},
	{Key: "2", Name: "Hits", FilterXPath: filterXPath("Hits")},
	{Key: "3", Name: "Runs", FilterXPath: filterXPath("Runs")},
	{Key: "4", Name: "RBI", FilterXPath: filterXPath("RBI")},
	{Key: "5", Name: "Strikeouts", FilterXPath: filterXPath("Strikeouts")},
	{Key: "6", Name: "Doubles", FilterXPath: filterXPath("Doubles")},
	{Key: "7", Name: "Total Bases", FilterXPath: filterXPath("Total Bases")},
	{Key: "8", Name: "Singles", FilterXPath: filterXPath("Singles")},
	{Key: "9", Name: "Steals", FilterXPath: filterXPath("Steals")},
	{Key: "10", Name: "Earned Runs", FilterXPath: filterXPath("Earned Runs")},
}

// LookupCategory resolves a user-supplied selector, either the numeric key
// or a case-insensitive display name.
func LookupCategory(sel string) (StatCategory, bool) {
	sel = strings.TrimSpace(sel)
	for _, c := range StatCategories {
		if c.Key == sel || strings.EqualFold(c.Name, sel) {
			return c, true
		}
	}
	return StatCategory{}, false
}

// ParseSelection turns a comma-separated selection into categories,
// dropping duplicates while preserving order. An empty result is an error.
func ParseSelection(raw []string) ([]StatCategory, error) {
	seen := make(map[string]bool)
	selected := make([]StatCategory, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		c, ok := LookupCategory(s)
		if !ok {
			return nil, fmt.Errorf("unknown stat category: %q", s)
		}
		if seen[c.Key] {
			continue
		}
		seen[c.Key] = true
		selected = append(selected, c)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no valid stat categories selected")
	}
	return selected, nil
}

// FileName is the per-category output file name, e.g.
// "home_runs_player_props.csv".
func (c StatCategory) FileName() string {
	return strings.ToLower(strings.ReplaceAll(c.Name, " ", "_")) + "_player_props.csv"
}

// CategoryJob binds one category to its output target and scan depth. One
// job owns one render session and one output file; neither is ever shared.
type CategoryJob struct {
	Category   StatCategory
	OutputPath string
	Games      int // recent games to average over
}

// NewCategoryJob builds the job for one selected category.
func NewCategoryJob(c StatCategory, outputDir string, games int) CategoryJob {
	return CategoryJob{
		Category:   c,
		OutputPath: filepath.Join(outputDir, c.FileName()),
		Games:      games,
	}
}
