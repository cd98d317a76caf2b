package scraper

import (
	"errors"
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// ErrStatsUnavailable means the historical table never loaded. Distinct
// from an empty scan, which yields a defined 0.0 average.
var ErrStatsUnavailable = errors.New("player stats table unavailable")

var (
	statsTable = XPath(`/html/body/div[1]/div/div/div[1]/div/main/div/div/div[2]/section[4]/div/div[2]/table/tbody`)
	statsRows  = CSS(`tr`)
	statsCells = CSS(`td`)
)

const (
	tableAttempts  = 3
	matchupColumn  = 1
	statColumn     = 5
	minStatColumns = 6
)

// Enrich opens a player's detail view, scans up to games recent rows (most
// recent first), and returns the overall and side-filtered averages. The
// detail view is closed and the primary view restored on every exit path.
func Enrich(s Session, detailURL string, games int, sideFilter models.Side) (avgAll, avgSide float64, err error) {
	if err := s.OpenDetail(detailURL); err != nil {
		return 0, 0, err
	}
	defer s.CloseDetail()

	DismissOverlays(s)

	table, err := waitForTable(s)
	if err != nil {
		return 0, 0, err
	}

	rows, err := table.FindAll(statsRows)
	if err != nil {
		return 0, 0, ErrStatsUnavailable
	}

	allStats := make([]int, 0, games)
	sideStats := make([]int, 0, games)

	for _, row := range rows {
		cells, err := row.FindAll(statsCells)
		if err != nil || len(cells) < minStatColumns {
			continue
		}

		matchup, err := cells[matchupColumn].Text()
		if err != nil {
			continue
		}
		cell, err := cells[statColumn].Text()
		if err != nil {
			continue
		}
		value := models.ParseStatValue(cell)

		if len(allStats) < games {
			allStats = append(allStats, value)
		}
		if models.SideOfMatchup(matchup) == sideFilter && len(sideStats) < games {
			sideStats = append(sideStats, value)
		}
		if len(allStats) >= games && len(sideStats) >= games {
			break
		}
	}

	return models.Average(allStats), models.Average(sideStats), nil
}

// waitForTable locates the historical table, reloading the detail view
// between bounded attempts when it fails to appear.
func waitForTable(s Session) (Element, error) {
	for attempt := 1; attempt <= tableAttempts; attempt++ {
		table, err := s.WaitFor(statsTable, tableWait)
		if err == nil {
			return table, nil
		}
		if attempt == tableAttempts {
			break
		}
		utils.Warnf("retry %d/%d loading player stats table", attempt, tableAttempts)
		if err := s.Reload(); err != nil {
			utils.Debugf("detail reload failed: %v", err)
		}
		time.Sleep(reloadSettle)
		DismissOverlays(s)
	}
	utils.Error(nil, "failed to load player stats table after retries")
	return nil, ErrStatsUnavailable
}
