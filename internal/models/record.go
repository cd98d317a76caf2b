package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Unavailable marks a field whose extraction failed. It is written to the
// output verbatim and must never be confused with a parsed zero.
const Unavailable = "N/A"

// Side is the home/away classification derived from a matchup string.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
	// SideUnknown serializes as the unavailable marker, matching the
	// output file format.
	SideUnknown Side = Unavailable
)

// CaptureDateFormat is the layout of the Date column (month-day).
const CaptureDateFormat = "01-02"

// PropRecord is one player prop card, fully extracted and enriched.
// PlayerName and Category are always non-empty for emitted records; every
// other field may hold the unavailable marker.
type PropRecord struct {
	ID          string // record UUID, used in logs and reports only
	PlayerName  string
	Number      string
	Odds        string
	Projection  string
	Avg         string // overall recent average, or unavailable
	HomeAwayAvg string // side-filtered recent average, or unavailable
	Side        Side
	Date        string
	Category    string
	Team        string
}

// CSVHeader is the fixed column set of every per-category output file.
func CSVHeader() []string {
	return []string{
		"Player Name", "Number", "Odds", "Projection", "Avg",
		"Home/Away Avg", "Home/Away", "Date", "Stat Category", "Team",
	}
}

// Row renders the record as one CSV row. The date is wrapped in literal
// quote characters, as downstream consumers expect.
func (r PropRecord) Row() []string {
	return []string{
		r.PlayerName, r.Number, r.Odds, r.Projection, r.Avg,
		r.HomeAwayAvg, string(r.Side), `"` + r.Date + `"`, r.Category, r.Team,
	}
}

// CaptureDate returns the Date column value for the current run.
func CaptureDate() string {
	return time.Now().Format(CaptureDateFormat)
}

// ClassifySide derives the side and the player's own team from a card's
// team-info string, e.g. "CF - NYY vs BOS" or "SS - LAD @ SF". The leading
// position segment up to the first dash is dropped before matching.
func ClassifySide(teamInfo string) (Side, string) {
	matchup := teamInfo
	if idx := strings.Index(matchup, "-"); idx != -1 {
		matchup = matchup[idx+1:]
	}
	matchup = strings.TrimSpace(matchup)

	switch {
	case strings.Contains(matchup, "vs"):
		return SideHome, strings.TrimSpace(strings.SplitN(matchup, "vs", 2)[0])
	case strings.Contains(matchup, "@"):
		return SideAway, strings.TrimSpace(strings.SplitN(matchup, "@", 2)[0])
	default:
		return SideUnknown, Unavailable
	}
}

// SideOfMatchup classifies one historical row's matchup cell: an "@" marker
// means the game was played away, anything else counts as home.
func SideOfMatchup(matchup string) Side {
	if strings.Contains(matchup, "@") {
		return SideAway
	}
	return SideHome
}

// ParseStatValue converts a historical value cell to an integer. Cells may
// carry a leading over/under qualifier ("O 2", "U 1"); only the trailing
// token is parsed. Unparseable cells yield 0 — a deliberate lossy default,
// distinct from the table-never-loaded case which never reaches parsing.
func ParseStatValue(cell string) int {
	candidate := strings.TrimSpace(cell)
	if fields := strings.Fields(candidate); len(fields) > 1 {
		candidate = fields[len(fields)-1]
	}
	v, err := strconv.Atoi(candidate)
	if err != nil {
		return 0
	}
	return v
}

// Average is the arithmetic mean rounded to one decimal place. An empty
// list yields 0.0: "scanned rows, found none matching" is not the same
// signal as unavailable.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(values))*10) / 10
}

// FormatAvg renders an average with one decimal for the output file.
func FormatAvg(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
