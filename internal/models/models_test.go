package models

import (
	"testing"
)

func TestParseStatValue(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{"bare number", "7", 7},
		{"over qualifier", "O 2", 2},
		{"under qualifier", "U 1", 1},
		{"qualifier with padding", "  O 3  ", 3},
		{"non-numeric", "DNP", 0},
		{"qualifier without number", "O -", 0},
		{"empty cell", "", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatValue(tt.cell); got != tt.want {
				t.Errorf("ParseStatValue(%q) = %d, want %d", tt.cell, got, tt.want)
			}
		})
	}
}

func TestClassifySide(t *testing.T) {
	tests := []struct {
		name     string
		teamInfo string
		wantSide Side
		wantTeam string
	}{
		{"home matchup", "CF - Team A vs Team B", SideHome, "Team A"},
		{"away matchup", "SS - Team A @ Team B", SideAway, "Team A"},
		{"no matchup marker", "1B - Team A", SideUnknown, Unavailable},
		{"no position segment", "Team A vs Team B", SideHome, "Team A"},
		{"empty", "", SideUnknown, Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, team := ClassifySide(tt.teamInfo)
			if side != tt.wantSide || team != tt.wantTeam {
				t.Errorf("ClassifySide(%q) = (%v, %q), want (%v, %q)",
					tt.teamInfo, side, team, tt.wantSide, tt.wantTeam)
			}
		})
	}
}

func TestSideOfMatchup(t *testing.T) {
	if got := SideOfMatchup("NYY @ BOS"); got != SideAway {
		t.Errorf("away matchup classified as %v", got)
	}
	if got := SideOfMatchup("NYY vs BOS"); got != SideHome {
		t.Errorf("home matchup classified as %v", got)
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"typical", []int{10, 0, 5}, 5.0},
		{"empty list yields zero", nil, 0.0},
		{"rounds to one decimal", []int{1, 2, 2}, 1.7},
		{"single value", []int{3}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Average(tt.values); got != tt.want {
				t.Errorf("Average(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestFormatAvg(t *testing.T) {
	if got := FormatAvg(5.0); got != "5.0" {
		t.Errorf("FormatAvg(5.0) = %q, want \"5.0\"", got)
	}
	if got := FormatAvg(1.7); got != "1.7" {
		t.Errorf("FormatAvg(1.7) = %q, want \"1.7\"", got)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{"by key", []string{"1", "2"}, []string{"Home Runs", "Hits"}, false},
		{"by name", []string{"Hits", "Steals"}, []string{"Hits", "Steals"}, false},
		{"case insensitive", []string{"hits"}, []string{"Hits"}, false},
		{"duplicates collapse", []string{"1", "Home Runs"}, []string{"Home Runs"}, false},
		{"unknown category", []string{"Wins"}, nil, true},
		{"nothing selected", []string{"", " "}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelection(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d categories, want %d", len(got), len(tt.want))
			}
			for i, c := range got {
				if c.Name != tt.want[i] {
					t.Errorf("selection[%d] = %q, want %q", i, c.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFileName(t *testing.T) {
	c, ok := LookupCategory("Home Runs")
	if !ok {
		t.Fatal("Home Runs not found")
	}
	if got := c.FileName(); got != "home_runs_player_props.csv" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestRowWrapsDateInQuotes(t *testing.T) {
	rec := PropRecord{PlayerName: "aaron-judge", Date: "08-31", Category: "Home Runs"}
	row := rec.Row()
	if len(row) != len(CSVHeader()) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(CSVHeader()))
	}
	if row[7] != `"08-31"` {
		t.Errorf("date column = %q, want literal quotes", row[7])
	}
}
