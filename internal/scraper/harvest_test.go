package scraper

import (
	"testing"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
)

func TestHarvestPageContainerNeverAppears(t *testing.T) {
	shortenTimings(t)
	s := &fakeSession{waitForFn: func(sel Selector) (Element, error) {
		return nil, errNotFound
	}}
	out := make(chan models.PropRecord, 8)

	HarvestPage(s, 5, "Hits", out) // non-fatal: returns without records

	if records := collectRecords(out); len(records) != 0 {
		t.Fatalf("got %d records from a page with no container", len(records))
	}
	if s.reloads != containerAttempts-1 {
		t.Errorf("reloads = %d, want %d", s.reloads, containerAttempts-1)
	}
}

func TestHarvestPageExtractsInDocumentOrder(t *testing.T) {
	shortenTimings(t)
	session := &fakeSession{}
	cards := []Element{
		propCard("https://www.bettingpros.com/mlb/players/first-player/", "1", "", "", "CF - NYY vs BOS"),
		propCard("https://www.bettingpros.com/mlb/players/second-player/", "2", "", "", "CF - NYY vs BOS"),
	}
	container := &fakeElement{findAllFn: func(sel Selector) ([]Element, error) {
		return cards, nil
	}}
	session.waitForFn = func(sel Selector) (Element, error) {
		if sel.XPath == cardContainer.XPath {
			return container, nil
		}
		if sel.XPath == statsTable.XPath {
			return &fakeElement{findAllFn: func(Selector) ([]Element, error) {
				return nil, nil
			}}, nil
		}
		return nil, errNotFound
	}
	out := make(chan models.PropRecord, 8)

	HarvestPage(session, 5, "Hits", out)

	records := collectRecords(out)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].PlayerName != "first-player" || records[1].PlayerName != "second-player" {
		t.Errorf("records out of document order: %q, %q",
			records[0].PlayerName, records[1].PlayerName)
	}
}
