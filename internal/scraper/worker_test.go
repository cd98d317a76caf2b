package scraper

import (
	"errors"
	"testing"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
)

func testJob(games int) models.CategoryJob {
	cat, _ := models.LookupCategory("Hits")
	return models.NewCategoryJob(cat, "unused", games)
}

// catalogSession is a landing view with a working filter control and an
// otherwise empty catalog: no card container, no pagination control.
func catalogSession(filterClicks *int) *fakeSession {
	cat, _ := models.LookupCategory("Hits")
	filter := &fakeElement{onClick: func() { *filterClicks++ }}
	return &fakeSession{waitForFn: func(sel Selector) (Element, error) {
		switch {
		case sel.CSS == pageBody.CSS:
			return &fakeElement{}, nil
		case sel.XPath == cat.FilterXPath:
			return filter, nil
		}
		return nil, errNotFound
	}}
}

func TestCategoryWorkerRunsToCompletion(t *testing.T) {
	shortenTimings(t)
	clicks := 0
	session := catalogSession(&clicks)
	w := &CategoryWorker{
		CatalogURL: "https://example.com/props",
		NewSession: func() (Session, error) { return session, nil },
	}
	out := make(chan models.PropRecord, 8)

	err := w.Run(testJob(5), out)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if clicks != 1 {
		t.Errorf("filter clicked %d time(s), want 1", clicks)
	}
	if len(session.navigations) != 1 || session.navigations[0] != "https://example.com/props" {
		t.Errorf("navigations = %v", session.navigations)
	}
	if !session.closed {
		t.Error("session not released")
	}
	if _, open := <-out; open {
		t.Error("record channel not closed after completion")
	}
}

func TestCategoryWorkerSessionFailureIsCategoryFatal(t *testing.T) {
	shortenTimings(t)
	w := &CategoryWorker{
		CatalogURL: "https://example.com/props",
		NewSession: func() (Session, error) { return nil, errors.New("no browser") },
	}
	out := make(chan models.PropRecord, 8)

	if err := w.Run(testJob(5), out); err == nil {
		t.Fatal("expected a category-fatal error")
	}
	if _, open := <-out; open {
		t.Error("record channel left open after failure")
	}
}

func TestCategoryWorkerFilterRetriesThenAborts(t *testing.T) {
	shortenTimings(t)
	session := &fakeSession{waitForFn: func(sel Selector) (Element, error) {
		if sel.CSS == pageBody.CSS {
			return &fakeElement{}, nil
		}
		return nil, errNotFound // the filter never appears
	}}
	w := &CategoryWorker{
		CatalogURL: "https://example.com/props",
		NewSession: func() (Session, error) { return session, nil },
	}
	out := make(chan models.PropRecord, 8)

	if err := w.Run(testJob(5), out); err == nil {
		t.Fatal("expected failure after exhausting filter attempts")
	}
	if session.reloads != filterAttempts-1 {
		t.Errorf("reloads = %d, want %d", session.reloads, filterAttempts-1)
	}
	if !session.closed {
		t.Error("session not released on the failure path")
	}
}
