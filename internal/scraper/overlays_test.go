package scraper

import (
	"errors"
	"testing"
)

func TestDismissOverlaysNoOverlaysIsNoOp(t *testing.T) {
	shortenTimings(t)
	s := &fakeSession{} // every lookup reports not found

	DismissOverlays(s) // must not panic

	if s.reloads != 0 || s.scrolls != 0 || len(s.navigations) != 0 {
		t.Errorf("page state altered on an overlay-free page: %+v", s)
	}
}

func TestDismissOverlaysClicksOnlyVisibleCandidates(t *testing.T) {
	shortenTimings(t)
	clicked := 0
	visible := &fakeElement{onClick: func() { clicked++ }}
	hidden := &fakeElement{hidden: true, onClick: func() { clicked++ }}

	s := &fakeSession{findAllFn: func(sel Selector) ([]Element, error) {
		if sel.XPath == dismissButtons.XPath {
			return []Element{visible, hidden}, nil
		}
		return nil, errNotFound
	}}

	DismissOverlays(s)

	if clicked != 1 {
		t.Errorf("clicked %d candidates, want only the visible one", clicked)
	}
}

func TestDismissOverlaysClickFailureDoesNotStopEvaluation(t *testing.T) {
	shortenTimings(t)
	clicked := 0
	failing := &fakeElement{clickErr: errors.New("intercepted")}
	working := &fakeElement{onClick: func() { clicked++ }}

	s := &fakeSession{findAllFn: func(sel Selector) ([]Element, error) {
		switch sel.XPath {
		case dismissButtons.XPath:
			return []Element{failing, working}, nil
		case consentButtons.XPath:
			return []Element{working}, nil
		}
		return nil, errNotFound
	}}

	DismissOverlays(s)

	if clicked != 2 {
		t.Errorf("clicked %d candidates, want 2 despite the failure", clicked)
	}
}

func TestDismissOverlaysClosesNestedControls(t *testing.T) {
	shortenTimings(t)
	clicked := 0
	closeBtn := &fakeElement{onClick: func() { clicked++ }}
	box := &fakeElement{findAllFn: func(sel Selector) ([]Element, error) {
		if sel.XPath == overlayCloses.XPath {
			return []Element{closeBtn}, nil
		}
		return nil, errNotFound
	}}
	hiddenBox := &fakeElement{hidden: true, findAllFn: func(sel Selector) ([]Element, error) {
		t.Error("searched inside an invisible overlay")
		return nil, errNotFound
	}}

	s := &fakeSession{findAllFn: func(sel Selector) ([]Element, error) {
		if sel.XPath == overlayBoxes.XPath {
			return []Element{box, hiddenBox}, nil
		}
		return nil, errNotFound
	}}

	DismissOverlays(s)

	if clicked != 1 {
		t.Errorf("nested close clicked %d time(s), want 1", clicked)
	}
}
