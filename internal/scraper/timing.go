package scraper

import "time"

// The pipeline's only suspension points: bounded waits for rendered-element
// presence and fixed settle delays after navigation-affecting actions.
// Package variables so tests can shrink them.
var (
	landingWait    = 30 * time.Second // catalog body after first navigation
	filterWait     = 15 * time.Second // category filter control
	containerWait  = 15 * time.Second // prop card container
	cardsWait      = 15 * time.Second // first card inside the container
	fieldWait      = 15 * time.Second // one display field on a card
	tableWait      = 15 * time.Second // historical table on the detail view
	nextButtonWait = 10 * time.Second // pagination control

	overlaySettle = 500 * time.Millisecond // after dismissing an overlay
	scrollSettle  = 1 * time.Second        // after scrolling to the bottom
	reloadSettle  = 2 * time.Second        // after a recovery reload
	filterSettle  = 3 * time.Second        // after activating a filter
	pageSettle    = 3 * time.Second        // after a next-page click
)
