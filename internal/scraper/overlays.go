package scraper

import (
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// Overlay candidates, checked in order. Timing and presence of these are
// nondeterministic, so absence is treated as success throughout.
var (
	dismissButtons = XPath(`//button[contains(@class, 'close') or contains(@class, 'dismiss') or contains(@aria-label, 'Close')]`)
	consentButtons = XPath(`//button[contains(text(), 'Accept') or contains(text(), 'Agree') or contains(text(), 'I understand')]`)
	overlayBoxes   = XPath(`//div[contains(@class, 'overlay') or contains(@class, 'modal') or contains(@class, 'popup')]`)
	overlayCloses  = XPath(`.//button[contains(@class, 'close') or contains(@aria-label, 'Close')]`)
)

// DismissOverlays closes whatever interstitial overlays happen to be on the
// page right now. Best effort with no error channel: callers must not
// inspect the outcome, and a page with no overlays is an untouched no-op.
func DismissOverlays(s Session) {
	clickVisible(s, dismissButtons, "dismiss button")
	clickVisible(s, consentButtons, "consent button")

	// Close controls nested inside a visible overlay container.
	boxes, err := s.FindAll(overlayBoxes)
	if err != nil {
		return
	}
	for _, box := range boxes {
		if !box.Visible() {
			continue
		}
		closes, err := box.FindAll(overlayCloses)
		if err != nil {
			continue
		}
		for _, btn := range closes {
			if !btn.Visible() {
				continue
			}
			if err := btn.Click(); err == nil {
				utils.Debug("closed overlay container")
				time.Sleep(overlaySettle)
			}
		}
	}
}

// clickVisible clicks every visible match of sel, guarding each click
// independently so one failure never stops evaluation of the rest.
func clickVisible(s Session, sel Selector, what string) {
	els, err := s.FindAll(sel)
	if err != nil {
		return
	}
	for _, el := range els {
		if !el.Visible() {
			continue
		}
		if err := el.Click(); err != nil {
			continue
		}
		utils.Debugf("closed %s", what)
		time.Sleep(overlaySettle)
	}
}
