package scraper

import (
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

var (
	cardContainer = XPath(`/html/body/div[1]/div/div/div[1]/div/main/div/div[2]/section/div[2]`)
	propCards     = CSS(`.player-prop-cards-container__card`)
)

const containerAttempts = 3

// HarvestPage extracts every prop card on the current page, in document
// order, emitting records to out. Cards share the one owning session, so
// extraction within a page is strictly sequential. A page whose container
// never appears yields zero records; pagination decides what that means.
func HarvestPage(s Session, games int, category string, out chan<- models.PropRecord) {
	DismissOverlays(s)

	utils.Debug("waiting for player prop cards to load")
	container, ok := locateContainer(s)
	if !ok {
		return
	}

	if _, err := container.WaitFor(propCards, cardsWait); err != nil {
		utils.Warnf("%s: no prop cards appeared in container", category)
		return
	}
	cards, err := container.FindAll(propCards)
	if err != nil || len(cards) == 0 {
		utils.Warnf("%s: failed to enumerate prop cards", category)
		return
	}

	utils.Infof("%s: found %d player cards on this page", category, len(cards))
	bar := utils.NewProgressBar(len(cards), category)
	for i, card := range cards {
		ExtractCard(s, card, games, category, out, i+1)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
}

// locateContainer finds the card container, reloading between bounded
// attempts when it is transiently absent.
func locateContainer(s Session) (Element, bool) {
	for attempt := 1; attempt <= containerAttempts; attempt++ {
		container, err := s.WaitFor(cardContainer, containerWait)
		if err == nil {
			return container, true
		}
		if attempt == containerAttempts {
			break
		}
		utils.Warnf("retry %d/%d loading prop card container", attempt, containerAttempts)
		if err := s.Reload(); err != nil {
			utils.Debugf("reload failed: %v", err)
		}
		time.Sleep(reloadSettle)
		DismissOverlays(s)
	}
	utils.Error(nil, "failed to load prop card container after retries")
	return nil, false
}
