package scraper

import (
	"strings"
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

var nextPageButton = XPath(`/html/body/div[1]/div/div/div[1]/div/main/div/div[2]/section/div[3]/button[2]`)

const maxEmptyPages = 3

type pageState int

const (
	stateHarvesting pageState = iota
	stateAdvancing
	stateDone
)

// Paginator walks the paginated catalog for one category. Every loop it can
// enter carries an explicit ceiling: the next control disappearing or
// reporting disabled ends the walk, as does a run of maxEmptyPages
// consecutive pages without cards, as does any unhandled advance failure.
type Paginator struct {
	session  Session
	games    int
	category string
	out      chan<- models.PropRecord

	page       int
	emptyPages int
}

// NewPaginator builds a paginator over the session's current view.
func NewPaginator(s Session, games int, category string, out chan<- models.PropRecord) *Paginator {
	return &Paginator{session: s, games: games, category: category, out: out, page: 1}
}

// Run harvests the current page and then advances until no more pages
// remain. It terminates in bounded steps even under persistent failure.
func (p *Paginator) Run() {
	state := stateHarvesting
	for state != stateDone {
		switch state {
		case stateHarvesting:
			utils.Infof("%s: scraping page %d", p.category, p.page)
			HarvestPage(p.session, p.games, p.category, p.out)
			state = stateAdvancing
		case stateAdvancing:
			state = p.advance()
		}
	}
	utils.Infof("%s: pagination finished after %d page(s)", p.category, p.page)
}

// advance attempts one page transition and reports the next state. Any
// failure it cannot classify ends the walk rather than looping.
func (p *Paginator) advance() (next pageState) {
	defer func() {
		if r := recover(); r != nil {
			utils.Errorf("%s: pagination recovered: %v", p.category, r)
			next = stateDone
		}
	}()

	if err := p.session.ScrollToBottom(); err != nil {
		utils.Debugf("%s: scroll to bottom: %v", p.category, err)
	}
	time.Sleep(scrollSettle)
	DismissOverlays(p.session)

	button, err := p.session.WaitFor(nextPageButton, nextButtonWait)
	if err != nil {
		utils.Infof("%s: next page button not found, assuming end of pages", p.category)
		return stateDone
	}
	if buttonDisabled(button) {
		utils.Infof("%s: next page button disabled, no more pages", p.category)
		return stateDone
	}

	if err := button.Click(); err != nil {
		// Overlays can swallow the synthetic click; invoke the handler
		// directly before giving up on the page.
		if err := button.ClickJS(); err != nil {
			utils.Errorf("%s: next page click failed: %v", p.category, err)
			return stateDone
		}
	}
	p.page++
	utils.Infof("%s: now on page %d", p.category, p.page)

	time.Sleep(pageSettle)
	DismissOverlays(p.session)

	cards, err := p.session.FindAll(propCards)
	if err != nil || len(cards) == 0 {
		p.emptyPages++
		utils.Warnf("%s: page %d has no player cards (empty run: %d)", p.category, p.page, p.emptyPages)
		if p.emptyPages >= maxEmptyPages {
			utils.Infof("%s: stopping after %d consecutive empty pages", p.category, maxEmptyPages)
			return stateDone
		}
		return stateAdvancing
	}

	p.emptyPages = 0
	return stateHarvesting
}

func buttonDisabled(button Element) bool {
	if _, ok := button.Attribute("disabled"); ok {
		return true
	}
	class, _ := button.Attribute("class")
	return strings.Contains(class, "disabled")
}
