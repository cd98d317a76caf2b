package scraper

import (
	"fmt"
	"time"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

var pageBody = CSS(`body`)

const filterAttempts = 3

// CategoryWorker scrapes one stat category end to end. Each worker owns a
// dedicated render session; sessions are never shared across categories.
type CategoryWorker struct {
	CatalogURL string
	// NewSession acquires the worker's render session. Swappable so the
	// pipeline can run against a fake document in tests.
	NewSession func() (Session, error)
}

// Run drives the category to completion and closes out when done, whatever
// the outcome, so the draining sink always terminates. The returned error
// is category-fatal only; siblings are unaffected.
func (w *CategoryWorker) Run(job models.CategoryJob, out chan<- models.PropRecord) error {
	defer close(out)

	name := job.Category.Name
	utils.Infof("starting scrape for %s", name)

	session, err := w.NewSession()
	if err != nil {
		return fmt.Errorf("%s: acquire render session: %w", name, err)
	}
	defer session.Close()

	if err := session.Navigate(w.CatalogURL); err != nil {
		return fmt.Errorf("%s: open catalog: %w", name, err)
	}
	if _, err := session.WaitFor(pageBody, landingWait); err != nil {
		return fmt.Errorf("%s: catalog never rendered: %w", name, err)
	}
	DismissOverlays(session)

	if err := w.selectFilter(session, job.Category); err != nil {
		return err
	}

	NewPaginator(session, job.Games, name, out).Run()
	utils.Infof("completed scraping for %s", name)
	return nil
}

// selectFilter activates the category's filter control with bounded
// reload-and-retry. Exhaustion aborts this category only.
func (w *CategoryWorker) selectFilter(s Session, category models.StatCategory) error {
	sel := XPath(category.FilterXPath)
	for attempt := 1; attempt <= filterAttempts; attempt++ {
		button, err := s.WaitFor(sel, filterWait)
		if err == nil {
			if clickErr := button.Click(); clickErr != nil {
				err = button.ClickJS()
			}
			if err == nil {
				utils.Infof("selected filter %s", category.Name)
				time.Sleep(filterSettle)
				return nil
			}
		}
		if attempt == filterAttempts {
			break
		}
		utils.Warnf("retry %d/%d selecting filter %s", attempt, filterAttempts, category.Name)
		if err := s.Reload(); err != nil {
			utils.Debugf("reload failed: %v", err)
		}
		time.Sleep(reloadSettle)
		DismissOverlays(s)
	}
	return fmt.Errorf("%s: failed to select category filter after %d attempts", category.Name, filterAttempts)
}
