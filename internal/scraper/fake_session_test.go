package scraper

import (
	"errors"
	"testing"
	"time"
)

var errNotFound = errors.New("element not found")

// fakeElement is a scriptable Element. Zero-value lookups report not found;
// behavior is overridden per test through the function fields.
type fakeElement struct {
	text       string
	attrs      map[string]string
	hidden     bool
	clickErr   error
	jsClickErr error
	onClick    func()

	findAllFn func(sel Selector) ([]Element, error)
	waitForFn func(sel Selector) (Element, error)
}

func (e *fakeElement) Text() (string, error) { return e.text, nil }

func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) Click() error {
	if e.clickErr != nil {
		return e.clickErr
	}
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) ClickJS() error {
	if e.jsClickErr != nil {
		return e.jsClickErr
	}
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) ScrollIntoView() error { return nil }

func (e *fakeElement) Visible() bool { return !e.hidden }

func (e *fakeElement) Find(sel Selector) (Element, error) {
	els, err := e.FindAll(sel)
	if err != nil || len(els) == 0 {
		return nil, errNotFound
	}
	return els[0], nil
}

func (e *fakeElement) FindAll(sel Selector) ([]Element, error) {
	if e.findAllFn == nil {
		return nil, errNotFound
	}
	return e.findAllFn(sel)
}

func (e *fakeElement) WaitFor(sel Selector, _ time.Duration) (Element, error) {
	if e.waitForFn != nil {
		return e.waitForFn(sel)
	}
	return e.Find(sel)
}

// fakeSession is a scriptable Session over fake elements.
type fakeSession struct {
	findAllFn    func(sel Selector) ([]Element, error)
	waitForFn    func(sel Selector) (Element, error)
	reloadFn     func() error
	openDetailFn func(url string) error

	navigations  []string
	reloads      int
	scrolls      int
	detailOpens  int
	detailCloses int
	closed       bool
}

func (s *fakeSession) Navigate(url string) error {
	s.navigations = append(s.navigations, url)
	return nil
}

func (s *fakeSession) Reload() error {
	s.reloads++
	if s.reloadFn != nil {
		return s.reloadFn()
	}
	return nil
}

func (s *fakeSession) Find(sel Selector) (Element, error) {
	els, err := s.FindAll(sel)
	if err != nil || len(els) == 0 {
		return nil, errNotFound
	}
	return els[0], nil
}

func (s *fakeSession) FindAll(sel Selector) ([]Element, error) {
	if s.findAllFn == nil {
		return nil, errNotFound
	}
	return s.findAllFn(sel)
}

func (s *fakeSession) WaitFor(sel Selector, _ time.Duration) (Element, error) {
	if s.waitForFn != nil {
		return s.waitForFn(sel)
	}
	return s.Find(sel)
}

func (s *fakeSession) ScrollToBottom() error {
	s.scrolls++
	return nil
}

func (s *fakeSession) OpenDetail(url string) error {
	if s.openDetailFn != nil {
		if err := s.openDetailFn(url); err != nil {
			return err
		}
	}
	s.detailOpens++
	return nil
}

func (s *fakeSession) CloseDetail() { s.detailCloses++ }

func (s *fakeSession) Close() { s.closed = true }

// shortenTimings collapses every settle delay for the duration of one test.
func shortenTimings(t *testing.T) {
	t.Helper()
	savedOverlay, savedScroll, savedReload, savedFilter, savedPage :=
		overlaySettle, scrollSettle, reloadSettle, filterSettle, pageSettle
	overlaySettle = 0
	scrollSettle = 0
	reloadSettle = 0
	filterSettle = 0
	pageSettle = 0
	t.Cleanup(func() {
		overlaySettle, scrollSettle, reloadSettle, filterSettle, pageSettle =
			savedOverlay, savedScroll, savedReload, savedFilter, savedPage
	})
}
