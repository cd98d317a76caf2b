package scraper

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

// Selector locates an element by exactly one of CSS or XPath.
type Selector struct {
	CSS   string
	XPath string
}

// CSS builds a CSS selector.
func CSS(s string) Selector { return Selector{CSS: s} }

// XPath builds an XPath selector.
func XPath(s string) Selector { return Selector{XPath: s} }

func (s Selector) String() string {
	if s.XPath != "" {
		return s.XPath
	}
	return s.CSS
}

// Element is one located node in the rendered document. Lookup methods
// scoped to an element search only its subtree.
type Element interface {
	Text() (string, error)
	Attribute(name string) (string, bool)
	Click() error
	// ClickJS invokes the element's click handler directly, bypassing the
	// synthetic mouse event; the fallback when a click is intercepted by
	// an overlay.
	ClickJS() error
	ScrollIntoView() error
	Visible() bool
	Find(sel Selector) (Element, error)
	FindAll(sel Selector) ([]Element, error)
	WaitFor(sel Selector, timeout time.Duration) (Element, error)
}

// Session is a stateful handle to one rendered document. Lookups address
// the detail view while one is open, the primary view otherwise. Sessions
// are not safe for concurrent use; each category worker owns exactly one.
type Session interface {
	Navigate(url string) error
	Reload() error
	Find(sel Selector) (Element, error)
	FindAll(sel Selector) ([]Element, error)
	WaitFor(sel Selector, timeout time.Duration) (Element, error)
	ScrollToBottom() error
	// OpenDetail opens url in a secondary rendering context and routes
	// subsequent lookups to it until CloseDetail.
	OpenDetail(url string) error
	// CloseDetail closes the secondary context, if any, and restores the
	// primary view. Safe to call unconditionally.
	CloseDetail()
	Close()
}

// RodSession drives a dedicated headless-capable Chromium instance via rod.
type RodSession struct {
	browser *rod.Browser
	primary *rod.Page
	detail  *rod.Page
}

// NewRodSession launches a browser and opens its primary page. The caller
// must Close the session on every exit path.
func NewRodSession(headless bool) (*RodSession, error) {
	l := launcher.New().
		Headless(headless).
		Set("disable-gpu").
		Set("no-sandbox").
		Set("disable-notifications").
		Set("disable-dev-shm-usage")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		browser.MustClose()
		return nil, fmt.Errorf("open page: %w", err)
	}

	utils.Debugf("browser session started: %s", controlURL)
	return &RodSession{browser: browser, primary: page}, nil
}

func (s *RodSession) current() *rod.Page {
	if s.detail != nil {
		return s.detail
	}
	return s.primary
}

func (s *RodSession) Navigate(url string) error {
	if err := s.current().Navigate(url); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return s.current().WaitLoad()
}

func (s *RodSession) Reload() error {
	if err := s.current().Reload(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return s.current().WaitLoad()
}

// Find returns immediately; absence is an error, not a wait.
func (s *RodSession) Find(sel Selector) (Element, error) {
	return findOn(s.current().Sleeper(rod.NotFoundSleeper), sel)
}

func (s *RodSession) FindAll(sel Selector) ([]Element, error) {
	return findAllOn(s.current(), sel)
}

// WaitFor blocks until the element is present or the timeout elapses.
func (s *RodSession) WaitFor(sel Selector, timeout time.Duration) (Element, error) {
	return findOn(s.current().Timeout(timeout), sel)
}

func (s *RodSession) ScrollToBottom() error {
	_, err := s.current().Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	return err
}

func (s *RodSession) OpenDetail(url string) error {
	if s.detail != nil {
		s.CloseDetail()
	}
	page, err := s.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return fmt.Errorf("open detail view %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		utils.Debugf("detail view load wait: %v", err)
	}
	s.detail = page
	return nil
}

func (s *RodSession) CloseDetail() {
	if s.detail == nil {
		return
	}
	if err := s.detail.Close(); err != nil {
		utils.Debugf("close detail view: %v", err)
	}
	s.detail = nil
	if _, err := s.primary.Activate(); err != nil {
		utils.Debugf("activate primary view: %v", err)
	}
}

func (s *RodSession) Close() {
	s.CloseDetail()
	if s.browser != nil {
		s.browser.MustClose()
		utils.Debugf("browser session closed")
	}
}

func findOn(p *rod.Page, sel Selector) (Element, error) {
	var el *rod.Element
	var err error
	if sel.XPath != "" {
		el, err = p.ElementX(sel.XPath)
	} else {
		el, err = p.Element(sel.CSS)
	}
	if err != nil {
		return nil, err
	}
	return rodElement{el: el}, nil
}

func findAllOn(p *rod.Page, sel Selector) ([]Element, error) {
	var els rod.Elements
	var err error
	if sel.XPath != "" {
		els, err = p.ElementsX(sel.XPath)
	} else {
		els, err = p.Elements(sel.CSS)
	}
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

type rodElement struct {
	el *rod.Element
}

func (e rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e rodElement) Attribute(name string) (string, bool) {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return "", false
	}
	return *v, true
}

func (e rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

func (e rodElement) ClickJS() error {
	_, err := e.el.Eval(`() => this.click()`)
	return err
}

func (e rodElement) ScrollIntoView() error {
	return e.el.ScrollIntoView()
}

func (e rodElement) Visible() bool {
	visible, err := e.el.Visible()
	return err == nil && visible
}

func (e rodElement) Find(sel Selector) (Element, error) {
	var el *rod.Element
	var err error
	scoped := e.el.Sleeper(rod.NotFoundSleeper)
	if sel.XPath != "" {
		el, err = scoped.ElementX(sel.XPath)
	} else {
		el, err = scoped.Element(sel.CSS)
	}
	if err != nil {
		return nil, err
	}
	return rodElement{el: el}, nil
}

func (e rodElement) FindAll(sel Selector) ([]Element, error) {
	var els rod.Elements
	var err error
	if sel.XPath != "" {
		els, err = e.el.ElementsX(sel.XPath)
	} else {
		els, err = e.el.Elements(sel.CSS)
	}
	if err != nil {
		return nil, err
	}
	return wrapElements(els), nil
}

func (e rodElement) WaitFor(sel Selector, timeout time.Duration) (Element, error) {
	var el *rod.Element
	var err error
	scoped := e.el.Timeout(timeout)
	if sel.XPath != "" {
		el, err = scoped.ElementX(sel.XPath)
	} else {
		el, err = scoped.Element(sel.CSS)
	}
	if err != nil {
		return nil, err
	}
	return rodElement{el: el}, nil
}

func wrapElements(els rod.Elements) []Element {
	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, rodElement{el: el})
	}
	return out
}
