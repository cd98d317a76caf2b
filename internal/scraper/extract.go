package scraper

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/models"
	"github.com/MusaBangash/MLB-Major-League-Baseball/internal/utils"
)

var (
	numberField     = CSS(`div.flex.player-prop-card__prop-container span.typography[style*='--48359156: left'][style*='--2a6287d2: #16191D']`)
	oddsField       = CSS(`span.typography:not(.player-prop-card__team-pos)[style*='--2a6287d2: #525A67']`)
	projectionField = CSS(`span[style*='--2a6287d2: #1F845A'], span[style*='--2a6287d2: #C9372C']`)
	teamInfoField   = CSS(`span.typography.player-prop-card__team-pos`)
)

// playerPathSegment indexes .../mlb/players/<name>/... in the card href.
const playerPathSegment = 5

// ExtractCard reads one prop card, enriches it from the player's detail
// view and submits the finished record. It never propagates an error past
// its boundary: field failures degrade to the unavailable marker, and a
// card with no usable link is skipped entirely.
func ExtractCard(s Session, card Element, games int, category string, out chan<- models.PropRecord, index int) {
	defer func() {
		if r := recover(); r != nil {
			utils.Errorf("card %d: recovered during extraction: %v", index, r)
		}
	}()

	utils.Debugf("processing card %d", index)

	href, ok := card.Attribute("href")
	if !ok || href == "" {
		utils.Warnf("card %d: missing href attribute, skipping", index)
		return
	}
	player := playerNameFromHref(href)
	if player == "" {
		utils.Warnf("card %d: no player name in href %q, skipping", index, href)
		return
	}

	number := fieldText(card, numberField, "number", index)
	odds := fieldText(card, oddsField, "odds", index)
	projection := fieldText(card, projectionField, "projection", index)
	teamInfo := fieldText(card, teamInfoField, "team info", index)

	side, team := models.ClassifySide(teamInfo)

	avgAll, avgSide := models.Unavailable, models.Unavailable
	all, filtered, err := Enrich(s, href, games, side)
	if err != nil {
		utils.Errorf("card %d: stats for %s unavailable: %v", index, player, err)
	} else {
		avgAll = models.FormatAvg(all)
		avgSide = models.FormatAvg(filtered)
	}

	out <- models.PropRecord{
		ID:          uuid.New().String(),
		PlayerName:  player,
		Number:      number,
		Odds:        odds,
		Projection:  projection,
		Avg:         avgAll,
		HomeAwayAvg: avgSide,
		Side:        side,
		Date:        models.CaptureDate(),
		Category:    category,
		Team:        team,
	}

	utils.Debugf("card %d done: %s", index, player)
}

// fieldText reads one display field with a bounded wait. Each field
// degrades independently so one missing span cannot sink the record.
func fieldText(card Element, sel Selector, what string, index int) string {
	el, err := card.WaitFor(sel, fieldWait)
	if err != nil {
		utils.Warnf("card %d: %s not found", index, what)
		return models.Unavailable
	}
	text, err := el.Text()
	if err != nil {
		utils.Warnf("card %d: reading %s: %v", index, what, err)
		return models.Unavailable
	}
	if text = strings.TrimSpace(text); text == "" {
		return models.Unavailable
	}
	return text
}

func playerNameFromHref(href string) string {
	parts := strings.Split(href, "/")
	if len(parts) <= playerPathSegment {
		return ""
	}
	return parts[playerPathSegment]
}
