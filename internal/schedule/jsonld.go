package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/extract"
	"github.com/mkleven/puckcal/internal/game"
	"github.com/mkleven/puckcal/internal/logger"
)

// ldEvent is the subset of a schema.org event block the scanner reads.
// @type and location vary in shape across publishers, so both are kept
// raw and probed.
type ldEvent struct {
	Type      json.RawMessage `json:"@type"`
	Name      string          `json:"name"`
	StartDate string          `json:"startDate"`
	Location  json.RawMessage `json:"location"`
	Graph     []ldEvent       `json:"@graph"`
}

// jsonLDStrategy reads embedded <script type="application/ld+json">
// blocks and extracts games from typed SportsEvent records instead of
// free text.
type jsonLDStrategy struct{}

func (jsonLDStrategy) Name() string { return "json-ld" }

func (jsonLDStrategy) Scan(doc *goquery.Document, t Target) []game.Candidate {
	candidates := make([]game.Candidate, 0)

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		for _, evt := range decodeLD(sel.Text()) {
			if c, ok := candidateFromLD(evt, t); ok {
				candidates = append(candidates, c)
			}
		}
	})

	return candidates
}

// decodeLD accepts a single object, an array, or an @graph wrapper.
func decodeLD(raw string) []ldEvent {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var list []ldEvent
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	var single ldEvent
	if err := json.Unmarshal([]byte(raw), &single); err != nil {
		logger.Debug("skipping unparseable ld+json block", logger.Fields{"error": err.Error()})
		return nil
	}
	if len(single.Graph) > 0 {
		return single.Graph
	}
	return []ldEvent{single}
}

func candidateFromLD(evt ldEvent, t Target) (game.Candidate, bool) {
	if !isSportsEvent(evt.Type) {
		return game.Candidate{}, false
	}
	if !mentionsTeam(evt.Name, t) {
		return game.Candidate{}, false
	}

	opponent, ok := extractOpponent(evt.Name, t)
	if !ok {
		return game.Candidate{}, false
	}

	local, err := parseLDStart(evt.StartDate)
	if err != nil {
		logger.Debug("skipping SportsEvent with bad startDate", logger.Fields{
			"name":  evt.Name,
			"start": evt.StartDate,
		})
		return game.Candidate{}, false
	}

	venue := extract.DefaultVenue
	if locName := ldLocationName(evt.Location); locName != "" {
		if m, found := extract.Venue(locName); found {
			venue = m.Value
		} else {
			venue = locName
		}
	}

	round := game.RoundPreliminary
	if m, found := extract.Round(evt.Name); found {
		round = m.Value
	}

	return game.Candidate{
		DateStr:  local.Format("02/01/2006"),
		TimeStr:  local.Format("15:04"),
		Opponent: opponent,
		Venue:    venue,
		Round:    round,
		RawText:  evt.Name,
	}, true
}

func isSportsEvent(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return one == "SportsEvent"
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, s := range many {
			if s == "SportsEvent" {
				return true
			}
		}
	}
	return false
}

func ldLocationName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asObject struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return asObject.Name
	}
	return ""
}

// ldStartLayouts are tried in order against a SportsEvent startDate. The
// wall-clock components are taken as venue-local time regardless of any
// offset suffix, matching how the tournament site publishes them.
var ldStartLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseLDStart(s string) (time.Time, error) {
	for _, layout := range ldStartLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized startDate %q", s)
}
