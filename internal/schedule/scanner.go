package schedule

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/extract"
	"github.com/mkleven/puckcal/internal/game"
	"github.com/mkleven/puckcal/internal/logger"
	"github.com/mkleven/puckcal/internal/team"
)

// ErrNoGames is returned when a scan produces zero candidates. Callers
// use it to fall back to an alternate source instead of emitting an
// empty calendar.
var ErrNoGames = errors.New("no games found for tracked team")

// Kind tags how a source writes team identities, replacing URL sniffing
// inside the scanner.
type Kind string

const (
	// KindCodes marks IIHF-style sources using three-letter team codes.
	KindCodes Kind = "codes"
	// KindProse marks sources spelling out team names in text.
	KindProse Kind = "prose"
)

// Target describes the team a scan is extracting for.
type Target struct {
	Code          string // three-letter code, e.g. "CAN"
	Name          string // display name, resolved from Code
	Year          int    // tournament year, fills dates with no year
	Kind          Kind
	OffsetMinutes int // fixed host-country UTC offset, used by the feed path
}

// NewTarget builds a Target from a team code, resolving the display name.
func NewTarget(code string, year int, kind Kind, offsetMinutes int) Target {
	return Target{
		Code:          strings.ToUpper(strings.TrimSpace(code)),
		Name:          team.Expand(code),
		Year:          year,
		Kind:          kind,
		OffsetMinutes: offsetMinutes,
	}
}

// Strategy is one extraction heuristic over a parsed HTML document. Each
// strategy appends to the shared candidate list; none removes another's
// output.
type Strategy interface {
	Name() string
	Scan(doc *goquery.Document, t Target) []game.Candidate
}

// structuredStrategies run unconditionally, in order of decreasing
// structure. The free-text fallback is separate: it only runs when these
// produce nothing.
var structuredStrategies = []Strategy{
	tableStrategy{},
	containerStrategy{},
	jsonLDStrategy{},
}

// ScanHTML applies the strategy cascade to a document and returns every
// candidate found. Returns ErrNoGames when all strategies, including the
// free-text fallback, come up empty.
func ScanHTML(doc *goquery.Document, t Target) ([]game.Candidate, error) {
	candidates := make([]game.Candidate, 0)
	for _, s := range structuredStrategies {
		found := s.Scan(doc, t)
		if len(found) > 0 {
			logger.Debug("strategy produced candidates", logger.Fields{
				"strategy": s.Name(),
				"count":    len(found),
			})
		}
		candidates = append(candidates, found...)
	}

	if len(candidates) == 0 {
		fallback := textStrategy{}
		candidates = append(candidates, fallback.Scan(doc, t)...)
	}

	if len(candidates) == 0 {
		reportEmptyScan(doc, t)
		return nil, ErrNoGames
	}
	return candidates, nil
}

// reportEmptyScan logs structural counts when a document that mentions
// the tracked team still yields nothing. Observability only; it never
// changes what a scan returns.
func reportEmptyScan(doc *goquery.Document, t Target) {
	bodyText := doc.Text()
	if !mentionsTeam(bodyText, t) {
		return
	}

	tables := doc.Find("table")
	tablesWithTeam := 0
	sample := ""
	tables.Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if mentionsTeam(text, t) {
			tablesWithTeam++
			if sample == "" {
				sample = collapseSpace(text)
				if len(sample) > 200 {
					sample = sample[:200]
				}
			}
		}
	})

	logger.Warn("document mentions tracked team but no games extracted", logger.Fields{
		"team":             t.Code,
		"tables":           tables.Length(),
		"tables_with_team": tablesWithTeam,
		"sample":           sample,
	})
}

// mentionsTeam reports whether a span refers to the tracked team by code
// or by display name.
func mentionsTeam(text string, t Target) bool {
	if t.Code != "" && containsCodeToken(text, t.Code) {
		return true
	}
	return t.Name != "" && strings.Contains(strings.ToLower(text), strings.ToLower(t.Name))
}

var codeTokenCache = map[string]*regexp.Regexp{}

func containsCodeToken(text, code string) bool {
	re, ok := codeTokenCache[code]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToUpper(code)) + `\b`)
		codeTokenCache[code] = re
	}
	return re.MatchString(text)
}

var spaceRe = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// candidateFrom extracts a full candidate from a row-sized span.
// adjacent supplies date and time when the span lacks them (schedules
// often put the date on a header row above the games); enclosing is the
// parent structure's text, consulted for venue and round. ok is false
// when any required field is missing.
func candidateFrom(span, adjacent, enclosing string, t Target) (game.Candidate, bool) {
	opponent, ok := extractOpponent(span, t)
	if !ok {
		return game.Candidate{}, false
	}

	date, ok := extract.Date(span, t.Year)
	if !ok {
		date, ok = extract.Date(adjacent, t.Year)
	}
	if !ok {
		return game.Candidate{}, false
	}

	clock, ok := extract.Clock(span)
	if !ok {
		clock, ok = extract.Clock(adjacent)
	}
	if !ok {
		return game.Candidate{}, false
	}

	venue := extract.DefaultVenue
	if m, found := extract.Venue(span); found {
		venue = m.Value
	} else if m, found := extract.Venue(enclosing); found {
		venue = m.Value
	}

	round := game.RoundPreliminary
	if m, found := extract.Round(span); found {
		round = m.Value
	} else if m, found := extract.Round(enclosing); found {
		round = m.Value
	}

	return game.Candidate{
		DateStr:  date.Value,
		TimeStr:  clock.Value,
		Opponent: opponent,
		Venue:    venue,
		Round:    round,
		RawText:  collapseSpace(span),
	}, true
}

// extractOpponent picks the extraction style for the source kind, with
// the other style as a fallback so a prose page that happens to print
// codes still resolves.
func extractOpponent(span string, t Target) (string, bool) {
	if t.Kind == KindCodes {
		if m, ok := extract.OpponentCode(span, t.Code); ok {
			return m.Value, true
		}
		if m, ok := extract.OpponentProse(span, t.Name, t.Code); ok {
			return m.Value, true
		}
		return "", false
	}
	if m, ok := extract.OpponentProse(span, t.Name, t.Code); ok {
		return m.Value, true
	}
	if m, ok := extract.OpponentCode(span, t.Code); ok {
		return m.Value, true
	}
	return "", false
}
