package extract

import (
	"regexp"
	"strings"

	"github.com/mkleven/puckcal/internal/team"
)

var codeTokenRe = regexp.MustCompile(`\b[A-Z]{3}\b`)

// codeStoplist holds three-letter uppercase tokens that show up in
// schedule text but are never team codes.
var codeStoplist = map[string]bool{
	"MON": true, "TUE": true, "WED": true, "THU": true, "FRI": true,
	"SAT": true, "SUN": true,
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "MAY": true,
	"JUN": true, "JUL": true, "AUG": true, "SEP": true, "OCT": true,
	"NOV": true, "DEC": true,
	"UTC": true, "GMT": true, "CET": true, "EST": true, "PST": true,
	"TBA": true,
}

// OpponentCode scans a span for three-letter uppercase team codes and
// returns the first one that is not the tracked team, expanded to its
// display name. Known country codes win over unknown tokens, so a stray
// all-caps word cannot shadow a real opponent; an unknown token such as
// "TBD" is still returned when nothing better appears.
func OpponentCode(text, trackedCode string) (Match, bool) {
	tracked := strings.ToUpper(trackedCode)
	tokens := codeTokenRe.FindAllString(text, -1)

	for _, tok := range tokens {
		if tok == tracked || codeStoplist[tok] {
			continue
		}
		if team.IsCode(tok) {
			return Match{Value: team.Expand(tok), Pattern: "team-code"}, true
		}
	}
	for _, tok := range tokens {
		if tok == tracked || codeStoplist[tok] {
			continue
		}
		return Match{Value: team.Expand(tok), Pattern: "unknown-code"}, true
	}
	return Match{}, false
}

var versusRe = regexp.MustCompile(`(?i)([A-Za-z][A-Za-z .'’-]*?)\s+(?:vs\.?|v\.|versus|[-–—])\s+([A-Za-z][A-Za-z .'’-]*[A-Za-z.])`)

// OpponentProse matches "<Team> vs <Team>" prose (either order, with
// "vs", "v.", "versus", or a dash separator) and returns the side that is
// not the tracked team, trimmed of punctuation and normalized via the
// resolver. Misses when neither side mentions the tracked team.
func OpponentProse(text, trackedName, trackedCode string) (Match, bool) {
	m := versusRe.FindStringSubmatch(text)
	if m == nil {
		return Match{}, false
	}

	left := strings.Trim(m[1], " .,:;'-")
	right := strings.Trim(m[2], " .,:;'-")

	switch {
	case mentionsTracked(left, trackedName, trackedCode):
		return Match{Value: resolveSide(right), Pattern: "versus"}, true
	case mentionsTracked(right, trackedName, trackedCode):
		return Match{Value: resolveSide(left), Pattern: "versus"}, true
	}
	return Match{}, false
}

// resolveSide maps a captured "vs" side to a canonical team name. The
// capture can run past the team name into surrounding prose, so the
// longest word prefix that resolves to a known team wins before falling
// back to the raw capture.
func resolveSide(side string) string {
	words := strings.Fields(side)
	max := len(words)
	if max > 4 {
		max = 4
	}
	for n := max; n >= 1; n-- {
		prefix := strings.Join(words[:n], " ")
		if team.Known(prefix) {
			return team.Normalize(prefix)
		}
	}
	return team.Normalize(side)
}

func mentionsTracked(side, trackedName, trackedCode string) bool {
	if trackedName != "" && strings.Contains(strings.ToLower(side), strings.ToLower(trackedName)) {
		return true
	}
	return trackedCode != "" && strings.EqualFold(strings.TrimSpace(side), trackedCode)
}
