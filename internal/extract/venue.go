package extract

import "strings"

// DefaultVenue is the tournament-wide placeholder used when no venue can
// be extracted for a game.
const DefaultVenue = "Milano Cortina 2026"

// knownVenues maps lowercase name fragments to the full venue name. Order
// matters: more specific fragments come first so "Milano Santagiulia Ice
// Hockey Arena" is not swallowed by the bare "milano" fallback.
var knownVenues = []struct {
	fragment string
	name     string
}{
	{"santagiulia", "Milano Santagiulia Ice Hockey Arena"},
	{"santa giulia", "Milano Santagiulia Ice Hockey Arena"},
	{"palaitalia", "Milano Santagiulia Ice Hockey Arena"},
	{"rho", "Milano Rho Ice Hockey Arena"},
	{"fiera", "Milano Rho Ice Hockey Arena"},
	{"milano", DefaultVenue},
	{"milan", DefaultVenue},
}

// Venue matches a span against the fixed list of tournament venues and
// returns the first hit. The scanner substitutes DefaultVenue on a miss.
func Venue(text string) (Match, bool) {
	lower := strings.ToLower(text)
	for _, v := range knownVenues {
		if strings.Contains(lower, v.fragment) {
			return Match{Value: v.name, Pattern: v.fragment}, true
		}
	}
	return Match{}, false
}
