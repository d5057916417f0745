package extract

import (
	"regexp"

	"github.com/mkleven/puckcal/internal/game"
)

// roundPatterns is evaluated in order. Qualifying/quarterfinal/semifinal
// must be checked before the bare "final" keyword, which is a substring
// of all of them.
var roundPatterns = []struct {
	round string
	re    *regexp.Regexp
}{
	{game.RoundQualifying, regexp.MustCompile(`(?i)qualif`)},
	{game.RoundQuarterfinal, regexp.MustCompile(`(?i)quarter[\s-]?final|\bQF\b`)},
	{game.RoundSemifinal, regexp.MustCompile(`(?i)semi[\s-]?final|\bSF\b`)},
	{game.RoundFinal, regexp.MustCompile(`(?i)\bfinal\b|gold\s+medal|bronze\s+medal|\bgold\b|\bbronze\b`)},
	{game.RoundPreliminary, regexp.MustCompile(`(?i)prelim|\bgroup\b|\bpool\b`)},
}

// Round matches round-indicating keywords against a span, in priority
// order. Misses when no keyword is present; the scanner then inspects the
// enclosing context and finally defaults to Preliminary.
func Round(text string) (Match, bool) {
	for _, rp := range roundPatterns {
		if kw := rp.re.FindString(text); kw != "" {
			return Match{Value: rp.round, Pattern: kw}, true
		}
	}
	return Match{}, false
}
