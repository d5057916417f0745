package schedule

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/game"
)

// textStrategy is the last-resort fallback: scan the document's visible
// text for tracked-team mentions with a date and time nearby. It only
// runs when the structured strategies all came up empty, because its
// looser patterns over-trigger on pages the other strategies can read.
type textStrategy struct{}

func (textStrategy) Name() string { return "free-text" }

// window is how many consecutive text lines are considered "in
// proximity" for pairing a team mention with its date and time.
const window = 3

func (textStrategy) Scan(doc *goquery.Document, t Target) []game.Candidate {
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(body.Text(), "\n") {
		line = collapseSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	candidates := make([]game.Candidate, 0)
	for i, line := range lines {
		if !mentionsTeam(line, t) {
			continue
		}

		end := i + window
		if end > len(lines) {
			end = len(lines)
		}
		start := i - 1
		if start < 0 {
			start = 0
		}
		span := strings.Join(lines[start:end], "\n")

		if c, ok := candidateFrom(span, span, span, t); ok {
			candidates = append(candidates, c)
		}
	}

	return candidates
}
