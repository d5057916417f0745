package schedule

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/game"
)

// containerSelector matches elements whose class hints at schedule
// semantics. Substring matching keeps it tolerant of site-specific
// prefixes like "c-game-card" or "scheduleRow".
const containerSelector = `[class*="schedule"], [class*="game"], [class*="match"], [class*="event"], [class*="fixture"]`

// containerStrategy applies the row extraction logic to generically
// classed containers, for pages that lay games out as divs or list items
// instead of tables.
type containerStrategy struct{}

func (containerStrategy) Name() string { return "container" }

func (containerStrategy) Scan(doc *goquery.Document, t Target) []game.Candidate {
	candidates := make([]game.Candidate, 0)

	doc.Find(containerSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip wrappers whose own children also match the selector;
		// the innermost element is the per-game one.
		if sel.Find(containerSelector).Length() > 0 {
			return
		}

		text := sel.Text()
		if !mentionsTeam(text, t) {
			return
		}

		parentText := ""
		if parent := sel.Parent(); parent.Length() > 0 {
			parentText = parent.Text()
		}

		if c, ok := candidateFrom(text, parentText, parentText, t); ok {
			candidates = append(candidates, c)
		}
	})

	return candidates
}
