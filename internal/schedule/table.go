package schedule

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkleven/puckcal/internal/game"
)

// Quick plausibility probes for a table's aggregate text. A table is
// worth row-by-row inspection when it holds anything date-like,
// time-like, or a paired-team-code matchup.
var (
	dateLikeRe = regexp.MustCompile(`(?i)\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}`)
	timeLikeRe = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	pairedRe   = regexp.MustCompile(`\b[A-Z]{3}\b\s*(?:vs\.?|v\.|[-–—])\s*\b[A-Z]{3}\b`)
)

func plausibleSchedule(text string) bool {
	return dateLikeRe.MatchString(text) || timeLikeRe.MatchString(text) || pairedRe.MatchString(text)
}

// tableStrategy walks every table in the document, inspecting rows that
// mention the tracked team. Rows missing a date or time borrow them from
// the neighboring rows, which covers schedules that print the date once
// per day on a header row.
type tableStrategy struct{}

func (tableStrategy) Name() string { return "table" }

func (tableStrategy) Scan(doc *goquery.Document, t Target) []game.Candidate {
	candidates := make([]game.Candidate, 0)

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		tableText := table.Text()
		if !plausibleSchedule(tableText) {
			return
		}

		rows := table.Find("tr")
		texts := make([]string, rows.Length())
		rows.Each(func(i int, row *goquery.Selection) {
			texts[i] = row.Text()
		})

		for i, rowText := range texts {
			if !mentionsTeam(rowText, t) {
				continue
			}
			adjacent := ""
			if i > 0 {
				adjacent = texts[i-1]
			}
			if i+1 < len(texts) {
				adjacent += "\n" + texts[i+1]
			}
			if c, ok := candidateFrom(rowText, adjacent, tableText, t); ok {
				candidates = append(candidates, c)
			}
		}
	})

	return candidates
}
